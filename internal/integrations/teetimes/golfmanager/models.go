package golfmanager

// availability элемент ответа GET /api/availability
type availability struct {
	ID     int64         `json:"id"`
	Start  string        `json:"start"` // "2006-01-02 15:04:05", локальное время поля
	Slots  int           `json:"slots"`
	Holes  int           `json:"holes"`
	Types  []bookingType `json:"types"`
	Extras []product     `json:"extras"`
}

// bookingType тариф Golfmanager; признаков раннего/вечернего тарифа нет, только название
type bookingType struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Buggy bool    `json:"buggy"`
	Lunch bool    `json:"lunch"`
}

type product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}
