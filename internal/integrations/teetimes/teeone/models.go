package teeone

// teeSheetResponse ответ GET /clubs/{id}/tee-sheet
type teeSheetResponse struct {
	Date  string     `json:"date"`
	Times []teeSheet `json:"times"`
}

type teeSheet struct {
	Time        string       `json:"time"` // "HH:MM"
	Holes       int          `json:"holes"`
	Free        int          `json:"free"`
	Tariffs     []tariff     `json:"tariffs"`
	Supplements []supplement `json:"supplements"`
}

// tariff тариф TeeOne; окно действия передаётся строкой restriction
type tariff struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Restriction string   `json:"restriction"`
	Includes    []string `json:"includes"`
}

type supplement struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Basis       string  `json:"basis"`
}
