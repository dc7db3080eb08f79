package zest

// teeTimesResponse ответ GET /api/v1/teetimes
type teeTimesResponse struct {
	Data []teeTime `json:"data"`
}

type teeTime struct {
	ID               string  `json:"id"`
	TeeTime          string  `json:"teeTime"`
	Holes            int     `json:"holes"`
	AvailablePlayers int     `json:"availablePlayers"`
	Rates            []rate  `json:"rates"`
	Extras           []extra `json:"extras"`
}

type rate struct {
	RateID          string  `json:"rateId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	BuggyIncluded   bool    `json:"buggyIncluded"`
	LunchIncluded   bool    `json:"lunchIncluded"`
	EarlyBird       bool    `json:"earlyBird"`
	Twilight        bool    `json:"twilight"`
	TimeRestriction string  `json:"timeRestriction"`
}

type extra struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Per   string  `json:"per"`
}
