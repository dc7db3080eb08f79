package domain

import "math"

// AddOnUnit how an add-on price scales with the party
type AddOnUnit string

const (
	UnitPerPlayer  AddOnUnit = "per_player"
	UnitPerBuggy   AddOnUnit = "per_buggy"
	UnitPerBooking AddOnUnit = "per_booking"
)

// AddOnOption an add-on as offered, before it is priced for a party
type AddOnOption struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
	Unit  AddOnUnit `json:"unit"`
}

// BuggyUnits number of shared buggies for the party, two players per buggy
func BuggyUnits(players int) int {
	if players <= 0 {
		return 0
	}
	return (players + 1) / 2
}

// Quantity number of units charged for the party. Unknown units count per player.
func (o AddOnOption) Quantity(players int) int {
	switch o.Unit {
	case UnitPerBuggy:
		return BuggyUnits(players)
	case UnitPerBooking:
		return 1
	default:
		return players
	}
}

// PriceFor turns the option into a cart add-on priced for the party
func (o AddOnOption) PriceFor(players int) AddOn {
	return AddOn{
		ID:         o.ID,
		Name:       o.Name,
		Price:      o.Price,
		TotalPrice: roundMoney(o.Price * float64(o.Quantity(players))),
	}
}

// PriceAddOns prices every option for the party, keeping order
func PriceAddOns(options []AddOnOption, players int) []AddOn {
	addOns := make([]AddOn, 0, len(options))
	for _, o := range options {
		addOns = append(addOns, o.PriceFor(players))
	}
	return addOns
}

// ItemTotal package price × players plus every add-on total
func ItemTotal(pkg Package, players int, addOns []AddOn) float64 {
	total := pkg.Price * float64(players)
	for _, a := range addOns {
		total += a.TotalPrice
	}
	return roundMoney(total)
}

// ToMinorUnits converts an amount to cents
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
