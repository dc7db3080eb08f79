package domain

import "errors"

// ErrEmptyCart returned when a checkout is requested for an empty cart
var ErrEmptyCart = errors.New("cart is empty")

// Customer contact details collected at checkout
type Customer struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// CheckoutLine one cart item as sent to the payment provider
type CheckoutLine struct {
	CartItemID   string       `json:"cartItemId"`
	CourseID     string       `json:"courseId"`
	CourseName   string       `json:"courseName"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	Players      int          `json:"players"`
	PackageID    string       `json:"packageId"`
	PackageName  string       `json:"packageName"`
	AddOns       []AddOn      `json:"addOns"`
	TotalPrice   float64      `json:"totalPrice"`
	AmountMinor  int64        `json:"amount"`
	ProviderType ProviderType `json:"providerType"`
}

// CheckoutSessionRequest the payload for creating a hosted payment session
type CheckoutSessionRequest struct {
	CartSessionID string         `json:"cartSessionId"`
	Lines         []CheckoutLine `json:"lines"`
	Customer      Customer       `json:"customer"`
	Currency      string         `json:"currency"`
	TotalPrice    float64        `json:"totalPrice"`
	TotalMinor    int64          `json:"totalAmount"`
	SuccessURL    string         `json:"successUrl,omitempty"`
	CancelURL     string         `json:"cancelUrl,omitempty"`
}

// BuildCheckoutSession serializes the cart into a payment session request.
// No pricing happens here: item totals are taken as stored in the cart.
func BuildCheckoutSession(cartSessionID string, items []CartItem, customer Customer, currency string) (*CheckoutSessionRequest, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	lines := make([]CheckoutLine, 0, len(items))
	var total float64
	for _, item := range items {
		lines = append(lines, CheckoutLine{
			CartItemID:   item.ID,
			CourseID:     item.CourseID,
			CourseName:   item.CourseName,
			Date:         NormalizeDate(item.Date),
			Time:         item.Time,
			Players:      item.Players,
			PackageID:    item.Package.ID,
			PackageName:  item.Package.Name,
			AddOns:       append([]AddOn{}, item.AddOns...),
			TotalPrice:   item.TotalPrice,
			AmountMinor:  ToMinorUnits(item.TotalPrice),
			ProviderType: item.ProviderType,
		})
		total += item.TotalPrice
	}

	total = roundMoney(total)
	return &CheckoutSessionRequest{
		CartSessionID: cartSessionID,
		Lines:         lines,
		Customer:      customer,
		Currency:      currency,
		TotalPrice:    total,
		TotalMinor:    ToMinorUnits(total),
	}, nil
}
