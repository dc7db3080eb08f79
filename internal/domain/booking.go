package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking a cart item sent to checkout, tracked until the payment settles
type Booking struct {
	ID               int64
	PaymentSessionID string
	CartSessionID    string
	CartItemID       string
	CourseID         string
	CourseName       string
	ProviderType     ProviderType
	TeeTime          time.Time
	Players          int
	PackageID        string
	PackageName      string
	AddOns           []AddOn
	TotalPrice       float64

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string

	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true while the payment is not settled
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsConfirmed returns true once the payment is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// AllConfirmed reports whether every booking of a payment session is confirmed
func AllConfirmed(bookings []*Booking) bool {
	if len(bookings) == 0 {
		return false
	}
	for _, b := range bookings {
		if !b.IsConfirmed() {
			return false
		}
	}
	return true
}

// AnyCancelled reports whether any booking of a payment session was cancelled
func AnyCancelled(bookings []*Booking) bool {
	for _, b := range bookings {
		if b.Status == StatusCancelled {
			return true
		}
	}
	return false
}
