package models

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64          `json:"id"`
	CourseID     string         `json:"courseId"`
	CourseName   string         `json:"courseName"`
	ProviderType string         `json:"providerType"`
	TeeTime      string         `json:"teeTime"` // RFC3339
	Players      int            `json:"players"`
	PackageID    string         `json:"packageId"`
	PackageName  string         `json:"packageName"`
	AddOns       []domain.AddOn `json:"addOns"`
	TotalPrice   float64        `json:"totalPrice"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	addOns := b.AddOns
	if addOns == nil {
		addOns = []domain.AddOn{}
	}

	return &BookingResponse{
		ID:           b.ID,
		CourseID:     b.CourseID,
		CourseName:   b.CourseName,
		ProviderType: string(b.ProviderType),
		TeeTime:      b.TeeTime.Format(time.RFC3339),
		Players:      b.Players,
		PackageID:    b.PackageID,
		PackageName:  b.PackageName,
		AddOns:       addOns,
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	return resp
}
