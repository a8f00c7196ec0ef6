package models

import "time"

// Booking statuses.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID           string
	RoomID       string
	RoomName     string
	GuestName    string
	CheckInDate  string
	CheckOutDate string
	Guests       int
	TotalPrice   float64
	BookingDate  time.Time
	Status       string
	UserEmail    string
}

type BookingResponse struct {
	ID           string  `json:"id"`
	RoomID       string  `json:"room_id"`
	RoomName     string  `json:"room_name"`
	GuestName    string  `json:"guest_name"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Guests       int     `json:"guests"`
	TotalPrice   float64 `json:"total_price"`
	BookingDate  string  `json:"booking_date"`
	Status       string  `json:"status"`
	UserEmail    string  `json:"user_email,omitempty"`
}

func (b *Booking) Response() BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		RoomID:       b.RoomID,
		RoomName:     b.RoomName,
		GuestName:    b.GuestName,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Guests:       b.Guests,
		TotalPrice:   b.TotalPrice,
		BookingDate:  b.BookingDate.Format(time.RFC3339),
		Status:       b.Status,
		UserEmail:    b.UserEmail,
	}
}

type BookingCreateRequest struct {
	RoomID       string `json:"room_id" binding:"required"`
	GuestName    string `json:"guest_name" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	Guests       int    `json:"guests"`
	UserEmail    string `json:"user_email"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	Users struct {
		Total  int `json:"total"`
		Active int `json:"active"`
		Admins int `json:"admins"`
	} `json:"users"`
	Bookings struct {
		Total     int `json:"total"`
		Confirmed int `json:"confirmed"`
		Cancelled int `json:"cancelled"`
	} `json:"bookings"`
	Revenue struct {
		Total    float64 `json:"total"`
		Currency string  `json:"currency"`
	} `json:"revenue"`
}
