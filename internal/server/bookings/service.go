// Package bookings implements booking creation, lookups and the admin
// operations over the bookings collection.
package bookings

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/stayhub-dev/stayhub/internal/common"
	"github.com/stayhub-dev/stayhub/internal/docstore"
	"github.com/stayhub-dev/stayhub/internal/server/models"
)

const collectionName = "bookings"

type Service struct {
	col   *docstore.Collection
	rooms *docstore.Collection
}

func NewService(db *docstore.Database, rooms *docstore.Collection) *Service {
	return &Service{col: db.Collection(collectionName), rooms: rooms}
}

// Create validates the referenced room and the date range, prices the stay
// (nights × room rate) and stores the booking as confirmed.
func (s *Service) Create(ctx context.Context, req models.BookingCreateRequest) (*models.Booking, error) {
	room, err := s.rooms.FindOne(docstore.Predicate{docstore.IDField: req.RoomID})
	if err != nil {
		return nil, err
	}

	checkIn, err := parseBookingDate(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-in date", common.ErrValidation)
	}
	checkOut, err := parseBookingDate(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-out date", common.ErrValidation)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 {
		return nil, fmt.Errorf("%w: check-out date must be after check-in date", common.ErrValidation)
	}

	price, _ := room["price_per_night"].(float64)
	roomName, _ := room["name"].(string)

	guests := req.Guests
	if guests <= 0 {
		guests = 1
	}

	booking := &models.Booking{
		RoomID:       req.RoomID,
		RoomName:     roomName,
		GuestName:    req.GuestName,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Guests:       guests,
		TotalPrice:   float64(nights) * price,
		BookingDate:  time.Now().UTC(),
		Status:       models.BookingConfirmed,
		UserEmail:    req.UserEmail,
	}

	id := s.col.Insert(bookingToDocument(booking))
	booking.ID = id.String()
	return booking, nil
}

// ListAll returns bookings newest first, optionally filtered by status, with
// skip/limit pagination (limit <= 0 means no limit).
func (s *Service) ListAll(ctx context.Context, status string, skip, limit int) ([]*models.Booking, error) {
	p := docstore.Predicate{}
	if status != "" {
		p["status"] = status
	}
	return s.list(p, skip, limit)
}

// ListByGuest matches guest names by case-insensitive substring.
func (s *Service) ListByGuest(ctx context.Context, guestName string) ([]*models.Booking, error) {
	return s.list(docstore.Predicate{
		"guest_name": docstore.Regex{Pattern: guestName, CaseInsensitive: true},
	}, 0, 0)
}

// ListByUser returns the bookings created by the given account.
func (s *Service) ListByUser(ctx context.Context, email string) ([]*models.Booking, error) {
	return s.list(docstore.Predicate{"user_email": email}, 0, 0)
}

func (s *Service) list(p docstore.Predicate, skip, limit int) ([]*models.Booking, error) {
	cur, err := s.col.Find(p)
	if err != nil {
		return nil, err
	}
	if err := cur.Sort("booking_date", true); err != nil {
		return nil, err
	}

	out := make([]*models.Booking, 0, cur.Len())
	index := 0
	for {
		doc, ok := cur.Next()
		if !ok {
			break
		}
		if index < skip {
			index++
			continue
		}
		index++
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, bookingFromDocument(doc))
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	doc, err := s.col.FindOne(docstore.Predicate{docstore.IDField: id})
	if err != nil {
		return nil, err
	}
	return bookingFromDocument(doc), nil
}

// Update applies a shallow patch, commonly a status change. The identifier
// and booking date are immutable.
func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (*models.Booking, error) {
	clean := docstore.Document{}
	for k, v := range patch {
		switch k {
		case docstore.IDField, "id", "booking_date":
			continue
		}
		clean[k] = v
	}

	matched, err := s.col.UpdateOne(docstore.Predicate{docstore.IDField: id}, clean)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, common.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.col.DeleteOne(docstore.Predicate{docstore.IDField: id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Stats aggregates booking counts by status and total confirmed revenue.
func (s *Service) Stats(ctx context.Context) (total, confirmed, cancelled int, revenue float64, err error) {
	total, err = s.col.Count(nil)
	if err != nil {
		return
	}
	confirmed, err = s.col.Count(docstore.Predicate{"status": models.BookingConfirmed})
	if err != nil {
		return
	}
	cancelled, err = s.col.Count(docstore.Predicate{"status": models.BookingCancelled})
	if err != nil {
		return
	}

	cur, err := s.col.Find(docstore.Predicate{"status": models.BookingConfirmed})
	if err != nil {
		return
	}
	for {
		doc, ok := cur.Next()
		if !ok {
			break
		}
		revenue += asFloat(doc["total_price"])
	}
	revenue = math.Round(revenue*100) / 100
	return
}

// parseBookingDate accepts RFC 3339 timestamps (with the trailing Z the
// frontend sends) and bare dates.
func parseBookingDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// Patches arriving through the JSON API carry numbers as float64 while the
// service stores native ints, so hydration accepts both.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func bookingToDocument(b *models.Booking) docstore.Document {
	return docstore.Document{
		"room_id":        b.RoomID,
		"room_name":      b.RoomName,
		"guest_name":     b.GuestName,
		"check_in_date":  b.CheckInDate,
		"check_out_date": b.CheckOutDate,
		"guests":         b.Guests,
		"total_price":    b.TotalPrice,
		"booking_date":   b.BookingDate,
		"status":         b.Status,
		"user_email":     b.UserEmail,
	}
}

func bookingFromDocument(doc docstore.Document) *models.Booking {
	b := &models.Booking{}
	if id, ok := doc.ID(); ok {
		b.ID = id.String()
	}
	b.RoomID, _ = doc["room_id"].(string)
	b.RoomName, _ = doc["room_name"].(string)
	b.GuestName, _ = doc["guest_name"].(string)
	b.CheckInDate, _ = doc["check_in_date"].(string)
	b.CheckOutDate, _ = doc["check_out_date"].(string)
	b.Guests = asInt(doc["guests"])
	b.TotalPrice = asFloat(doc["total_price"])
	b.BookingDate, _ = doc["booking_date"].(time.Time)
	b.Status, _ = doc["status"].(string)
	b.UserEmail, _ = doc["user_email"].(string)
	return b
}
