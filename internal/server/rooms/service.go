// Package rooms manages the room catalog.
package rooms

import (
	"context"

	"github.com/stayhub-dev/stayhub/internal/docstore"
	"github.com/stayhub-dev/stayhub/internal/server/models"
)

const collectionName = "rooms"

type Service struct {
	col *docstore.Collection
}

func NewService(db *docstore.Database) *Service {
	return &Service{col: db.Collection(collectionName)}
}

// Collection exposes the underlying collection for collaborators that need
// room lookups inside their own flow (the booking service).
func (s *Service) Collection() *docstore.Collection {
	return s.col
}

// Seed loads the sample catalog when the collection is empty. Returns the
// number of rooms inserted (zero when the catalog already has entries).
func (s *Service) Seed(ctx context.Context) (int, error) {
	count, err := s.col.Count(nil)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	s.col.InsertMany(sampleRooms())
	return len(sampleRooms()), nil
}

func (s *Service) List(ctx context.Context) ([]*models.Room, error) {
	cur, err := s.col.Find(nil)
	if err != nil {
		return nil, err
	}

	rooms := make([]*models.Room, 0, cur.Len())
	for {
		doc, ok := cur.Next()
		if !ok {
			break
		}
		rooms = append(rooms, roomFromDocument(doc))
	}
	return rooms, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Room, error) {
	doc, err := s.col.FindOne(docstore.Predicate{docstore.IDField: id})
	if err != nil {
		return nil, err
	}
	return roomFromDocument(doc), nil
}

func roomFromDocument(doc docstore.Document) *models.Room {
	r := &models.Room{}
	if id, ok := doc.ID(); ok {
		r.ID = id.String()
	}
	r.Name, _ = doc["name"].(string)
	r.Description, _ = doc["description"].(string)
	r.PricePerNight, _ = doc["price_per_night"].(float64)
	r.ImageURL, _ = doc["image_url"].(string)
	r.Amenities, _ = doc["amenities"].([]string)
	r.MaxGuests, _ = doc["max_guests"].(int)
	return r
}

func sampleRooms() []docstore.Document {
	return []docstore.Document{
		{
			"name":            "Deluxe Ocean View Suite",
			"description":     "Spacious suite with breathtaking ocean views, king-size bed, private balcony, and luxury amenities. Perfect for a romantic getaway.",
			"price_per_night": 299.99,
			"image_url":       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&q=80",
			"amenities":       []string{"Ocean View", "King Bed", "Private Balcony", "Mini Bar", "WiFi"},
			"max_guests":      2,
		},
		{
			"name":            "Executive Business Room",
			"description":     "Modern room designed for business travelers with a comfortable workspace, high-speed internet, and premium coffee maker.",
			"price_per_night": 189.99,
			"image_url":       "https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=800&q=80",
			"amenities":       []string{"Work Desk", "High-Speed WiFi", "Coffee Maker", "Queen Bed"},
			"max_guests":      2,
		},
		{
			"name":            "Family Garden Suite",
			"description":     "Spacious two-bedroom suite with garden access, perfect for families. Includes a living area and kitchenette.",
			"price_per_night": 349.99,
			"image_url":       "https://images.unsplash.com/photo-1590490360182-c33d57733427?w=800&q=80",
			"amenities":       []string{"2 Bedrooms", "Garden View", "Kitchenette", "Living Area", "WiFi"},
			"max_guests":      4,
		},
		{
			"name":            "Cozy Standard Room",
			"description":     "Comfortable and affordable room with all essential amenities. Perfect for solo travelers or couples on a budget.",
			"price_per_night": 129.99,
			"image_url":       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800&q=80",
			"amenities":       []string{"Double Bed", "WiFi", "TV", "Air Conditioning"},
			"max_guests":      2,
		},
		{
			"name":            "Presidential Penthouse",
			"description":     "Ultimate luxury penthouse with panoramic city views, private terrace, jacuzzi, and personalized concierge service.",
			"price_per_night": 799.99,
			"image_url":       "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?w=800&q=80",
			"amenities":       []string{"Panoramic View", "Private Terrace", "Jacuzzi", "Concierge", "King Bed", "WiFi"},
			"max_guests":      2,
		},
		{
			"name":            "Mountain View Cabin",
			"description":     "Rustic yet elegant cabin with stunning mountain views, fireplace, and a cozy atmosphere for nature lovers.",
			"price_per_night": 249.99,
			"image_url":       "https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?w=800&q=80",
			"amenities":       []string{"Mountain View", "Fireplace", "Queen Bed", "WiFi", "Balcony"},
			"max_guests":      2,
		},
	}
}
