package models

// Room describes a bookable room.
type Room struct {
	ID            string
	Name          string
	Description   string
	PricePerNight float64
	ImageURL      string
	Amenities     []string
	MaxGuests     int
}

type RoomResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"price_per_night"`
	ImageURL      string   `json:"image_url"`
	Amenities     []string `json:"amenities"`
	MaxGuests     int      `json:"max_guests"`
}

func (r *Room) Response() RoomResponse {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return RoomResponse{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		ImageURL:      r.ImageURL,
		Amenities:     amenities,
		MaxGuests:     r.MaxGuests,
	}
}
