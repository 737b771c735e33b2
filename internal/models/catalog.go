package models

// Hotel is a static catalog entry. Catalog data is loaded once at
// startup and is read-only for the lifetime of the process.
type Hotel struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Location      string   `json:"location" yaml:"location"`
	Rating        float64  `json:"rating" yaml:"rating"`
	Image         string   `json:"image" yaml:"image"`
	Description   string   `json:"description" yaml:"description"`
	Amenities     []string `json:"amenities" yaml:"amenities"`
	PricePerNight float64  `json:"price_per_night" yaml:"price_per_night"`
}

// Room is a bookable unit within a hotel.
type Room struct {
	ID          string   `json:"id" yaml:"id"`
	HotelID     string   `json:"hotel_id" yaml:"hotel_id"`
	Type        string   `json:"type" yaml:"type"`
	Capacity    int      `json:"capacity" yaml:"capacity"`
	Price       float64  `json:"price" yaml:"price"`
	Amenities   []string `json:"amenities" yaml:"amenities"`
	Images      []string `json:"images" yaml:"images"`
	Available   bool     `json:"available" yaml:"available"`
	Description string   `json:"description" yaml:"description"`
}
