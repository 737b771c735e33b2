// Package seed provides the startup contents of the catalog, the
// registered-identity set and the booking ledger. The built-in defaults
// mirror the demo data the app has always shipped with; a YAML file can
// replace them wholesale.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/emazahmed/edu-hotel/internal/models"
)

// Data is everything the app seeds at startup.
type Data struct {
	Hotels   []models.Hotel   `yaml:"hotels"`
	Rooms    []models.Room    `yaml:"rooms"`
	Users    []models.User    `yaml:"users"`
	Bookings []models.Booking `yaml:"bookings"`
}

// Load reads seed data from a YAML file. An empty path yields the
// built-in defaults.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &d, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Default returns the built-in demo data set: three hotels, three
// rooms, the demo guest and admin identities, and two historical
// bookings for the demo guest.
func Default() *Data {
	return &Data{
		Hotels: []models.Hotel{
			{
				ID:            "1",
				Name:          "Grand Palace Hotel",
				Location:      "New York City",
				Rating:        4.8,
				Image:         "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
				Description:   "Luxurious hotel in the heart of Manhattan with world-class amenities.",
				Amenities:     []string{"WiFi", "Pool", "Spa", "Gym", "Restaurant", "Bar"},
				PricePerNight: 299,
			},
			{
				ID:            "2",
				Name:          "Ocean View Resort",
				Location:      "Miami Beach",
				Rating:        4.6,
				Image:         "https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg",
				Description:   "Beachfront resort with stunning ocean views and tropical atmosphere.",
				Amenities:     []string{"WiFi", "Beach Access", "Pool", "Restaurant", "Water Sports"},
				PricePerNight: 199,
			},
			{
				ID:            "3",
				Name:          "Mountain Lodge",
				Location:      "Colorado",
				Rating:        4.4,
				Image:         "https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg",
				Description:   "Cozy mountain retreat perfect for outdoor enthusiasts.",
				Amenities:     []string{"WiFi", "Fireplace", "Hiking Trails", "Restaurant", "Ski Access"},
				PricePerNight: 159,
			},
		},
		Rooms: []models.Room{
			{
				ID:          "1",
				HotelID:     "1",
				Type:        "Deluxe Suite",
				Capacity:    2,
				Price:       399,
				Amenities:   []string{"King Bed", "City View", "Minibar", "Bathtub", "Work Desk"},
				Images:      []string{"https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg"},
				Available:   true,
				Description: "Spacious suite with panoramic city views and premium amenities.",
			},
			{
				ID:          "2",
				HotelID:     "1",
				Type:        "Standard Room",
				Capacity:    2,
				Price:       299,
				Amenities:   []string{"Queen Bed", "WiFi", "TV", "Air Conditioning", "Coffee Maker"},
				Images:      []string{"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg"},
				Available:   true,
				Description: "Comfortable standard room with modern amenities.",
			},
			{
				ID:          "3",
				HotelID:     "2",
				Type:        "Ocean View Suite",
				Capacity:    4,
				Price:       299,
				Amenities:   []string{"Ocean View", "Balcony", "Two Beds", "Kitchenette", "Living Area"},
				Images:      []string{"https://images.pexels.com/photos/1743231/pexels-photo-1743231.jpeg"},
				Available:   true,
				Description: "Beautiful suite with direct ocean views and spacious balcony.",
			},
		},
		Users: []models.User{
			{
				ID:     "1",
				Name:   "John Doe",
				Email:  "john.doe@example.com",
				Phone:  "+1 (555) 123-4567",
				Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
			},
			{
				ID:      "admin",
				Name:    "Admin User",
				Email:   "admin@hotel.com",
				Phone:   "+1 (555) 000-0000",
				Avatar:  "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg",
				IsAdmin: true,
			},
		},
		Bookings: []models.Booking{
			{
				ID:         "1",
				UserID:     "1",
				HotelID:    "1",
				RoomID:     "1",
				CheckIn:    date(2024, time.January, 15),
				CheckOut:   date(2024, time.January, 18),
				Guests:     2,
				TotalPrice: 1197,
				Status:     models.StatusConfirmed,
				CreatedAt:  date(2024, time.January, 10),
				HotelName:  "Grand Palace Hotel",
				RoomType:   "Deluxe Suite",
				UserName:   "John Doe",
				UserEmail:  "john.doe@example.com",
			},
			{
				ID:         "2",
				UserID:     "1",
				HotelID:    "2",
				RoomID:     "3",
				CheckIn:    date(2024, time.February, 20),
				CheckOut:   date(2024, time.February, 25),
				Guests:     3,
				TotalPrice: 1495,
				Status:     models.StatusPending,
				CreatedAt:  date(2024, time.January, 12),
				HotelName:  "Ocean View Resort",
				RoomType:   "Ocean View Suite",
				UserName:   "John Doe",
				UserEmail:  "john.doe@example.com",
			},
		},
	}
}
