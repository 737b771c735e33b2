// Package catalog holds the static hotel and room reference data.
// The catalog is built once from seed data and is read-only afterwards.
package catalog

import (
	"fmt"

	"github.com/emazahmed/edu-hotel/internal/models"
)

// Catalog is the immutable hotel/room reference set. Lookups are by id;
// listing preserves seed insertion order.
type Catalog struct {
	hotels  []models.Hotel
	rooms   []models.Room
	hotelBy map[string]*models.Hotel
	roomBy  map[string]*models.Room
}

// New builds a catalog from seed entries. Duplicate ids are a
// construction error: the seed is broken, not the caller's input.
func New(hotels []models.Hotel, rooms []models.Room) (*Catalog, error) {
	c := &Catalog{
		hotels:  make([]models.Hotel, len(hotels)),
		rooms:   make([]models.Room, len(rooms)),
		hotelBy: make(map[string]*models.Hotel, len(hotels)),
		roomBy:  make(map[string]*models.Room, len(rooms)),
	}
	copy(c.hotels, hotels)
	copy(c.rooms, rooms)

	for i := range c.hotels {
		h := &c.hotels[i]
		if _, dup := c.hotelBy[h.ID]; dup {
			return nil, fmt.Errorf("duplicate hotel id %q in seed data", h.ID)
		}
		c.hotelBy[h.ID] = h
	}
	for i := range c.rooms {
		r := &c.rooms[i]
		if _, dup := c.roomBy[r.ID]; dup {
			return nil, fmt.Errorf("duplicate room id %q in seed data", r.ID)
		}
		if _, ok := c.hotelBy[r.HotelID]; !ok {
			return nil, fmt.Errorf("room %q references unknown hotel %q", r.ID, r.HotelID)
		}
		c.roomBy[r.ID] = r
	}
	return c, nil
}

// Hotels lists every hotel in seed order.
func (c *Catalog) Hotels() []models.Hotel {
	out := make([]models.Hotel, len(c.hotels))
	copy(out, c.hotels)
	return out
}

// Hotel returns a hotel by id.
func (c *Catalog) Hotel(id string) (models.Hotel, bool) {
	h, ok := c.hotelBy[id]
	if !ok {
		return models.Hotel{}, false
	}
	return *h, true
}

// Rooms lists every room in seed order.
func (c *Catalog) Rooms() []models.Room {
	out := make([]models.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// Room returns a room by id.
func (c *Catalog) Room(id string) (models.Room, bool) {
	r, ok := c.roomBy[id]
	if !ok {
		return models.Room{}, false
	}
	return *r, true
}

// RoomsForHotel lists the rooms of one hotel in seed order.
func (c *Catalog) RoomsForHotel(hotelID string) []models.Room {
	var out []models.Room
	for _, r := range c.rooms {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out
}
