package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emazahmed/edu-hotel/internal/models"
)

func TestDefault(t *testing.T) {
	d := Default()

	assert.Len(t, d.Hotels, 3)
	assert.Len(t, d.Rooms, 3)
	assert.Len(t, d.Users, 2)
	assert.Len(t, d.Bookings, 2)

	assert.Equal(t, "Grand Palace Hotel", d.Hotels[0].Name)
	assert.True(t, d.Users[1].IsAdmin)
	assert.Equal(t, "admin@hotel.com", d.Users[1].Email)

	// Seed identities carry no credential, so logins are demo-open.
	for _, u := range d.Users {
		assert.Empty(t, u.CredentialHash)
	}

	assert.Equal(t, models.StatusConfirmed, d.Bookings[0].Status)
	assert.Equal(t, models.StatusPending, d.Bookings[1].Status)
	assert.Equal(t, 3, d.Bookings[0].Nights())
}

func TestLoad(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		d, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), d)
	})

	t.Run("yaml file replaces defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
hotels:
  - id: "h1"
    name: "Test Hotel"
    price_per_night: 100
rooms:
  - id: "r1"
    hotel_id: "h1"
    type: "Single"
    price: 100
    available: true
users:
  - id: "u1"
    name: "Tester"
    email: "tester@example.com"
`), 0o644))

		d, err := Load(path)
		require.NoError(t, err)
		require.Len(t, d.Hotels, 1)
		assert.Equal(t, "Test Hotel", d.Hotels[0].Name)
		require.Len(t, d.Rooms, 1)
		assert.True(t, d.Rooms[0].Available)
		assert.Empty(t, d.Bookings)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hotels: [broken"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
