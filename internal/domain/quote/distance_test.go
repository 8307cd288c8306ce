//go:build unit

package quote_test

import (
	"testing"

	"charter-quote-api/internal/domain/quote"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	madrid := quote.Coordinates{Latitude: 40.4719, Longitude: -3.5626}
	barcelona := quote.Coordinates{Latitude: 41.2971, Longitude: 2.0785}

	t.Run("identical points are zero distance", func(t *testing.T) {
		assert.Zero(t, quote.Distance(madrid, madrid))
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		assert.InDelta(t, quote.Distance(madrid, barcelona), quote.Distance(barcelona, madrid), 1e-9)
	})

	t.Run("one degree of latitude along a meridian", func(t *testing.T) {
		equator := quote.Coordinates{Latitude: 0, Longitude: 0}
		oneDegreeNorth := quote.Coordinates{Latitude: 1, Longitude: 0}

		assert.InDelta(t, 111.19, quote.Distance(equator, oneDegreeNorth), 0.01)
	})

	t.Run("known route distance", func(t *testing.T) {
		// Madrid to Barcelona is roughly 480km great-circle
		d := quote.Distance(madrid, barcelona)
		assert.Greater(t, d, 470.0)
		assert.Less(t, d, 500.0)
	})

	t.Run("antimeridian crossing", func(t *testing.T) {
		west := quote.Coordinates{Latitude: 0, Longitude: 179.5}
		east := quote.Coordinates{Latitude: 0, Longitude: -179.5}

		assert.InDelta(t, 111.19, quote.Distance(west, east), 0.01)
	})
}
