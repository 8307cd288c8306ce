package quote

import (
	"errors"
	"sort"
)

var ErrNoSuitableAircraft = errors.New("no suitable aircraft found for this journey")

// Selection captures the two aircraft-selection modes. An explicitly
// requested aircraft type is used as-is with no range/capacity check; auto
// selection filters the catalog by range and capacity and picks the
// cheapest hourly rate. The asymmetry is deliberate.
type Selection struct {
	explicit   *AircraftSpec
	distanceKm float64
	passengers int
}

func ExplicitSelection(aircraft AircraftSpec) Selection {
	return Selection{explicit: &aircraft}
}

func AutoSelection(distanceKm float64, passengers int) Selection {
	return Selection{distanceKm: distanceKm, passengers: passengers}
}

func (s Selection) IsExplicit() bool {
	return s.explicit != nil
}

// Choose resolves the selection against the aircraft catalog. The catalog
// is ignored in explicit mode.
func (s Selection) Choose(catalog []AircraftSpec) (AircraftSpec, error) {
	if s.explicit != nil {
		return *s.explicit, nil
	}

	candidates := make([]AircraftSpec, 0, len(catalog))
	for _, a := range catalog {
		if a.RangeKm >= s.distanceKm && a.MaxPassengers >= s.passengers {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return AircraftSpec{}, ErrNoSuitableAircraft
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].HourlyRate < candidates[j].HourlyRate
	})
	return candidates[0], nil
}
