package quote

// AirportSpec is immutable airport reference data resolved by the caller.
type AirportSpec struct {
	ID        int64
	IATACode  string
	Latitude  float64
	Longitude float64
}

func (a AirportSpec) Coordinates() Coordinates {
	return Coordinates{Latitude: a.Latitude, Longitude: a.Longitude}
}

// AircraftSpec is immutable aircraft-type reference data.
type AircraftSpec struct {
	ID             int64
	Name           string
	Category       string
	MaxPassengers  int
	RangeKm        float64
	CruiseSpeedKmh float64
	HourlyRate     float64
}

// ExtraSpec is an add-on service resolved by the caller. Requested IDs that
// resolve to nothing are simply not passed in and therefore not priced.
type ExtraSpec struct {
	ID          int64
	Name        string
	Price       float64
	Description *string
}
