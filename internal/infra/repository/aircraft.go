package repository

import (
	"context"

	"charter-quote-api/internal/domain/quote"
	"charter-quote-api/internal/infra"
)

const aircraftColumns = `id, name, category, max_passengers, range_km, cruise_speed_kmh, hourly_rate`

type AircraftRepository struct {
	db DB
}

func NewAircraftRepository(db DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

func (r *AircraftRepository) FindByID(ctx context.Context, id int64) (*quote.AircraftSpec, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+aircraftColumns+` FROM aircraft_types WHERE id = $1`, id)

	var a quote.AircraftSpec
	if err := row.Scan(&a.ID, &a.Name, &a.Category, &a.MaxPassengers, &a.RangeKm, &a.CruiseSpeedKmh, &a.HourlyRate); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("aircraft type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find aircraft type by ID", err)
	}
	return &a, nil
}

func (r *AircraftRepository) ListAll(ctx context.Context) ([]quote.AircraftSpec, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+aircraftColumns+` FROM aircraft_types ORDER BY hourly_rate`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list aircraft types", err)
	}
	defer rows.Close()

	catalog := make([]quote.AircraftSpec, 0)
	for rows.Next() {
		var a quote.AircraftSpec
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.MaxPassengers, &a.RangeKm, &a.CruiseSpeedKmh, &a.HourlyRate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan aircraft type row", err)
		}
		catalog = append(catalog, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate aircraft type rows", err)
	}
	return catalog, nil
}
