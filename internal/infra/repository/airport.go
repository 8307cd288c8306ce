package repository

import (
	"context"

	"charter-quote-api/internal/domain/quote"
	"charter-quote-api/internal/infra"
)

type AirportRepository struct {
	db DB
}

func NewAirportRepository(db DB) *AirportRepository {
	return &AirportRepository{db: db}
}

func (r *AirportRepository) FindByID(ctx context.Context, id int64) (*quote.AirportSpec, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, iata_code, latitude, longitude FROM airports WHERE id = $1`, id)

	var a quote.AirportSpec
	if err := row.Scan(&a.ID, &a.IATACode, &a.Latitude, &a.Longitude); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("airport not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find airport by ID", err)
	}
	return &a, nil
}
