package repository

import (
	"context"

	"charter-quote-api/internal/domain/quote"
	"charter-quote-api/internal/infra"
)

type ExtraRepository struct {
	db DB
}

func NewExtraRepository(db DB) *ExtraRepository {
	return &ExtraRepository{db: db}
}

// FindByIDs returns the extras matching the given IDs. IDs without a row
// are dropped silently; the caller only prices what resolves.
func (r *ExtraRepository) FindByIDs(ctx context.Context, ids []int64) ([]quote.ExtraSpec, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, price, description FROM extras WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find extras", err)
	}
	defer rows.Close()

	extras := make([]quote.ExtraSpec, 0, len(ids))
	for rows.Next() {
		var e quote.ExtraSpec
		if err := rows.Scan(&e.ID, &e.Name, &e.Price, &e.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra row", err)
		}
		extras = append(extras, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extra rows", err)
	}
	return extras, nil
}
