package repository

import (
	"context"
	"encoding/json"

	"charter-quote-api/internal/domain/quote"
	"charter-quote-api/internal/infra"

	"github.com/google/uuid"
)

type QuoteRepository struct {
	db DB
}

func NewQuoteRepository(db DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Save stores the full quote payload as JSON alongside its expiry, the way
// the quote is handed back to the client later.
func (r *QuoteRepository) Save(ctx context.Context, q *quote.Quote) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal quote", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO quotes (id, quote_data, expires_at) VALUES ($1, $2, $3)`,
		q.ID, payload, q.ExpiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert quote", err)
	}
	return nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	row := r.db.QueryRow(ctx,
		`SELECT quote_data FROM quotes WHERE id = $1`, id)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote by ID", err)
	}

	var q quote.Quote
	if err := json.Unmarshal(payload, &q); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal quote payload", err)
	}
	return &q, nil
}
