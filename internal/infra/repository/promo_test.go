//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"charter-quote-api/internal/infra"
	"charter-quote-api/internal/infra/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDB records the last Exec call and returns canned results.
type stubDB struct {
	execTag pgconn.CommandTag
	execErr error
	gotSQL  string
	gotArgs []any
}

func (s *stubDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("unexpected Query")
}

func (s *stubDB) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("unexpected QueryRow")
}

func (s *stubDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.gotSQL = sql
	s.gotArgs = args
	return s.execTag, s.execErr
}

func TestPromoCodeRepository_ConsumeUse(t *testing.T) {
	ctx := context.Background()

	t.Run("decrement that hits a row reserves the use", func(t *testing.T) {
		db := &stubDB{execTag: pgconn.NewCommandTag("UPDATE 1")}
		repo := repository.NewPromoCodeRepository(db)

		consumed, err := repo.ConsumeUse(ctx, 7)

		require.NoError(t, err)
		assert.True(t, consumed)
		assert.Contains(t, db.gotSQL, "remaining_uses > 0")
		assert.Equal(t, []any{int64(7)}, db.gotArgs)
	})

	t.Run("decrement that misses reports a lost race, not an error", func(t *testing.T) {
		db := &stubDB{execTag: pgconn.NewCommandTag("UPDATE 0")}
		repo := repository.NewPromoCodeRepository(db)

		consumed, err := repo.ConsumeUse(ctx, 7)

		require.NoError(t, err)
		assert.False(t, consumed)
	})

	t.Run("database failure is categorized", func(t *testing.T) {
		db := &stubDB{execErr: errors.New("connection reset")}
		repo := repository.NewPromoCodeRepository(db)

		_, err := repo.ConsumeUse(ctx, 7)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
