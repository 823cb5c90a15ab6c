package household

import (
	"context"

	"github.com/go-faster/errors"
)

var ErrNotFound = errors.New("household not found")

type FindParams struct {
	Q      string
	Limit  int
	Offset int
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Household, int64, error)
	GetByID(ctx context.Context, id int64) (Household, error)
	GetByHouseholdID(ctx context.Context, householdID string) (Household, error)
	// Upsert inserts or updates by the HouseholdID business key and
	// reports whether a new row was created.
	Upsert(ctx context.Context, h Household) (Household, bool, error)
	Count(ctx context.Context) (int64, error)
}
