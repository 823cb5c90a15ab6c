package donation

import "context"

type FindParams struct {
	HouseholdID string
	Fund        string
	Limit       int
	Offset      int
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Donation, int64, error)
	// Create appends a donation record; donations carry no business key
	// and are never updated or deduplicated.
	Create(ctx context.Context, d Donation) (Donation, error)
	Count(ctx context.Context) (int64, error)
}
