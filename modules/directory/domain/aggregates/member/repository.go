package member

import (
	"context"

	"github.com/go-faster/errors"
)

var ErrNotFound = errors.New("member not found")

type FindParams struct {
	Q           string
	VisibleOnly bool
	Limit       int
	Offset      int
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Member, int64, error)
	GetByMemberID(ctx context.Context, memberID string) (Member, error)
	ListByHousehold(ctx context.Context, householdRef int64, visibleOnly bool) ([]Member, error)
	// Upsert inserts or updates by the MemberID business key and reports
	// whether a new row was created.
	Upsert(ctx context.Context, m Member) (Member, bool, error)
	Count(ctx context.Context) (int64, error)
}
