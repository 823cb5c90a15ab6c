package announcement

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

var ErrNotFound = errors.New("announcement not found")

type Repository interface {
	// ListActive returns published announcements whose start/expiry window
	// contains the given time.
	ListActive(ctx context.Context, now time.Time) ([]Announcement, error)
	GetByID(ctx context.Context, id int64) (Announcement, error)
	Create(ctx context.Context, a Announcement) (Announcement, error)
	Update(ctx context.Context, id int64, a Announcement) (Announcement, error)
	Delete(ctx context.Context, id int64) error
}
