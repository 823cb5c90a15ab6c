package persistence

import (
	"context"
	"errors"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/parishdesk/parishdesk/modules/bulletin/domain/entities/announcement"
	"github.com/parishdesk/parishdesk/pkg/composables"
)

const (
	announcementSelectQuery = `
        SELECT
            a.id,
            a.title,
            a.body,
            a.published,
            a.starts_on,
            a.expires_on,
            a.created_at,
            a.updated_at
        FROM announcements a`

	announcementActiveQuery = announcementSelectQuery + `
        WHERE a.published
          AND (a.starts_on IS NULL OR a.starts_on <= $1)
          AND (a.expires_on IS NULL OR a.expires_on >= $1)
        ORDER BY a.created_at DESC`

	announcementInsertQuery = `
        INSERT INTO announcements (title, body, published, starts_on, expires_on, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, now(), now())
        RETURNING id, title, body, published, starts_on, expires_on, created_at, updated_at`

	announcementUpdateQuery = `
        UPDATE announcements SET
            title = $2,
            body = $3,
            published = $4,
            starts_on = $5,
            expires_on = $6,
            updated_at = now()
        WHERE id = $1
        RETURNING id, title, body, published, starts_on, expires_on, created_at, updated_at`

	announcementDeleteQuery = `DELETE FROM announcements WHERE id = $1`
)

type PgAnnouncementRepository struct{}

func NewAnnouncementRepository() announcement.Repository {
	return &PgAnnouncementRepository{}
}

func (g *PgAnnouncementRepository) ListActive(ctx context.Context, now time.Time) ([]announcement.Announcement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, announcementActiveQuery, pgtype.Date{Time: now, Valid: true})
	if err != nil {
		return nil, gerrors.Wrap(err, "query announcements")
	}
	defer rows.Close()

	var out []announcement.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (g *PgAnnouncementRepository) GetByID(ctx context.Context, id int64) (announcement.Announcement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return announcement.Announcement{}, err
	}
	a, err := scanAnnouncement(tx.QueryRow(ctx, announcementSelectQuery+" WHERE a.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrNotFound
		}
		return announcement.Announcement{}, err
	}
	return a, nil
}

func (g *PgAnnouncementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return announcement.Announcement{}, err
	}
	out, err := scanAnnouncement(tx.QueryRow(ctx, announcementInsertQuery,
		a.Title(), a.Body(), a.Published(), nullDate(a.StartsOn()), nullDate(a.ExpiresOn()),
	))
	if err != nil {
		return announcement.Announcement{}, gerrors.Wrap(err, "insert announcement")
	}
	return out, nil
}

func (g *PgAnnouncementRepository) Update(ctx context.Context, id int64, a announcement.Announcement) (announcement.Announcement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return announcement.Announcement{}, err
	}
	out, err := scanAnnouncement(tx.QueryRow(ctx, announcementUpdateQuery,
		id, a.Title(), a.Body(), a.Published(), nullDate(a.StartsOn()), nullDate(a.ExpiresOn()),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrNotFound
		}
		return announcement.Announcement{}, gerrors.Wrap(err, "update announcement")
	}
	return out, nil
}

func (g *PgAnnouncementRepository) Delete(ctx context.Context, id int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, announcementDeleteQuery, id)
	if err != nil {
		return gerrors.Wrap(err, "delete announcement")
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrNotFound
	}
	return nil
}

func nullDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var (
		id        int64
		title     string
		body      string
		published bool
		startsOn  pgtype.Date
		expiresOn pgtype.Date
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &title, &body, &published, &startsOn, &expiresOn, &createdAt, &updatedAt); err != nil {
		return announcement.Announcement{}, err
	}

	var starts, expires *time.Time
	if startsOn.Valid {
		t := startsOn.Time
		starts = &t
	}
	if expiresOn.Valid {
		t := expiresOn.Time
		expires = &t
	}
	return announcement.Hydrate(id, title, body, published, starts, expires, createdAt.Time, updatedAt.Time), nil
}
