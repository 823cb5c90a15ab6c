package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/household"
	"github.com/parishdesk/parishdesk/pkg/composables"
)

const (
	householdSelectQuery = `
        SELECT
            h.id,
            h.household_id,
            h.mail_to,
            h.address,
            h.phone,
            h.email,
            h.donor_number,
            h.prayer_group,
            h.created_at,
            h.updated_at
        FROM households h`

	householdCountQuery = `SELECT COUNT(h.id) FROM households h`

	householdUpsertQuery = `
        INSERT INTO households (household_id, mail_to, address, phone, email, donor_number, prayer_group, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
        ON CONFLICT (household_id) DO UPDATE SET
            mail_to = EXCLUDED.mail_to,
            address = EXCLUDED.address,
            phone = EXCLUDED.phone,
            email = EXCLUDED.email,
            donor_number = EXCLUDED.donor_number,
            prayer_group = EXCLUDED.prayer_group,
            updated_at = now()
        RETURNING id, household_id, mail_to, address, phone, email, donor_number, prayer_group, created_at, updated_at, (xmax = 0) AS inserted`
)

type PgHouseholdRepository struct{}

func NewHouseholdRepository() household.Repository {
	return &PgHouseholdRepository{}
}

func (g *PgHouseholdRepository) GetPaginated(ctx context.Context, params *household.FindParams) ([]household.Household, int64, error) {
	if params == nil {
		params = &household.FindParams{}
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	var where []string
	var args []any
	if q := strings.TrimSpace(params.Q); q != "" {
		args = append(args, "%"+q+"%")
		where = append(where, fmt.Sprintf("(h.mail_to ILIKE $%d OR h.household_id ILIKE $%d)", len(args), len(args)))
	}

	query := householdSelectQuery
	countQuery := householdCountQuery
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
		countQuery += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY h.mail_to, h.id OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)

	rows, err := tx.Query(ctx, query, append(args, offset, limit)...)
	if err != nil {
		return nil, 0, gerrors.Wrap(err, "query households")
	}
	defer rows.Close()

	out := make([]household.Household, 0, limit)
	for rows.Next() {
		h, err := scanHousehold(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, gerrors.Wrap(err, "count households")
	}

	return out, total, nil
}

func (g *PgHouseholdRepository) GetByID(ctx context.Context, id int64) (household.Household, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return household.Household{}, err
	}
	return g.getOne(ctx, tx.QueryRow(ctx, householdSelectQuery+" WHERE h.id = $1", id))
}

func (g *PgHouseholdRepository) GetByHouseholdID(ctx context.Context, householdID string) (household.Household, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return household.Household{}, err
	}
	return g.getOne(ctx, tx.QueryRow(ctx, householdSelectQuery+" WHERE h.household_id = $1", strings.TrimSpace(householdID)))
}

func (g *PgHouseholdRepository) Upsert(ctx context.Context, h household.Household) (household.Household, bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return household.Household{}, false, err
	}

	row := tx.QueryRow(ctx, householdUpsertQuery,
		strings.TrimSpace(h.HouseholdID()),
		strings.TrimSpace(h.MailTo()),
		nullText(h.Address()),
		nullText(h.Phone()),
		nullText(h.Email()),
		nullText(h.DonorNumber()),
		nullText(h.PrayerGroup()),
	)

	var (
		id          int64
		householdID string
		mailTo      string
		address     pgtype.Text
		phone       pgtype.Text
		email       pgtype.Text
		donorNumber pgtype.Text
		prayerGroup pgtype.Text
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
		inserted    bool
	)
	if err := row.Scan(
		&id, &householdID, &mailTo, &address, &phone, &email,
		&donorNumber, &prayerGroup, &createdAt, &updatedAt, &inserted,
	); err != nil {
		return household.Household{}, false, gerrors.Wrap(err, "upsert household")
	}

	return household.Hydrate(
		id, householdID, mailTo,
		textValue(address), textValue(phone), textValue(email),
		textValue(donorNumber), textValue(prayerGroup),
		createdAt.Time, updatedAt.Time,
	), inserted, nil
}

func (g *PgHouseholdRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := tx.QueryRow(ctx, householdCountQuery).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (g *PgHouseholdRepository) getOne(_ context.Context, row pgx.Row) (household.Household, error) {
	h, err := scanHousehold(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return household.Household{}, household.ErrNotFound
		}
		return household.Household{}, err
	}
	return h, nil
}

func scanHousehold(row pgx.Row) (household.Household, error) {
	var (
		id          int64
		householdID string
		mailTo      string
		address     pgtype.Text
		phone       pgtype.Text
		email       pgtype.Text
		donorNumber pgtype.Text
		prayerGroup pgtype.Text
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &householdID, &mailTo, &address, &phone, &email,
		&donorNumber, &prayerGroup, &createdAt, &updatedAt,
	); err != nil {
		return household.Household{}, err
	}
	return household.Hydrate(
		id, householdID, mailTo,
		textValue(address), textValue(phone), textValue(email),
		textValue(donorNumber), textValue(prayerGroup),
		createdAt.Time, updatedAt.Time,
	), nil
}
