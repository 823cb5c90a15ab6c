package persistence

import (
	"context"
	"fmt"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/parishdesk/parishdesk/modules/giving/domain/aggregates/donation"
	"github.com/parishdesk/parishdesk/pkg/composables"
)

const (
	donationSelectQuery = `
        SELECT
            d.id,
            d.household_id,
            d.donor_number,
            d.fund,
            d.amount,
            d.donated_on,
            d.created_at
        FROM donations d`

	donationCountQuery = `SELECT COUNT(d.id) FROM donations d`

	donationInsertQuery = `
        INSERT INTO donations (household_id, donor_number, fund, amount, donated_on, created_at)
        VALUES ($1, $2, $3, $4, $5, now())
        RETURNING id, household_id, donor_number, fund, amount, donated_on, created_at`
)

type PgDonationRepository struct{}

func NewDonationRepository() donation.Repository {
	return &PgDonationRepository{}
}

func (g *PgDonationRepository) GetPaginated(ctx context.Context, params *donation.FindParams) ([]donation.Donation, int64, error) {
	if params == nil {
		params = &donation.FindParams{}
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
	if v := strings.TrimSpace(params.HouseholdID); v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("d.household_id = $%d", len(args)))
	}
	if v := strings.TrimSpace(params.Fund); v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("d.fund = $%d", len(args)))
	}

	query := donationSelectQuery
	countQuery := donationCountQuery
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
		countQuery += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY d.donated_on DESC, d.id DESC OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)

	rows, err := tx.Query(ctx, query, append(args, offset, limit)...)
	if err != nil {
		return nil, 0, gerrors.Wrap(err, "query donations")
	}
	defer rows.Close()

	out := make([]donation.Donation, 0, limit)
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, gerrors.Wrap(err, "count donations")
	}

	return out, total, nil
}

func (g *PgDonationRepository) Create(ctx context.Context, d donation.Donation) (donation.Donation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return donation.Donation{}, err
	}

	out, err := scanDonation(tx.QueryRow(ctx, donationInsertQuery,
		d.HouseholdID(),
		d.DonorNumber(),
		d.Fund(),
		d.Amount(),
		pgtype.Date{Time: d.DonatedOn(), Valid: true},
	))
	if err != nil {
		return donation.Donation{}, gerrors.Wrap(err, "insert donation")
	}
	return out, nil
}

func (g *PgDonationRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := tx.QueryRow(ctx, donationCountQuery).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func scanDonation(row pgx.Row) (donation.Donation, error) {
	var (
		id          int64
		householdID string
		donorNumber string
		fund        string
		amount      decimal.Decimal
		donatedOn   pgtype.Date
		createdAt   pgtype.Timestamptz
	)
	if err := row.Scan(&id, &householdID, &donorNumber, &fund, &amount, &donatedOn, &createdAt); err != nil {
		return donation.Donation{}, err
	}
	return donation.Hydrate(id, householdID, donorNumber, fund, amount, donatedOn.Time, createdAt.Time), nil
}
