package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/member"
	"github.com/parishdesk/parishdesk/pkg/composables"
)

const (
	memberSelectQuery = `
        SELECT
            m.id,
            m.member_id,
            m.first_name,
            m.last_name,
            m.relationship,
            m.birth_date,
            m.wedding_date,
            m.phone,
            m.email,
            m.household_ref,
            m.visible,
            m.created_at,
            m.updated_at
        FROM members m`

	memberCountQuery = `SELECT COUNT(m.id) FROM members m`

	memberUpsertQuery = `
        INSERT INTO members (member_id, first_name, last_name, relationship, birth_date, wedding_date, phone, email, household_ref, visible, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
        ON CONFLICT (member_id) DO UPDATE SET
            first_name = EXCLUDED.first_name,
            last_name = EXCLUDED.last_name,
            relationship = EXCLUDED.relationship,
            birth_date = EXCLUDED.birth_date,
            wedding_date = EXCLUDED.wedding_date,
            phone = EXCLUDED.phone,
            email = EXCLUDED.email,
            household_ref = EXCLUDED.household_ref,
            visible = EXCLUDED.visible,
            updated_at = now()
        RETURNING id, member_id, first_name, last_name, relationship, birth_date, wedding_date, phone, email, household_ref, visible, created_at, updated_at, (xmax = 0) AS inserted`
)

type PgMemberRepository struct{}

func NewMemberRepository() member.Repository {
	return &PgMemberRepository{}
}

func (g *PgMemberRepository) GetPaginated(ctx context.Context, params *member.FindParams) ([]member.Member, int64, error) {
	if params == nil {
		params = &member.FindParams{}
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
		where = append(where, fmt.Sprintf("(m.first_name ILIKE $%d OR m.last_name ILIKE $%d)", len(args), len(args)))
	}
	if params.VisibleOnly {
		where = append(where, "m.visible")
	}

	query := memberSelectQuery
	countQuery := memberCountQuery
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
		countQuery += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY m.last_name, m.first_name, m.id OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)

	rows, err := tx.Query(ctx, query, append(args, offset, limit)...)
	if err != nil {
		return nil, 0, gerrors.Wrap(err, "query members")
	}
	defer rows.Close()

	out := make([]member.Member, 0, limit)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, gerrors.Wrap(err, "count members")
	}

	return out, total, nil
}

func (g *PgMemberRepository) GetByMemberID(ctx context.Context, memberID string) (member.Member, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return member.Member{}, err
	}
	m, err := scanMember(tx.QueryRow(ctx, memberSelectQuery+" WHERE m.member_id = $1", strings.TrimSpace(memberID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.Member{}, member.ErrNotFound
		}
		return member.Member{}, err
	}
	return m, nil
}

func (g *PgMemberRepository) ListByHousehold(ctx context.Context, householdRef int64, visibleOnly bool) ([]member.Member, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := memberSelectQuery + " WHERE m.household_ref = $1"
	if visibleOnly {
		query += " AND m.visible"
	}
	query += " ORDER BY m.last_name, m.first_name, m.id"

	rows, err := tx.Query(ctx, query, householdRef)
	if err != nil {
		return nil, gerrors.Wrap(err, "query household members")
	}
	defer rows.Close()

	var out []member.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (g *PgMemberRepository) Upsert(ctx context.Context, m member.Member) (member.Member, bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return member.Member{}, false, err
	}

	row := tx.QueryRow(ctx, memberUpsertQuery,
		strings.TrimSpace(m.MemberID()),
		strings.TrimSpace(m.FirstName()),
		strings.TrimSpace(m.LastName()),
		nullText(m.Relationship()),
		nullDate(m.BirthDate()),
		nullDate(m.WeddingDate()),
		nullText(m.Phone()),
		nullText(m.Email()),
		nullInt8(m.HouseholdRef()),
		m.Visible(),
	)

	out, inserted, err := scanMemberWithInserted(row)
	if err != nil {
		return member.Member{}, false, gerrors.Wrap(err, "upsert member")
	}
	return out, inserted, nil
}

func (g *PgMemberRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := tx.QueryRow(ctx, memberCountQuery).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

type memberRow struct {
	id           int64
	memberID     string
	firstName    string
	lastName     string
	relationship pgtype.Text
	birthDate    pgtype.Date
	weddingDate  pgtype.Date
	phone        pgtype.Text
	email        pgtype.Text
	householdRef pgtype.Int8
	visible      bool
	createdAt    pgtype.Timestamptz
	updatedAt    pgtype.Timestamptz
}

func (r memberRow) toDomain() member.Member {
	return member.Hydrate(
		r.id, r.memberID, r.firstName, r.lastName,
		textValue(r.relationship),
		dateValue(r.birthDate), dateValue(r.weddingDate),
		textValue(r.phone), textValue(r.email),
		int8Value(r.householdRef), r.visible,
		r.createdAt.Time, r.updatedAt.Time,
	)
}

func scanMember(row pgx.Row) (member.Member, error) {
	var r memberRow
	if err := row.Scan(
		&r.id, &r.memberID, &r.firstName, &r.lastName, &r.relationship,
		&r.birthDate, &r.weddingDate, &r.phone, &r.email,
		&r.householdRef, &r.visible, &r.createdAt, &r.updatedAt,
	); err != nil {
		return member.Member{}, err
	}
	return r.toDomain(), nil
}

func scanMemberWithInserted(row pgx.Row) (member.Member, bool, error) {
	var r memberRow
	var inserted bool
	if err := row.Scan(
		&r.id, &r.memberID, &r.firstName, &r.lastName, &r.relationship,
		&r.birthDate, &r.weddingDate, &r.phone, &r.email,
		&r.householdRef, &r.visible, &r.createdAt, &r.updatedAt, &inserted,
	); err != nil {
		return member.Member{}, false, err
	}
	return r.toDomain(), inserted, nil
}
