package donation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Donation is an append-only giving record. HouseholdID is the household's
// business key and is not verified to reference an existing household.
type Donation struct {
	id          int64
	householdID string
	donorNumber string
	fund        string
	amount      decimal.Decimal
	donatedOn   time.Time
	createdAt   time.Time
}

func New(householdID, donorNumber, fund string, amount decimal.Decimal, donatedOn time.Time) Donation {
	return Donation{
		householdID: strings.TrimSpace(householdID),
		donorNumber: strings.TrimSpace(donorNumber),
		fund:        strings.TrimSpace(fund),
		amount:      amount,
		donatedOn:   donatedOn,
	}
}

func Hydrate(
	id int64,
	householdID string,
	donorNumber string,
	fund string,
	amount decimal.Decimal,
	donatedOn time.Time,
	createdAt time.Time,
) Donation {
	return Donation{
		id:          id,
		householdID: strings.TrimSpace(householdID),
		donorNumber: strings.TrimSpace(donorNumber),
		fund:        strings.TrimSpace(fund),
		amount:      amount,
		donatedOn:   donatedOn,
		createdAt:   createdAt,
	}
}

func (d Donation) ID() int64               { return d.id }
func (d Donation) HouseholdID() string     { return d.householdID }
func (d Donation) DonorNumber() string     { return d.donorNumber }
func (d Donation) Fund() string            { return d.fund }
func (d Donation) Amount() decimal.Decimal { return d.amount }
func (d Donation) DonatedOn() time.Time    { return d.donatedOn }
func (d Donation) CreatedAt() time.Time    { return d.createdAt }
