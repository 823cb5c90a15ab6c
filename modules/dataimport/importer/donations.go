package importer

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationRow is the canonical field set for one donation upload row.
// Amount stays raw until validation so unparseable values can be counted
// as skips rather than dropped silently.
type DonationRow struct {
	HouseholdID string
	DonorNumber string
	Fund        string
	Amount      string
	// Date is nil when the layout does not carry one; the caller defaults
	// it to the processing date.
	Date *time.Time
}

// Validate returns the parsed amount, or an error describing why the row
// is skipped. Header remnants from off-by-one slicing of the IconCMO
// layout are rejected by the HouseholdID literal check.
func (r DonationRow) Validate() (decimal.Decimal, error) {
	if r.HouseholdID == "" || r.HouseholdID == "Household ID" || r.HouseholdID == "household_id" {
		return decimal.Decimal{}, errMissingField("household_id")
	}
	if r.DonorNumber == "" {
		return decimal.Decimal{}, errMissingField("donor_number")
	}
	if r.Fund == "" {
		return decimal.Decimal{}, errMissingField("fund")
	}
	amount, ok := ParseAmount(r.Amount)
	if !ok {
		return decimal.Decimal{}, errMissingField("amount")
	}
	return amount, nil
}

// IconCMO donations-report column positions. Only the first column is
// named in the export; the rest are addressed positionally.
const (
	dColHouseholdID = 0
	dColDonorNumber = 1
	dColFund        = 2
	dColAmount      = 3
	dFirstDataRow   = 2
)

type donationLayout struct {
	format  Format
	matches func(g Grid) bool
	rows    func(g Grid) ([]DonationRow, error)
}

var donationLayouts = []donationLayout{
	{format: FormatIconCMO, matches: matchesIconCMODonations, rows: iconCMODonationRows},
}

// DetectDonations classifies the grid and maps it into canonical rows.
func DetectDonations(g Grid) (Format, []DonationRow, error) {
	for _, l := range donationLayouts {
		if l.matches(g) {
			rows, err := l.rows(g)
			return l.format, rows, err
		}
	}
	rows, err := standardDonationRows(g)
	return FormatStandard, rows, err
}

func matchesIconCMODonations(g Grid) bool {
	return g.Cell(0, dColHouseholdID) == "Donations Report" &&
		g.Cell(dFirstDataRow, dColHouseholdID) == "Household ID"
}

func iconCMODonationRows(g Grid) ([]DonationRow, error) {
	var out []DonationRow
	for i := dFirstDataRow; i < len(g); i++ {
		if rowEmpty(g[i]) {
			continue
		}
		out = append(out, DonationRow{
			HouseholdID: g.Cell(i, dColHouseholdID),
			DonorNumber: g.Cell(i, dColDonorNumber),
			Fund:        g.Cell(i, dColFund),
			Amount:      g.Cell(i, dColAmount),
		})
	}
	return out, nil
}

func standardDonationRows(g Grid) ([]DonationRow, error) {
	if len(g) < 2 {
		return nil, nil
	}
	h := g.headers()

	var out []DonationRow
	for i := 1; i < len(g); i++ {
		if rowEmpty(g[i]) {
			continue
		}
		out = append(out, DonationRow{
			HouseholdID: h.get(g, i, "household_id"),
			DonorNumber: h.get(g, i, "donor_number"),
			Fund:        h.get(g, i, "fund"),
			Amount:      h.get(g, i, "amount"),
			Date:        ISODate(h.get(g, i, "date")),
		})
	}
	return out, nil
}
