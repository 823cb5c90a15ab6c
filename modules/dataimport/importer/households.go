package importer

import "fmt"

// HouseholdRow is the canonical field set for one household upload row.
type HouseholdRow struct {
	HouseholdID string
	MailTo      string
	Address     string
	Phone       string
	Email       string
	DonorNumber string
	PrayerGroup string
}

func (r HouseholdRow) Validate() error {
	switch {
	case r.HouseholdID == "":
		return errMissingField("household_id")
	case r.MailTo == "":
		return errMissingField("mail_to")
	}
	return nil
}

// IconCMO household export column positions.
const (
	hColID        = 1
	hColMailTo    = 2
	hColPhone     = 3
	hColStreet    = 4
	hColCity      = 5
	hColState     = 6
	hColZip       = 7
	hColDonor     = 8
	hColPrayer    = 9
	hHeaderRow    = 5
	hFirstDataRow = 6
)

type householdLayout struct {
	format  Format
	matches func(g Grid) bool
	rows    func(g Grid) ([]HouseholdRow, error)
}

var householdLayouts = []householdLayout{
	{format: FormatIconCMO, matches: matchesIconCMOHouseholds, rows: iconCMOHouseholdRows},
}

// DetectHouseholds classifies the grid and maps it into canonical rows.
// The standard fallback rejects the whole upload when the required
// household_id/mail_to headers are absent.
func DetectHouseholds(g Grid) (Format, []HouseholdRow, error) {
	for _, l := range householdLayouts {
		if l.matches(g) {
			rows, err := l.rows(g)
			return l.format, rows, err
		}
	}
	rows, err := standardHouseholdRows(g)
	return FormatStandard, rows, err
}

func matchesIconCMOHouseholds(g Grid) bool {
	return g.Cell(hHeaderRow, hColID) == "ID" && g.Cell(hHeaderRow, hColMailTo) == "Mail To"
}

func iconCMOHouseholdRows(g Grid) ([]HouseholdRow, error) {
	var out []HouseholdRow
	for i := hFirstDataRow; i < len(g); i++ {
		if rowEmpty(g[i]) {
			continue
		}
		out = append(out, HouseholdRow{
			HouseholdID: g.Cell(i, hColID),
			MailTo:      g.Cell(i, hColMailTo),
			Phone:       g.Cell(i, hColPhone),
			Address: SynthesizeAddress(
				g.Cell(i, hColStreet),
				g.Cell(i, hColCity),
				g.Cell(i, hColState),
				g.Cell(i, hColZip),
			),
			DonorNumber: g.Cell(i, hColDonor),
			PrayerGroup: g.Cell(i, hColPrayer),
		})
	}
	return out, nil
}

func standardHouseholdRows(g Grid) ([]HouseholdRow, error) {
	if len(g) == 0 {
		return nil, ErrEmptyWorkbook
	}
	h := g.headers()

	var missing []string
	if !h.has("household_id") {
		missing = append(missing, "household_id")
	}
	if !h.has("mail_to") {
		missing = append(missing, "mail_to")
	}
	if len(missing) > 0 {
		return nil, MissingColumns(missing...)
	}

	var out []HouseholdRow
	for i := 1; i < len(g); i++ {
		if rowEmpty(g[i]) {
			continue
		}
		out = append(out, HouseholdRow{
			HouseholdID: h.get(g, i, "household_id"),
			MailTo:      h.get(g, i, "mail_to"),
			Phone:       h.get(g, i, "phone"),
			Address:     h.get(g, i, "address"),
			Email:       h.get(g, i, "email"),
			DonorNumber: h.get(g, i, "donor_number"),
			PrayerGroup: h.get(g, i, "prayer_group"),
		})
	}
	return out, nil
}

// SynthesizeAddress assembles a single-line postal address only when all
// four components are present; otherwise the raw street value is returned
// unmodified.
func SynthesizeAddress(street, city, state, zip string) string {
	if street == "" || city == "" || state == "" || zip == "" {
		return street
	}
	return fmt.Sprintf("%s, %s, %s %s", street, city, state, zip)
}
