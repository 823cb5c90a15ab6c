package importer

import (
	"strconv"
	"strings"
	"time"
)

// MemberRow is the canonical field set one spreadsheet row maps to,
// whichever layout it came from.
type MemberRow struct {
	// HouseholdID is the household business key to resolve into an
	// internal reference at persistence time.
	HouseholdID string
	// HouseholdRef is an already-resolved internal reference supplied
	// verbatim by the standard layout.
	HouseholdRef *int64
	MemberID     string
	FirstName    string
	LastName     string
	Relationship string
	BirthDate    *time.Time
	WeddingDate  *time.Time
	Phone        string
	Email        string
	Visible      bool
}

// Validate reports why the row cannot be persisted, or nil.
func (r MemberRow) Validate() error {
	switch {
	case r.MemberID == "":
		return errMissingField("member_id")
	case r.FirstName == "":
		return errMissingField("first_name")
	case r.LastName == "":
		return errMissingField("last_name")
	}
	return nil
}

// IconCMO member export column positions. Asserted against the detected
// header row so layout drift fails at the boundary instead of deep in
// field mapping.
const (
	mColFamilyID      = 0
	mColMemberID      = 1
	mColFirstName     = 2
	mColLastName      = 3
	mColRelationship  = 4
	mColBirthMonth    = 5
	mColBirthDay      = 6
	mColWeddingSerial = 7
	mColPhone         = 8
	mColEmail         = 9
)

// memberHeaderScanRows bounds the search for the IconCMO header row.
const memberHeaderScanRows = 10

type memberLayout struct {
	format  Format
	matches func(g Grid) bool
	rows    func(g Grid) ([]MemberRow, error)
}

// Ordered recognizers; the standard layout is the fallback and never
// fails detection.
var memberLayouts = []memberLayout{
	{format: FormatIconCMO, matches: matchesIconCMOMembers, rows: iconCMOMemberRows},
}

// DetectMembers classifies the grid and maps it into canonical rows.
func DetectMembers(g Grid) (Format, []MemberRow, error) {
	for _, l := range memberLayouts {
		if l.matches(g) {
			rows, err := l.rows(g)
			return l.format, rows, err
		}
	}
	rows, err := standardMemberRows(g)
	return FormatStandard, rows, err
}

func memberHeaderRow(g Grid) (row int, ok bool) {
	limit := memberHeaderScanRows
	if len(g) < limit {
		limit = len(g)
	}
	for i := 0; i < limit; i++ {
		for _, cell := range g[i] {
			if strings.Contains(cell, "Family ID") {
				return i, true
			}
		}
	}
	return 0, false
}

func matchesIconCMOMembers(g Grid) bool {
	_, ok := memberHeaderRow(g)
	return ok
}

func iconCMOMemberRows(g Grid) ([]MemberRow, error) {
	header, ok := memberHeaderRow(g)
	if !ok {
		return nil, ErrNoDataRows
	}
	if !strings.Contains(g.Cell(header, mColFamilyID), "Family ID") {
		return nil, layoutDrift("Family ID header is not in the expected column")
	}

	var out []MemberRow
	for i := header + 1; i < len(g); i++ {
		if rowEmpty(g[i]) {
			continue
		}
		out = append(out, MemberRow{
			HouseholdID:  g.Cell(i, mColFamilyID),
			MemberID:     g.Cell(i, mColMemberID),
			FirstName:    g.Cell(i, mColFirstName),
			LastName:     g.Cell(i, mColLastName),
			Relationship: g.Cell(i, mColRelationship),
			BirthDate:    MonthDayDate(g.Cell(i, mColBirthMonth), g.Cell(i, mColBirthDay)),
			WeddingDate:  SerialDate(g.Cell(i, mColWeddingSerial)),
			Phone:        g.Cell(i, mColPhone),
			Email:        g.Cell(i, mColEmail),
			Visible:      true,
		})
	}
	return out, nil
}

func standardMemberRows(g Grid) ([]MemberRow, error) {
	if len(g) < 2 {
		return nil, nil
	}
	h := g.headers()

	var out []MemberRow
	for i := 1; i < len(g); i++ {
		if rowEmpty(g[i]) {
			continue
		}
		row := MemberRow{
			HouseholdID:  h.get(g, i, "household_id"),
			MemberID:     h.get(g, i, "member_id"),
			FirstName:    h.get(g, i, "first_name"),
			LastName:     h.get(g, i, "last_name"),
			Relationship: h.get(g, i, "relationship"),
			BirthDate:    ISODate(h.get(g, i, "birth_date")),
			WeddingDate:  ISODate(h.get(g, i, "wedding_date")),
			Phone:        h.get(g, i, "phone"),
			Email:        h.get(g, i, "email"),
			Visible:      parseVisible(h.get(g, i, "visible")),
		}
		if ref := h.get(g, i, "household_ref"); ref != "" {
			if n, err := strconv.ParseInt(ref, 10, 64); err == nil {
				row.HouseholdRef = &n
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func parseVisible(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "false", "0", "no":
		return false
	default:
		return true
	}
}

func rowEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
