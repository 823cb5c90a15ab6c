package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func iconCMOMemberGrid() Grid {
	return Grid{
		{"Member Report"},
		{},
		{"Family ID", "Member ID", "First Name", "Last Name", "Relationship", "Birth Month", "Birth Day", "Wedding Date", "Phone", "Email"},
		{"H100", "M1", "Ann", "Smith", "Head", "March", "15", "36526", "555-0100", "ann@example.com"},
		{"H100", "M2", "Bob", "Smith", "Spouse", "", "", "", "", ""},
	}
}

func TestDetectMembers_IconCMO(t *testing.T) {
	format, rows, err := DetectMembers(iconCMOMemberGrid())
	require.NoError(t, err)
	require.Equal(t, FormatIconCMO, format)
	require.Len(t, rows, 2)

	require.Equal(t, "H100", rows[0].HouseholdID)
	require.Equal(t, "M1", rows[0].MemberID)
	require.Equal(t, "Ann", rows[0].FirstName)
	require.Equal(t, "Smith", rows[0].LastName)
	require.Equal(t, "Head", rows[0].Relationship)
	require.NotNil(t, rows[0].BirthDate)
	require.Equal(t, time.Date(2000, time.March, 15, 0, 0, 0, 0, time.UTC), *rows[0].BirthDate)
	require.NotNil(t, rows[0].WeddingDate)
	require.Equal(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), *rows[0].WeddingDate)
	require.True(t, rows[0].Visible)

	require.Nil(t, rows[1].BirthDate)
	require.Nil(t, rows[1].WeddingDate)
}

func TestDetectMembers_IconCMOHeaderBeyondScanWindow(t *testing.T) {
	g := Grid{}
	for i := 0; i < memberHeaderScanRows; i++ {
		g = append(g, []string{"filler"})
	}
	g = append(g, []string{"Family ID", "Member ID", "First Name", "Last Name"})

	format, _, _ := DetectMembers(g)
	require.Equal(t, FormatStandard, format)
}

func TestDetectMembers_LayoutDrift(t *testing.T) {
	g := Grid{
		{"", "Family ID", "Member ID"},
		{"", "H100", "M1"},
	}
	_, _, err := DetectMembers(g)
	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	require.Equal(t, "IMPORT_LAYOUT_DRIFT", batchErr.Code)
}

func TestDetectMembers_Standard(t *testing.T) {
	g := Grid{
		{"member_id", "first_name", "last_name", "birth_date", "household_ref", "visible"},
		{"M1", "Ann", "Smith", "1985-04-12", "42", "false"},
		{"M2", "Bob", "Smith", "", "", ""},
		{"", "", "", "", "", ""},
	}

	format, rows, err := DetectMembers(g)
	require.NoError(t, err)
	require.Equal(t, FormatStandard, format)
	require.Len(t, rows, 2)

	require.Equal(t, "M1", rows[0].MemberID)
	require.NotNil(t, rows[0].BirthDate)
	require.Equal(t, time.Date(1985, time.April, 12, 0, 0, 0, 0, time.UTC), *rows[0].BirthDate)
	require.NotNil(t, rows[0].HouseholdRef)
	require.Equal(t, int64(42), *rows[0].HouseholdRef)
	require.False(t, rows[0].Visible)

	require.Nil(t, rows[1].HouseholdRef)
	require.True(t, rows[1].Visible)
}

func TestMemberRowValidate(t *testing.T) {
	require.NoError(t, MemberRow{MemberID: "M1", FirstName: "Ann", LastName: "Smith"}.Validate())
	require.Error(t, MemberRow{FirstName: "Ann", LastName: "Smith"}.Validate())
	require.Error(t, MemberRow{MemberID: "M1", LastName: "Smith"}.Validate())
	require.Error(t, MemberRow{MemberID: "M1", FirstName: "Ann"}.Validate())
}
