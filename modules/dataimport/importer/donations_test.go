package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func iconCMODonationGrid() Grid {
	return Grid{
		{"Donations Report"},
		{},
		{"Household ID", "Donor Number", "Fund", "Amount"},
		{"H100", "D42", "General", "125.50"},
		{"H200", "D43", "Building", "abc"},
	}
}

func TestDetectDonations_IconCMO(t *testing.T) {
	format, rows, err := DetectDonations(iconCMODonationGrid())
	require.NoError(t, err)
	require.Equal(t, FormatIconCMO, format)
	// The header remnant row is mapped too; Validate rejects it later.
	require.Len(t, rows, 3)

	require.Equal(t, "Household ID", rows[0].HouseholdID)
	require.Equal(t, "H100", rows[1].HouseholdID)
	require.Nil(t, rows[1].Date)
}

func TestDetectDonations_Standard(t *testing.T) {
	g := Grid{
		{"household_id", "donor_number", "fund", "amount", "date"},
		{"H100", "D42", "General", "125.50", "2024-06-30"},
		{"H100", "D42", "General", "99.00", ""},
	}

	format, rows, err := DetectDonations(g)
	require.NoError(t, err)
	require.Equal(t, FormatStandard, format)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Date)
	require.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), *rows[0].Date)
	require.Nil(t, rows[1].Date)
}

func TestDonationRowValidate(t *testing.T) {
	amount, err := DonationRow{HouseholdID: "H100", DonorNumber: "D42", Fund: "General", Amount: "125.50"}.Validate()
	require.NoError(t, err)
	require.Equal(t, "125.5", amount.String())

	// Header remnants from the fixed-position layout are skipped.
	_, err = DonationRow{HouseholdID: "Household ID", DonorNumber: "Donor Number", Fund: "Fund", Amount: "Amount"}.Validate()
	require.Error(t, err)

	_, err = DonationRow{HouseholdID: "H100", DonorNumber: "D42", Fund: "General", Amount: "abc"}.Validate()
	require.Error(t, err)

	_, err = DonationRow{DonorNumber: "D42", Fund: "General", Amount: "125.50"}.Validate()
	require.Error(t, err)
}
