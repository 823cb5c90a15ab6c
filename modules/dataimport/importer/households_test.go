package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func iconCMOHouseholdGrid() Grid {
	return Grid{
		{"Household Report"},
		{},
		{},
		{},
		{},
		{"", "ID", "Mail To", "Phone", "Street", "City", "State", "Zip", "Donor #", "Prayer Group"},
		{"", "H100", "The Smith Family", "555-0100", "12 Main St", "Springfield", "IL", "62704", "D42", "Tuesday"},
		{"", "H200", "The Jones Family", "", "45 Oak Ave", "", "", "", "", ""},
	}
}

func TestDetectHouseholds_IconCMO(t *testing.T) {
	format, rows, err := DetectHouseholds(iconCMOHouseholdGrid())
	require.NoError(t, err)
	require.Equal(t, FormatIconCMO, format)
	require.Len(t, rows, 2)

	require.Equal(t, "H100", rows[0].HouseholdID)
	require.Equal(t, "The Smith Family", rows[0].MailTo)
	require.Equal(t, "12 Main St, Springfield, IL 62704", rows[0].Address)
	require.Equal(t, "D42", rows[0].DonorNumber)
	require.Equal(t, "Tuesday", rows[0].PrayerGroup)

	// Incomplete address components fall back to the raw street value.
	require.Equal(t, "45 Oak Ave", rows[1].Address)
}

func TestDetectHouseholds_Standard(t *testing.T) {
	g := Grid{
		{"household_id", "mail_to", "address", "phone", "email", "donor_number", "prayer_group"},
		{"H100", "The Smith Family", "12 Main St", "555-0100", "smith@example.com", "D42", "Tuesday"},
	}

	format, rows, err := DetectHouseholds(g)
	require.NoError(t, err)
	require.Equal(t, FormatStandard, format)
	require.Len(t, rows, 1)
	require.Equal(t, "H100", rows[0].HouseholdID)
	require.Equal(t, "smith@example.com", rows[0].Email)
}

func TestDetectHouseholds_StandardMissingColumns(t *testing.T) {
	g := Grid{
		{"id", "name"},
		{"H100", "Smith"},
	}

	_, _, err := DetectHouseholds(g)
	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	require.Equal(t, "IMPORT_MISSING_COLUMNS", batchErr.Code)
	require.Contains(t, batchErr.Message, "household_id")
	require.Contains(t, batchErr.Message, "mail_to")
}

func TestSynthesizeAddress(t *testing.T) {
	require.Equal(t,
		"12 Main St, Springfield, IL 62704",
		SynthesizeAddress("12 Main St", "Springfield", "IL", "62704"),
	)
	require.Equal(t, "12 Main St", SynthesizeAddress("12 Main St", "", "IL", "62704"))
	require.Equal(t, "", SynthesizeAddress("", "Springfield", "IL", "62704"))
}

func TestHouseholdRowValidate(t *testing.T) {
	require.NoError(t, HouseholdRow{HouseholdID: "H100", MailTo: "Smith"}.Validate())
	require.Error(t, HouseholdRow{MailTo: "Smith"}.Validate())
	require.Error(t, HouseholdRow{HouseholdID: "H100"}.Validate())
}
