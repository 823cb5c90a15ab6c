package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTrimsAndDefaultsVisible(t *testing.T) {
	m := New(" M1 ", " Ann ", " Smith ")
	require.Equal(t, "M1", m.MemberID())
	require.Equal(t, "Ann", m.FirstName())
	require.Equal(t, "Smith", m.LastName())
	require.True(t, m.Visible())
	require.True(t, m.ID() == 0)
	require.False(t, m.IsZero())
}

func TestWithBuilders(t *testing.T) {
	birth := time.Date(2000, time.March, 15, 0, 0, 0, 0, time.UTC)
	ref := int64(42)

	m := New("M1", "Ann", "Smith").
		WithRelationship("Head").
		WithDates(&birth, nil).
		WithContact("555-0100", "ann@example.com").
		WithHouseholdRef(&ref).
		WithVisible(false)

	require.Equal(t, "Head", m.Relationship())
	require.NotNil(t, m.BirthDate())
	require.Equal(t, birth, *m.BirthDate())
	require.Nil(t, m.WeddingDate())
	require.Equal(t, "ann@example.com", m.Email())
	require.NotNil(t, m.HouseholdRef())
	require.Equal(t, int64(42), *m.HouseholdRef())
	require.False(t, m.Visible())
}

func TestWithBuildersDoNotMutateReceiver(t *testing.T) {
	base := New("M1", "Ann", "Smith")
	_ = base.WithVisible(false)
	require.True(t, base.Visible())
}
