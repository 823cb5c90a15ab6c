package announcement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestActiveAt(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	a := New("Potluck", "Bring a dish.", true, datePtr(2026, time.March, 1), datePtr(2026, time.March, 31))
	require.True(t, a.ActiveAt(now))

	require.False(t, New("Potluck", "Bring a dish.", false, nil, nil).ActiveAt(now))
	require.False(t, New("Potluck", "Bring a dish.", true, datePtr(2026, time.April, 1), nil).ActiveAt(now))
	require.False(t, New("Potluck", "Bring a dish.", true, nil, datePtr(2026, time.February, 1)).ActiveAt(now))
	require.True(t, New("Potluck", "Bring a dish.", true, nil, nil).ActiveAt(now))
}

func TestUpsertDTO_Ok(t *testing.T) {
	dto := &UpsertDTO{Title: "  Potluck  ", Body: "Bring a dish.", StartsOn: "2026-03-01"}
	errs, ok := dto.Ok()
	require.True(t, ok, "unexpected validation errors: %v", errs)
	require.Equal(t, "Potluck", dto.Title)

	dto = &UpsertDTO{Body: "Bring a dish."}
	errs, ok = dto.Ok()
	require.False(t, ok)
	require.Contains(t, errs, "Title")

	dto = &UpsertDTO{Title: "Potluck", Body: "Bring a dish.", StartsOn: "03/01/2026"}
	_, ok = dto.Ok()
	require.False(t, ok)
}

func TestUpsertDTO_ToEntity(t *testing.T) {
	dto := &UpsertDTO{Title: "Potluck", Body: "Bring a dish.", Published: true, StartsOn: "2026-03-01"}
	a := dto.ToEntity()
	require.Equal(t, "Potluck", a.Title())
	require.True(t, a.Published())
	require.NotNil(t, a.StartsOn())
	require.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), *a.StartsOn())
	require.Nil(t, a.ExpiresOn())
}
