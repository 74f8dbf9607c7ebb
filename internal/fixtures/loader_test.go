package fixtures

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestLoad_DemoFixtures(t *testing.T) {
	schedule, err := Load(filepath.Join("..", "..", "fixtures", "demo.yaml"))
	require.NoError(t, err)

	require.NotNil(t, schedule.Date)
	assert.Equal(t, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), *schedule.Date)

	require.Len(t, schedule.Staff, 2)
	anna, ok := schedule.StaffByOwner("10")
	require.True(t, ok)
	assert.Equal(t, "Anna", anna.Name)

	monday, ok := anna.HoursOn(time.Monday)
	require.True(t, ok)
	assert.True(t, monday.IsWorking)
	assert.Equal(t, types.MustTimeOfDay(9, 15), monday.Start)

	wednesday, ok := anna.HoursOn(time.Wednesday)
	require.True(t, ok)
	assert.False(t, wednesday.IsWorking)

	_, ok = anna.HoursOn(time.Sunday)
	assert.False(t, ok)

	// 1 элемент + 2 + 1 + 1 по услугам бронирований
	require.Len(t, schedule.Items, 5)
	assert.Equal(t, "break-anna", schedule.Items[0].ID)
	assert.Equal(t, "#E0E0E0", schedule.Items[0].Color)

	polish := schedule.Items[2]
	assert.Equal(t, "1-1", polish.ID)
	assert.Equal(t, "10", polish.OwnerKey)
	assert.Equal(t, types.MustTimeOfDay(10, 30), polish.Start)
	assert.Equal(t, types.MustTimeOfDay(11, 0), polish.End)
	assert.Equal(t, domain.DefaultItemColor, polish.Color)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml": "staff: [",
		"bad time code": `
items:
  - { id: a, owner: "1", start: "9:30", end: "1030" }`,
		"hour out of range": `
items:
  - { id: a, owner: "1", start: "2500", end: "2600" }`,
		"missing owner": `
items:
  - { id: a, start: "0900", end: "1000" }`,
		"bad weekday": `
staff:
  - { id: 1, name: A, working_hours: [ { weekday: funday, start: "0900", end: "1800" } ] }`,
		"working day without hours": `
staff:
  - { id: 1, name: A, working_hours: [ { weekday: monday } ] }`,
		"end before start": `
staff:
  - { id: 1, name: A, working_hours: [ { weekday: monday, start: "1800", end: "0900" } ] }`,
		"booking past midnight": `
bookings:
  - { id: 1, staff_id: 1, date: "2025-10-13", start: "2330", services: [ { name: A, duration: 60 } ] }`,
		"booking without services": `
bookings:
  - { id: 1, staff_id: 1, date: "2025-10-13", start: "0930" }`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestParse_ZeroDurationKept(t *testing.T) {
	schedule, err := Parse([]byte(`
items:
  - { id: zero, owner: "1", start: "1000", end: "1000" }
`))
	require.NoError(t, err)
	require.Len(t, schedule.Items, 1)
	assert.False(t, schedule.Items[0].HasPositiveDuration())
	assert.Nil(t, schedule.Items[0].Date)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrReadFixture)
}

func TestLoad_FromTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
staff:
  - { id: 3, name: Kate }
`), 0o600))

	schedule, err := Load(path)
	require.NoError(t, err)
	require.Len(t, schedule.Staff, 1)
	assert.Empty(t, schedule.Staff[0].WorkingHours)
	assert.Nil(t, schedule.Date)
}
