package staffservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/salons/1/staff", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, nopLogger{})
}

func TestGetSalonStaff_OK(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `{
		"salon_id": 1,
		"staff": [
			{"id": 10, "name": "Anna", "working_hours": [
				{"weekday": 1, "is_working": true, "start": "0900", "end": "1830"},
				{"weekday": 0, "is_working": false}
			]},
			{"id": 11, "name": "Maria", "working_hours": []}
		]
	}`)

	staff, err := client.GetSalonStaff(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, staff, 2)

	assert.Equal(t, int64(10), staff[0].ID)
	assert.Equal(t, "Anna", staff[0].Name)

	monday, ok := staff[0].HoursOn(time.Monday)
	require.True(t, ok)
	assert.True(t, monday.IsWorking)
	assert.Equal(t, types.MustTimeOfDay(9, 0), monday.Start)
	assert.Equal(t, types.MustTimeOfDay(18, 30), monday.End)

	sunday, ok := staff[0].HoursOn(time.Sunday)
	require.True(t, ok)
	assert.False(t, sunday.IsWorking)

	_, ok = staff[1].HoursOn(time.Monday)
	assert.False(t, ok)
}

func TestGetSalonStaff_NotFound(t *testing.T) {
	client := newTestClient(t, http.StatusNotFound, `{"code":404,"message":"not found"}`)

	_, err := client.GetSalonStaff(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestGetSalonStaff_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, http.StatusBadGateway, "upstream down")

	_, err := client.GetSalonStaff(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetSalonStaff_Malformed(t *testing.T) {
	tests := map[string]string{
		"not json":         `staff`,
		"missing name":     `{"salon_id": 1, "staff": [{"id": 10}]}`,
		"bad weekday":      `{"salon_id": 1, "staff": [{"id": 10, "name": "A", "working_hours": [{"weekday": 9}]}]}`,
		"bad code":         `{"salon_id": 1, "staff": [{"id": 10, "name": "A", "working_hours": [{"weekday": 1, "is_working": true, "start": "9:00", "end": "1800"}]}]}`,
		"hour overflow":    `{"salon_id": 1, "staff": [{"id": 10, "name": "A", "working_hours": [{"weekday": 1, "is_working": true, "start": "0900", "end": "2500"}]}]}`,
		"missing end":      `{"salon_id": 1, "staff": [{"id": 10, "name": "A", "working_hours": [{"weekday": 1, "is_working": true, "start": "0900"}]}]}`,
		"end before start": `{"salon_id": 1, "staff": [{"id": 10, "name": "A", "working_hours": [{"weekday": 1, "is_working": true, "start": "1800", "end": "0900"}]}]}`,
		"other salon":      `{"salon_id": 2, "staff": []}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, http.StatusOK, body)
			_, err := client.GetSalonStaff(context.Background(), 1)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}
