package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

type fakeService struct {
	resp   *models.BookingResponse
	err    error
	called int64
}

func (f *fakeService) GetByID(_ context.Context, id int64) (*models.BookingResponse, error) {
	f.called = id
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{
		ID:        42,
		StartTime: "0930",
		Items:     []models.ScheduleItemResponse{{ID: "42-0", Start: "0930", End: "1030"}},
	}}

	rec := serve(svc, "/api/v1/bookings/42")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.called)

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "0930", body.StartTime)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "1030", body.Items[0].End)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		err  error
		code int
	}{
		{"not a number", "/api/v1/bookings/abc", nil, http.StatusBadRequest},
		{"negative", "/api/v1/bookings/-1", nil, http.StatusBadRequest},
		{"not found", "/api/v1/bookings/7", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", "/api/v1/bookings/7", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.path)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
