package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kc-frost/vet-clinic/internal/api/handlers"
	"github.com/kc-frost/vet-clinic/internal/domain"
	getAvailability "github.com/kc-frost/vet-clinic/internal/usecase/get_availability"
)

type fakeUseCase struct {
	resp *getAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailability.Request) (*getAvailability.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/availability"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{
		ReasonKey: domain.ReasonWellnessExam,
		Slots: []getAvailability.AvailableSlot{
			{
				SlotID:       "slot_2026-02-15_0900_1000_roomA",
				Date:         "2026-02-15",
				StartTime:    "09:00",
				EndTime:      "10:00",
				DisplayLabel: "09:00 - 10:00",
			},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "?reasonKey=wellness_exam&startDate=2026-02-15&endDate=2026-02-15")

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "wellness_exam", body.ReasonKey)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "slot_2026-02-15_0900_1000_roomA", body.Slots[0].SlotID)
}

func TestHandle_EmptySlotListIsStillOK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{
		ReasonKey: domain.ReasonWellnessExam,
		Slots:     []getAvailability.AvailableSlot{},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "?reasonKey=wellness_exam&startDate=2026-02-15&endDate=2026-02-15")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing reason key",
			query:      "?startDate=2026-02-15&endDate=2026-02-15",
			wantStatus: http.StatusBadRequest,
			wantCode:   codeInvalidReasonKey,
		},
		{
			name:       "missing dates",
			query:      "?reasonKey=wellness_exam",
			wantStatus: http.StatusBadRequest,
			wantCode:   codeInvalidDate,
		},
		{
			name:       "bad date format",
			query:      "?reasonKey=wellness_exam&startDate=15.02.2026&endDate=2026-02-15",
			wantStatus: http.StatusBadRequest,
			wantCode:   codeInvalidDate,
		},
		{
			name:       "unknown reason",
			query:      "?reasonKey=grooming&startDate=2026-02-15&endDate=2026-02-15",
			ucErr:      getAvailability.ErrUnknownReason,
			wantStatus: http.StatusBadRequest,
			wantCode:   codeInvalidReasonKey,
		},
		{
			name:       "inverted range",
			query:      "?reasonKey=wellness_exam&startDate=2026-02-16&endDate=2026-02-15",
			ucErr:      getAvailability.ErrInvalidDateRange,
			wantStatus: http.StatusBadRequest,
			wantCode:   codeInvalidRange,
		},
		{
			name:       "internal error",
			query:      "?reasonKey=wellness_exam&startDate=2026-02-15&endDate=2026-02-15",
			ucErr:      errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   codeServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, nopLogger{})

			rec := doRequest(h, tt.query)
			require.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}
