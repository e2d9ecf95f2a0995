package getAllWebinars

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webinarBooker/internal/http-server/handlers/webinar/getAllWebinars/mocks"
	"webinarBooker/internal/lib/logger/handlers/slogdiscard"
	"webinarBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllWebinarsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	webinars := []models.Webinar{
		{
			ID:          "webinar-1",
			OrganizerID: "organizer-1",
			Title:       "First Webinar",
			StartDate:   time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC),
			Seats:       10,
		},
		{
			ID:          "webinar-2",
			OrganizerID: "organizer-2",
			Title:       "Second Webinar",
			StartDate:   time.Date(2025, 2, 10, 10, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 2, 10, 11, 0, 0, 0, time.UTC),
			Seats:       25,
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.WebinarsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.WebinarsGetter) {
				m.On("GetAllWebinars", mock.Anything).Return(webinars, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "First Webinar")
				assert.Contains(t, body, "Second Webinar")
			},
		},
		{
			name: "Empty list",
			mockSetup: func(m *mocks.WebinarsGetter) {
				m.On("GetAllWebinars", mock.Anything).Return([]models.Webinar{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.WebinarsGetter) {
				m.On("GetAllWebinars", mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get webinars"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewWebinarsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/webinars", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
