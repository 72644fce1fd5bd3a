package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/services/core/schedules"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) GetWeekSchedule(ctx context.Context, weekStart *time.Time) (*responses.WeekSchedule, error) {
	args := m.Called(ctx, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.WeekSchedule), args.Error(1)
}

func (m *MockScheduleUsecase) GetSlot(ctx context.Context, slotID string) (*responses.Slot, error) {
	args := m.Called(ctx, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Slot), args.Error(1)
}

func (m *MockScheduleUsecase) InitializeWeek(ctx context.Context, weekStart *time.Time) (int, error) {
	args := m.Called(ctx, weekStart)
	return args.Int(0), args.Error(1)
}

func (m *MockScheduleUsecase) BookSlot(ctx context.Context, request *requests.BookAppointment) (*responses.Slot, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Slot), args.Error(1)
}

func (m *MockScheduleUsecase) BookSlotInRange(ctx context.Context, request *requests.BookAppointmentInRange) (*responses.Slot, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Slot), args.Error(1)
}

func (m *MockScheduleUsecase) CancelSlot(ctx context.Context, request *requests.CancelAppointment) (*responses.Slot, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Slot), args.Error(1)
}

func setupAppointmentRouter(mockUsecase *MockScheduleUsecase) *chi.Mux {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			RequestTimeoutInSeconds: 5,
		},
	}

	scheduleController := schedules.NewScheduleController(logger, mockUsecase, internalConfig)

	router := chi.NewRouter()
	attachAppointmentRoutes(router, scheduleController)
	return router
}

func bookedSlotResponse(slotID, name string) *responses.Slot {
	return &responses.Slot{
		SlotID:   slotID,
		Date:     "2024-01-15",
		Time:     "09:00",
		Status:   constvars.SlotStatusBooked,
		BookedBy: &name,
		Version:  1,
	}
}

func TestAppointmentRouter_BookSlot(t *testing.T) {
	t.Run("Books An Available Slot", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("BookSlot", mock.Anything, mock.AnythingOfType("*requests.BookAppointment")).
			Return(bookedSlotResponse("2024-01-15-09-00", "Alice"), nil)

		jsonBody, _ := json.Marshal(requests.BookAppointment{SlotID: "2024-01-15-09-00", Name: "Alice"})
		req := httptest.NewRequest("POST", "/book", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Already Booked Slot Returns 400 With The Holder", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("BookSlot", mock.Anything, mock.AnythingOfType("*requests.BookAppointment")).
			Return(nil, exceptions.ErrSlotAlreadyBooked(errors.New("slot is booked"), "2024-01-15-09-00", "Alice"))

		jsonBody, _ := json.Marshal(requests.BookAppointment{SlotID: "2024-01-15-09-00", Name: "Bob"})
		req := httptest.NewRequest("POST", "/book", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Contains(t, response.Message, "Alice")
	})

	t.Run("Unknown Slot Returns 404", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("BookSlot", mock.Anything, mock.AnythingOfType("*requests.BookAppointment")).
			Return(nil, exceptions.ErrSlotNotFound(errors.New("no documents"), "2030-01-01-09-00"))

		jsonBody, _ := json.Marshal(requests.BookAppointment{SlotID: "2030-01-01-09-00", Name: "Alice"})
		req := httptest.NewRequest("POST", "/book", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid JSON Body", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/book", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "BookSlot")
	})

	t.Run("Missing Name Field", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]interface{}{"slot_id": "2024-01-15-09-00"})
		req := httptest.NewRequest("POST", "/book", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "BookSlot")
	})
}

func TestAppointmentRouter_BookSlotInRange(t *testing.T) {
	t.Run("Books The Earliest Available Slot", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("BookSlotInRange", mock.Anything, mock.AnythingOfType("*requests.BookAppointmentInRange")).
			Return(bookedSlotResponse("2024-01-15-09-00", "Alice"), nil)

		jsonBody, _ := json.Marshal(requests.BookAppointmentInRange{
			Date:      "2024-01-15",
			StartTime: "09:00",
			EndTime:   "10:00",
			Name:      "Alice",
		})
		req := httptest.NewRequest("POST", "/book-range", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Exhausted Window Returns 409", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("BookSlotInRange", mock.Anything, mock.AnythingOfType("*requests.BookAppointmentInRange")).
			Return(nil, exceptions.ErrScheduleNoAvailability(errors.New("no matching slot")))

		jsonBody, _ := json.Marshal(requests.BookAppointmentInRange{
			Date:      "2024-01-15",
			StartTime: "09:00",
			EndTime:   "10:00",
			Name:      "Dan",
		})
		req := httptest.NewRequest("POST", "/book-range", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Missing Time Fields", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]interface{}{"date": "2024-01-15", "name": "Alice"})
		req := httptest.NewRequest("POST", "/book-range", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "BookSlotInRange")
	})
}

func TestAppointmentRouter_CancelSlot(t *testing.T) {
	t.Run("Holder Cancels Their Slot", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("CancelSlot", mock.Anything, mock.AnythingOfType("*requests.CancelAppointment")).
			Return(&responses.Slot{
				SlotID:  "2024-01-15-09-00",
				Date:    "2024-01-15",
				Time:    "09:00",
				Status:  constvars.SlotStatusAvailable,
				Version: 2,
			}, nil)

		jsonBody, _ := json.Marshal(requests.CancelAppointment{SlotID: "2024-01-15-09-00", Name: "Alice"})
		req := httptest.NewRequest("POST", "/cancel", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Non-Holder Cancel Returns 400", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("CancelSlot", mock.Anything, mock.AnythingOfType("*requests.CancelAppointment")).
			Return(nil, exceptions.ErrSlotCancelForbidden(errors.New("holder mismatch"), "2024-01-15-09-00", "Alice"))

		jsonBody, _ := json.Marshal(requests.CancelAppointment{SlotID: "2024-01-15-09-00", Name: "Bob"})
		req := httptest.NewRequest("POST", "/cancel", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Contains(t, response.Message, "Alice")
	})
}

func TestAppointmentRouter_GetWeekSchedule(t *testing.T) {
	t.Run("Current Week", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("GetWeekSchedule", mock.Anything, (*time.Time)(nil)).
			Return(&responses.WeekSchedule{WeekStart: "2024-01-15", WeekEnd: "2024-01-21"}, nil)

		req := httptest.NewRequest("GET", "/week", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Explicit Week Start", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("GetWeekSchedule", mock.Anything, mock.AnythingOfType("*time.Time")).
			Return(&responses.WeekSchedule{WeekStart: "2024-01-15", WeekEnd: "2024-01-21"}, nil)

		req := httptest.NewRequest("GET", "/week?week_start=2024-01-15", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Malformed Week Start", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/week?week_start=15-01-2024", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "GetWeekSchedule")
	})
}

func TestAppointmentRouter_GetSlot(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("GetSlot", mock.Anything, "2024-01-15-09-00").
			Return(bookedSlotResponse("2024-01-15-09-00", "Alice"), nil)

		req := httptest.NewRequest("GET", "/slot/2024-01-15-09-00", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("GetSlot", mock.Anything, "2030-01-01-09-00").
			Return(nil, exceptions.ErrSlotNotFound(errors.New("no documents"), "2030-01-01-09-00"))

		req := httptest.NewRequest("GET", "/slot/2030-01-01-09-00", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAppointmentRouter_InitializeWeek(t *testing.T) {
	t.Run("Reports Created Count", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		mockUsecase.On("InitializeWeek", mock.Anything, mock.AnythingOfType("*time.Time")).
			Return(175, nil)

		req := httptest.NewRequest("POST", "/initialize?week_start=2024-01-15", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Malformed Week Start", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := setupAppointmentRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/initialize?week_start=january", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "InitializeWeek")
	})
}
