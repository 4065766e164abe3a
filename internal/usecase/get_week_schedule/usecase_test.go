package get_week_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/courtclub/court-booking-service/internal/usecase/get_day_schedule"
)

// MockDayScheduleProvider mock провайдера расписания на день
type MockDayScheduleProvider struct {
	mock.Mock
}

func (m *MockDayScheduleProvider) Execute(ctx context.Context, req *get_day_schedule.Request) (*get_day_schedule.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*get_day_schedule.Response), args.Error(1)
}

// nopLogger логгер-заглушка для тестов
type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

const testCourtID = "c81e728d-9d4c-4f63-af86-7f8abc123001"

func TestUseCase_Execute(t *testing.T) {
	startDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("seven consecutive days", func(t *testing.T) {
		provider := new(MockDayScheduleProvider)

		for i := 0; i < 7; i++ {
			date := startDate.AddDate(0, 0, i)
			provider.On("Execute", mock.Anything, &get_day_schedule.Request{
				CourtID: testCourtID,
				Date:    date,
			}).Return(&get_day_schedule.Response{
				CourtID:   testCourtID,
				CourtName: "Центральный корт",
				Date:      date,
				Slots:     []get_day_schedule.Slot{},
			}, nil).Once()
		}

		uc := NewUseCase(provider, &nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{CourtID: testCourtID, StartDate: startDate})
		require.NoError(t, err)

		assert.Equal(t, "Центральный корт", resp.CourtName)
		assert.Equal(t, startDate, resp.StartDate)
		require.Len(t, resp.Days, 7)
		assert.Equal(t, startDate, resp.Days[0].Date)
		assert.Equal(t, startDate.AddDate(0, 0, 6), resp.Days[6].Date)

		provider.AssertExpectations(t)
	})

	t.Run("court not found", func(t *testing.T) {
		provider := new(MockDayScheduleProvider)

		provider.On("Execute", mock.Anything, mock.Anything).
			Return(nil, get_day_schedule.ErrCourtNotFound)

		uc := NewUseCase(provider, &nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{CourtID: testCourtID, StartDate: startDate})
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("missing start date", func(t *testing.T) {
		uc := NewUseCase(new(MockDayScheduleProvider), &nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{CourtID: testCourtID})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
