package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
)

const testPlayerID = "8f14e45f-ceea-467a-9575-6f1d3c7b2a10"

var fixedNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func newTestService(repo *MockRepository) *service {
	svc := NewService(repo).(*service)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestService_Subscribe(t *testing.T) {
	mockBus := new(MockEventBus)
	for _, et := range LoggedEventTypes {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	NewService(new(MockRepository)).Subscribe(mockBus)

	mockBus.AssertExpectations(t)
	mockBus.AssertNotCalled(t, "Subscribe", event.RewardPaid, mock.Anything)
}

func TestService_HandleEvent_TypedPayload(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)
	ctx := context.Background()

	evt := event.NewSalaryPaidEvent(testPlayerID, "Miner", decimal.RequireFromString("2.50"))

	mockRepo.On("LogEvent", ctx, mock.MatchedBy(func(e domain.EventLogEntry) bool {
		return e.EventType == string(event.SalaryPaid) &&
			e.PlayerID == testPlayerID &&
			e.Payload["job"] == "Miner" &&
			e.Payload["amount"] == "2.5" &&
			e.CreatedAt.Equal(fixedNow)
	})).Return(nil)

	require.NoError(t, svc.handleEvent(ctx, evt))
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_GlobalEvent(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("LogEvent", ctx, mock.MatchedBy(func(e domain.EventLogEntry) bool {
		return e.EventType == string(event.CatalogReloaded) && e.PlayerID == ""
	})).Return(nil)

	require.NoError(t, svc.handleEvent(ctx, event.NewCatalogReloadedEvent([]string{"Miner"}, 300)))
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_StoreFailureIsSwallowed(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("LogEvent", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	err := svc.handleEvent(context.Background(), event.NewJobChangedEvent(testPlayerID, "Unemployed", "Miner"))
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_NonObjectPayload(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	err := svc.handleEvent(context.Background(), event.Event{Type: event.JobChanged, Payload: "oops"})
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything)
}

func TestService_History(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default limit", 0, DefaultHistoryLimit},
		{"explicit limit", 5, 5},
		{"clamped limit", 1000, MaxHistoryLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockRepo.On("EventsByPlayer", ctx, testPlayerID, tt.wantLimit).Return(nil, nil)

			entries, err := newTestService(mockRepo).History(ctx, testPlayerID, tt.limit)
			require.NoError(t, err)
			assert.NotNil(t, entries)
			assert.Empty(t, entries)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_History_InvalidPlayerID(t *testing.T) {
	mockRepo := new(MockRepository)

	_, err := newTestService(mockRepo).History(context.Background(), "steve", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidPlayerID)
	mockRepo.AssertNotCalled(t, "EventsByPlayer", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CleanupOldEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CleanupOldEvents", ctx, fixedNow.Add(-24*time.Hour)).Return(int64(5), nil)

	count, err := svc.CleanupOldEvents(ctx, 24*time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockRepo.AssertExpectations(t)
}
