package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/reward"
	"github.com/osse101/JobEconomy_Go/internal/salary"
)

const (
	testPlayerID = "8f14e45f-ceea-467a-9575-6f1d3c7b2a10"
	testBadID    = "not-a-uuid"
)

// MockDispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) HandleAction(ctx context.Context, action domain.ActionEvent) (reward.Outcome, error) {
	args := m.Called(ctx, action)
	return args.Get(0).(reward.Outcome), args.Error(1)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

// MockPlayerJobService
type MockPlayerJobService struct {
	mock.Mock
}

func (m *MockPlayerJobService) SetJob(ctx context.Context, playerID, jobName string) (string, error) {
	args := m.Called(ctx, playerID, jobName)
	return args.String(0), args.Error(1)
}

func (m *MockPlayerJobService) JobInfo(ctx context.Context, playerID string) (*domain.JobInfo, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobInfo), args.Error(1)
}

func (m *MockPlayerJobService) SetNotifications(ctx context.Context, playerID string, enabled bool) error {
	args := m.Called(ctx, playerID, enabled)
	return args.Error(0)
}

// MockSessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Connect(ctx context.Context, session domain.PlayerSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) Disconnect(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

// MockJobCatalog
type MockJobCatalog struct {
	mock.Mock
}

func (m *MockJobCatalog) JobNames() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockJobCatalog) Job(name string) (*domain.JobDefinition, bool) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.JobDefinition), args.Bool(1)
}

func (m *MockJobCatalog) SalaryDelay() int {
	args := m.Called()
	return args.Int(0)
}

// MockBalanceReader
type MockBalanceReader struct {
	mock.Mock
}

func (m *MockBalanceReader) Balance(ctx context.Context, playerID, currency string) (decimal.Decimal, error) {
	args := m.Called(ctx, playerID, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBalanceReader) TopBalances(ctx context.Context, currency string, limit int) ([]domain.BalanceEntry, error) {
	args := m.Called(ctx, currency, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceEntry), args.Error(1)
}

// MockConfigReloader
type MockConfigReloader struct {
	mock.Mock
}

func (m *MockConfigReloader) ReloadConfig(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConfigReloader) JobList() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

// MockPayrollRunner
type MockPayrollRunner struct {
	mock.Mock
}

func (m *MockPayrollRunner) Run(ctx context.Context) (salary.Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(salary.Result), args.Error(1)
}

// withRoute mounts h on a chi router so URL parameters resolve
func withRoute(method, pattern string, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	return r
}

// MockHistoryReader
type MockHistoryReader struct {
	mock.Mock
}

func (m *MockHistoryReader) History(ctx context.Context, playerID string, limit int) ([]domain.EventLogEntry, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventLogEntry), args.Error(1)
}
