package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

func newPlayerRoutes(jobs *MockPlayerJobService, sessions *MockSessionService) http.Handler {
	h := NewPlayerHandler(jobs, sessions)
	r := chi.NewRouter()
	r.Post("/players/{id}/connect", h.HandleConnect)
	r.Post("/players/{id}/disconnect", h.HandleDisconnect)
	r.Get("/players/{id}/job", h.HandleGetJob)
	r.Put("/players/{id}/job", h.HandleSetJob)
	r.Put("/players/{id}/notifications", h.HandleSetNotifications)
	return r
}

func TestHandleConnect(t *testing.T) {
	jobs, sessions := new(MockPlayerJobService), new(MockSessionService)
	routes := newPlayerRoutes(jobs, sessions)

	sessions.On("Connect", mock.Anything, domain.PlayerSession{
		PlayerID:    testPlayerID,
		Name:        "Steve",
		Permissions: []string{"main.job.miner"},
	}).Return(nil)

	body := `{"name":"Steve","permissions":["main.job.miner"]}`
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/players/"+testPlayerID+"/connect", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgPlayerConnected)
	sessions.AssertExpectations(t)
}

func TestHandleConnect_EmptyBody(t *testing.T) {
	jobs, sessions := new(MockPlayerJobService), new(MockSessionService)
	routes := newPlayerRoutes(jobs, sessions)

	sessions.On("Connect", mock.Anything, domain.PlayerSession{PlayerID: testPlayerID}).Return(nil)

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/players/"+testPlayerID+"/connect", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	sessions.AssertExpectations(t)
}

func TestPlayerRoutes_InvalidID(t *testing.T) {
	routes := newPlayerRoutes(new(MockPlayerJobService), new(MockSessionService))

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/players/" + testBadID + "/connect", ""},
		{http.MethodPost, "/players/" + testBadID + "/disconnect", ""},
		{http.MethodGet, "/players/" + testBadID + "/job", ""},
		{http.MethodPut, "/players/" + testBadID + "/job", `{"job":"miner"}`},
		{http.MethodPut, "/players/" + testBadID + "/notifications", `{"enabled":true}`},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			rec := httptest.NewRecorder()
			routes.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), ErrMsgInvalidPlayerID)
		})
	}
}

func TestHandleDisconnect(t *testing.T) {
	jobs, sessions := new(MockPlayerJobService), new(MockSessionService)
	routes := newPlayerRoutes(jobs, sessions)
	sessions.On("Disconnect", mock.Anything, testPlayerID).Return(nil)

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/players/"+testPlayerID+"/disconnect", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	sessions.AssertExpectations(t)
}

func TestHandleGetJob(t *testing.T) {
	jobs, sessions := new(MockPlayerJobService), new(MockSessionService)
	routes := newPlayerRoutes(jobs, sessions)

	jobs.On("JobInfo", mock.Anything, testPlayerID).Return(&domain.JobInfo{
		PlayerID:             testPlayerID,
		Job:                  "Miner",
		Level:                2,
		Exp:                  5,
		ExpToNextLevel:       195,
		NotificationsEnabled: true,
		Salary:               decimal.NewFromInt(20),
	}, nil)

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/"+testPlayerID+"/job", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var info domain.JobInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "Miner", info.Job)
	assert.Equal(t, 2, info.Level)
	assert.Equal(t, 195, info.ExpToNextLevel)
}

func TestHandleSetJob(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*MockPlayerJobService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "canonical name returned",
			body: `{"job":"miner"}`,
			setup: func(m *MockPlayerJobService) {
				m.On("SetJob", mock.Anything, testPlayerID, "miner").Return("Miner", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"job":"Miner"`,
		},
		{
			name: "unknown job",
			body: `{"job":"wizard"}`,
			setup: func(m *MockPlayerJobService) {
				m.On("SetJob", mock.Anything, testPlayerID, "wizard").Return("", fmt.Errorf("%w: wizard", domain.ErrJobNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   ErrMsgJobDoesNotExistErr,
		},
		{
			name: "permission denied",
			body: `{"job":"warrior"}`,
			setup: func(m *MockPlayerJobService) {
				m.On("SetJob", mock.Anything, testPlayerID, "warrior").Return("", fmt.Errorf("%w: main.job.warrior", domain.ErrPermissionDenied))
			},
			wantStatus: http.StatusForbidden,
			wantBody:   ErrMsgPermissionDeniedErr,
		},
		{
			name:       "blank job",
			body:       `{"job":"   "}`,
			setup:      func(*MockPlayerJobService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid job name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := new(MockPlayerJobService)
			tt.setup(jobs)
			routes := newPlayerRoutes(jobs, new(MockSessionService))

			rec := httptest.NewRecorder()
			routes.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/players/"+testPlayerID+"/job", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			jobs.AssertExpectations(t)
		})
	}
}

func TestHandleSetNotifications(t *testing.T) {
	jobs := new(MockPlayerJobService)
	routes := newPlayerRoutes(jobs, new(MockSessionService))
	jobs.On("SetNotifications", mock.Anything, testPlayerID, false).Return(nil)

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/players/"+testPlayerID+"/notifications", strings.NewReader(`{"enabled":false}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	jobs.AssertExpectations(t)
}

func TestHandleSetNotifications_MissingField(t *testing.T) {
	jobs := new(MockPlayerJobService)
	routes := newPlayerRoutes(jobs, new(MockSessionService))

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/players/"+testPlayerID+"/notifications", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	jobs.AssertNotCalled(t, "SetNotifications", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlayerRoutes_CanonicalizeID(t *testing.T) {
	jobs, sessions := new(MockPlayerJobService), new(MockSessionService)
	routes := newPlayerRoutes(jobs, sessions)
	sessions.On("Disconnect", mock.Anything, testPlayerID).Return(nil)

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/players/"+strings.ToUpper(testPlayerID)+"/disconnect", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	sessions.AssertExpectations(t)
}
