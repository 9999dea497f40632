package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/reward"
)

func TestHandleAction_Success(t *testing.T) {
	dispatcher := new(MockDispatcher)
	h := NewActionHandler(dispatcher, new(MockPublisher))

	action := domain.ActionEvent{PlayerID: testPlayerID, Category: domain.CategoryBreak, Subject: "minecraft:stone"}
	dispatcher.On("HandleAction", mock.Anything, action).Return(reward.Outcome{
		Qualified: true,
		Job:       "Miner",
		Exp:       10,
		Pay:       decimal.RequireFromString("1.00"),
		LevelUp:   &domain.LevelUpResult{LeveledUp: true, Job: "Miner", NewLevel: 2},
	}, nil)

	body := `{"player_id":"` + testPlayerID + `","category":"break","subject":"minecraft:stone"}`
	req := httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleAction(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Qualified)
	assert.Equal(t, "Miner", resp.Job)
	assert.Equal(t, 10, resp.Exp)
	require.NotNil(t, resp.LevelUp)
	assert.Equal(t, 2, resp.LevelUp.NewLevel)
	assert.Empty(t, resp.Warning)
	dispatcher.AssertExpectations(t)
}

func TestHandleAction_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"bad uuid", `{"player_id":"steve","category":"break","subject":"stone"}`, "playerid"},
		{"bad category", `{"player_id":"` + testPlayerID + `","category":"smelt","subject":"stone"}`, "category"},
		{"missing subject", `{"player_id":"` + testPlayerID + `","category":"kill"}`, "subject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := new(MockDispatcher)
			h := NewActionHandler(dispatcher, new(MockPublisher))

			rec := httptest.NewRecorder()
			h.HandleAction(rec, httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Fields, tt.field)
			dispatcher.AssertNotCalled(t, "HandleAction", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleAction_MalformedJSON(t *testing.T) {
	h := NewActionHandler(new(MockDispatcher), new(MockPublisher))
	rec := httptest.NewRecorder()
	h.HandleAction(rec, httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgInvalidRequest)
}

func TestHandleAction_PartialFailureReturnsWarning(t *testing.T) {
	dispatcher := new(MockDispatcher)
	h := NewActionHandler(dispatcher, new(MockPublisher))

	dispatcher.On("HandleAction", mock.Anything, mock.Anything).Return(reward.Outcome{
		Qualified: true, Job: "Miner", Exp: 10, Pay: decimal.NewFromInt(1),
	}, domain.ErrAccountUnavailable)

	body := `{"player_id":"` + testPlayerID + `","category":"break","subject":"stone"}`
	rec := httptest.NewRecorder()
	h.HandleAction(rec, httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgHandleActionFailed)
}

func TestHandleAction_DispatcherError(t *testing.T) {
	dispatcher := new(MockDispatcher)
	h := NewActionHandler(dispatcher, new(MockPublisher))

	dispatcher.On("HandleAction", mock.Anything, mock.Anything).Return(reward.Outcome{}, errors.New("store down"))

	body := `{"player_id":"` + testPlayerID + `","category":"place","subject":"torch"}`
	rec := httptest.NewRecorder()
	h.HandleAction(rec, httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgHandleActionFailed)
	assert.NotContains(t, rec.Body.String(), "store down")
}

func TestHandleBatch(t *testing.T) {
	publisher := new(MockPublisher)
	h := NewActionHandler(new(MockDispatcher), publisher)

	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt event.Event) bool {
		return evt.Type == event.ActionPerformed
	})).Return(nil).Twice()

	body := `{"actions":[
		{"player_id":"` + testPlayerID + `","category":"break","subject":"stone"},
		{"player_id":"` + testPlayerID + `","category":"catch","subject":"cod","is_fish":true}
	]}`
	rec := httptest.NewRecorder()
	h.HandleBatch(rec, httptest.NewRequest(http.MethodPost, "/actions/batch", strings.NewReader(body)))

	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp BatchActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Accepted)
	assert.Equal(t, 0, resp.Failed)
	publisher.AssertExpectations(t)
}

func TestHandleBatch_RejectsInvalidEntry(t *testing.T) {
	publisher := new(MockPublisher)
	h := NewActionHandler(new(MockDispatcher), publisher)

	body := `{"actions":[{"player_id":"` + testPlayerID + `","category":"dig","subject":"stone"}]}`
	rec := httptest.NewRecorder()
	h.HandleBatch(rec, httptest.NewRequest(http.MethodPost, "/actions/batch", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestHandleBatch_AllPublishesFail(t *testing.T) {
	publisher := new(MockPublisher)
	h := NewActionHandler(new(MockDispatcher), publisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus closed"))

	body := `{"actions":[{"player_id":"` + testPlayerID + `","category":"break","subject":"stone"}]}`
	rec := httptest.NewRecorder()
	h.HandleBatch(rec, httptest.NewRequest(http.MethodPost, "/actions/batch", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
