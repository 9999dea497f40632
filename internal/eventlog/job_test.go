package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupJob_Process(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(newTestService(mockRepo), 72*time.Hour)

	mockRepo.On("CleanupOldEvents", mock.Anything, fixedNow.Add(-72*time.Hour)).Return(int64(100), nil)

	assert.NoError(t, job.Process(context.Background()))
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_ProcessError(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(newTestService(mockRepo), time.Hour)

	mockRepo.On("CleanupOldEvents", mock.Anything, mock.Anything).Return(int64(0), errors.New("locked"))

	assert.Error(t, job.Process(context.Background()))
}
