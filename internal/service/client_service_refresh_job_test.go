package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-agent-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyConversationService считает вызовы List.
type spyConversationService struct {
	ClientConversationService
	calls atomic.Int64
}

func (s *spyConversationService) List(context.Context) error {
	s.calls.Add(1)
	return nil
}

func (s *spyConversationService) Stats(context.Context, string) (models.ConversationStats, error) {
	return models.ConversationStats{}, nil
}

func TestRefreshJob_Start_CallsList(t *testing.T) {
	spy := &spyConversationService{}
	job := NewClientRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "List should run several times, ran %d", got)
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyConversationService{}
	job := NewClientRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())
}

func TestRefreshJob_ContextCancelStops(t *testing.T) {
	spy := &spyConversationService{}
	job := NewClientRefreshJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	before := spy.calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, before, spy.calls.Load())
	job.Stop()
}

func TestRefreshJob_RestartReplacesPrevious(t *testing.T) {
	spy := &spyConversationService{}
	job := NewClientRefreshJob(spy).(*clientRefreshJob)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
	job.mu.Lock()
	defer job.mu.Unlock()
	require.Nil(t, job.cancel)
}

func TestRefreshJob_StopBeforeStart(t *testing.T) {
	job := NewClientRefreshJob(&spyConversationService{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_DefaultInterval(t *testing.T) {
	spy := &spyConversationService{}
	job := NewClientRefreshJob(spy)

	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}
