package agenda

import (
	"context"
	"testing"
	"time"

	"meetspace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefresher_PushesAgendaAndClock(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("ListUpcoming", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)

	hub := NewHub()
	conn, done := dialHub(t, hub)
	defer done()
	require.Eventually(t, func() bool {
		return hub.Count() == 1
	}, time.Second, 10*time.Millisecond)

	r := NewRefresherWithIntervals(NewService(repo), hub, 30*time.Millisecond, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(stopped)
	}()

	// the first agenda frame is the immediate push; clock and periodic
	// agenda frames follow on their own tickers
	seen := map[string]int{}
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for seen["agenda"] < 2 || seen["clock"] < 2 {
		var msg AgendaMessage
		require.NoError(t, conn.ReadJSON(&msg))
		seen[msg.Type]++
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("refresher kept running after cancel")
	}
}

func TestRefresher_StopsBeforeFirstTick(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("ListUpcoming", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)

	r := NewRefresherWithIntervals(NewService(repo), NewHub(), time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stopped := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("refresher kept running on a cancelled context")
	}

	// the immediate push still ran once before the loop observed cancel
	repo.AssertNumberOfCalls(t, "ListUpcoming", 1)
}

func TestRefresher_SurvivesProjectionErrors(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("ListUpcoming", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded)

	hub := NewHub()
	conn, done := dialHub(t, hub)
	defer done()
	require.Eventually(t, func() bool {
		return hub.Count() == 1
	}, time.Second, 10*time.Millisecond)

	r := NewRefresherWithIntervals(NewService(repo), hub, time.Hour, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	// the failed projection is logged and skipped; clock ticks keep
	// flowing
	var msg AgendaMessage
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "clock", msg.Type)
}
