package agenda

import (
	"context"
	"log"
	"time"
)

// Refresher drives the live display: it re-projects the agenda on one
// fixed interval and pushes a clock tick on another, independent
// interval. Tickers drop missed ticks, so a slow projection never
// builds a backlog. Cancel the context to stop both.
type Refresher struct {
	service    *Service
	hub        *Hub
	dataEvery  time.Duration
	clockEvery time.Duration
}

func NewRefresher(service *Service, hub *Hub) *Refresher {
	return &Refresher{
		service:    service,
		hub:        hub,
		dataEvery:  5 * time.Minute,
		clockEvery: time.Minute,
	}
}

// NewRefresherWithIntervals exists for tests and non-default displays.
func NewRefresherWithIntervals(service *Service, hub *Hub, dataEvery, clockEvery time.Duration) *Refresher {
	return &Refresher{
		service:    service,
		hub:        hub,
		dataEvery:  dataEvery,
		clockEvery: clockEvery,
	}
}

// Run blocks until ctx is cancelled. Intended to be started as a
// goroutine alongside the HTTP server.
func (r *Refresher) Run(ctx context.Context) {
	// push immediately so a freshly started display never waits a full
	// interval for its first agenda
	r.pushAgenda(ctx)

	data := time.NewTicker(r.dataEvery)
	defer data.Stop()
	clock := time.NewTicker(r.clockEvery)
	defer clock.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("agenda refresher stopped")
			return
		case <-data.C:
			r.pushAgenda(ctx)
		case <-clock.C:
			r.hub.Broadcast(NewClockEvent(time.Now()))
		}
	}
}

func (r *Refresher) pushAgenda(ctx context.Context) {
	days, err := r.service.Upcoming(ctx, time.Now())
	if err != nil {
		log.Printf("agenda refresh failed: %v", err)
		return
	}
	r.hub.Broadcast(NewAgendaEvent(days))
}
