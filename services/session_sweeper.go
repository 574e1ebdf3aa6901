// Package services holds background workers that run beside the HTTP server.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-ordering/repository"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/gorm"
)

// SessionSweeper periodically deactivates sessions past their expiresAt, so
// is_active reflects what guests can still use.
type SessionSweeper struct {
	Sessions *repository.SessionRepository
	Interval time.Duration
	Now      func() time.Time
	StopChan chan struct{}
	done     chan struct{}

	mu      sync.Mutex
	running bool
	stopped bool
}

func NewSessionSweeper(db *gorm.DB, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		Sessions: repository.NewSessionRepository(db),
		Interval: interval,
		Now:      time.Now,
		StopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. It is a no-op when the sweeper is already
// running or has been stopped.
func (s *SessionSweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.stopped {
		return
	}
	s.running = true

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Sweep(context.Background())
			case <-s.StopChan:
				return
			}
		}
	}()
}

// Stop ends the loop and waits for an in-flight sweep to finish. Only the
// first call has an effect.
func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.StopChan)
	running := s.running
	s.mu.Unlock()

	if running {
		<-s.done
	}
}

// Sweep runs one pass and returns the number of sessions closed.
func (s *SessionSweeper) Sweep(ctx context.Context) int64 {
	n, err := s.Sessions.DeactivateExpired(ctx, s.Now().UTC())
	if err != nil {
		utils.ErrorLogger.Errorf("Error deactivating expired sessions: %v", err)
		return 0
	}
	if n > 0 {
		utils.InfoLogger.Printf("Deactivated %d expired session(s)", n)
	}
	return n
}
