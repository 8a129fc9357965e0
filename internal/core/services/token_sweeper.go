package services

import (
	"context"
	"log"
	"time"

	"docuport/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// TokenSweeper deletes expired refresh tokens on a schedule so the table does
// not grow unbounded. Revoked-but-unexpired tokens are kept until expiry to
// preserve the rotation audit trail.
type TokenSweeper struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	cron             *cron.Cron
}

// NewTokenSweeper creates a new token sweeper
func NewTokenSweeper(refreshTokenRepo repositories.RefreshTokenRepository) *TokenSweeper {
	return &TokenSweeper{
		refreshTokenRepo: refreshTokenRepo,
		cron:             cron.New(),
	}
}

// Start schedules the nightly sweep (03:30 daily) and runs one sweep upfront
func (s *TokenSweeper) Start() {
	s.cron.AddFunc("30 3 * * *", s.sweep)
	s.cron.Start()
	log.Println("🚀 TokenSweeper started (daily 03:30)")

	go s.sweep()
}

// Stop stops the schedule, waiting for a running sweep to finish
func (s *TokenSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 TokenSweeper stopped")
}

func (s *TokenSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.refreshTokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("❌ Token sweep error: %v", err)
		return
	}
	log.Println("🗑️ Expired refresh tokens swept")
}
