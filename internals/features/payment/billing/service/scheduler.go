// file: internals/features/payment/billing/service/scheduler.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"skytopia_backend/internals/configs"
	repository "skytopia_backend/internals/features/payment/billing/repository"
)

/* =======================================================
   SCHEDULER BILLING BULANAN
   Default: tanggal 1 tiap bulan jam 00:00 Asia/Jakarta.
   Jadwal dan timezone bisa dioverride lewat ENV:
     BILLING_CRON_SCHEDULE (default "0 0 1 * *")
     BILLING_TIMEZONE      (default "Asia/Jakarta")
======================================================= */

type BillingScheduler struct {
	cron *cron.Cron
	gen  *Generator
	spec string
}

// NewScheduler membungkus generator dalam trigger cron dengan lifecycle Start/Stop.
func NewScheduler(gen *Generator, spec string) (*BillingScheduler, error) {
	c := cron.New(
		cron.WithLocation(gen.Loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()

		stats, err := gen.Run(ctx, time.Now())
		if err != nil {
			log.Printf("[BILLING] run gagal (sebagian mungkin sudah dibuat, tidak di-rollback): %v", err)
			return
		}
		log.Printf("[BILLING] run selesai: monthly=%d semester=%d skipped=%d/%d swept=%d",
			stats.MonthlyCreated, stats.SemesterCreated,
			stats.MonthlySkipped, stats.SemesterSkipped, stats.Swept)
	})
	if err != nil {
		return nil, fmt.Errorf("add cron gagal: %w", err)
	}

	return &BillingScheduler{cron: c, gen: gen, spec: spec}, nil
}

// NewSchedulerFromEnv merakit generator + scheduler dari ENV dan koneksi DB.
// Dipanggil sekali dari main.go setelah DB siap.
func NewSchedulerFromEnv(db *gorm.DB) (*BillingScheduler, error) {
	tz := configs.GetEnv("BILLING_TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("timezone %q tidak valid: %w", tz, err)
	}

	gen := NewGenerator(
		repository.NewPaymentRepository(db),
		repository.NewChildRepository(db),
		loc,
	)

	spec := configs.GetEnv("BILLING_CRON_SCHEDULE", "0 0 1 * *")
	return NewScheduler(gen, spec)
}

func (s *BillingScheduler) Start() {
	log.Printf("[BILLING] scheduler started schedule=%q tz=%q", s.spec, s.gen.Loc.String())
	s.cron.Start()
}

// Stop menghentikan trigger dan menunggu job yang sedang jalan selesai.
func (s *BillingScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[BILLING] scheduler stopped")
}

// RunNow menjalankan satu putaran generate di luar jadwal (dipakai endpoint admin).
func (s *BillingScheduler) RunNow(ctx context.Context) (RunStats, error) {
	return s.gen.Run(ctx, time.Now())
}
