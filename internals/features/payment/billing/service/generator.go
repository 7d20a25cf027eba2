// file: internals/features/payment/billing/service/generator.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	model "skytopia_backend/internals/features/payment/billing/model"
)

/* =======================================================
   GENERATOR TAGIHAN BERULANG
   Jalan sebulan sekali (lihat scheduler.go). Sweep dulu, lalu generate
   tagihan Monthly untuk periode berjalan + Semester di Juni/Desember.
   Duplikat dijaga dua lapis: cek existensi (fast path) + unique index DB.
======================================================= */

type Generator struct {
	Payments PaymentStore
	Children ChildStore
	Loc      *time.Location
}

func NewGenerator(payments PaymentStore, children ChildStore, loc *time.Location) *Generator {
	if loc == nil {
		loc = time.UTC
	}
	return &Generator{Payments: payments, Children: children, Loc: loc}
}

// RunStats: hasil satu run generator, untuk logging/observability.
type RunStats struct {
	Swept           int64
	MonthlyCreated  int
	SemesterCreated int
	MonthlySkipped  int
	SemesterSkipped int
}

// Sweep menandai Overdue semua tagihan Pending/Submitted yang lewat jatuh tempo.
// Gagal sweep tidak fatal: pemanggil cukup log dan lanjut dengan status lama.
func (g *Generator) Sweep(ctx context.Context, now time.Time) (int64, error) {
	n, err := g.Payments.MarkOverdue(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("[BILLING] sweep: %d tagihan ditandai Overdue", n)
	}
	return n, nil
}

// Run mengeksekusi satu putaran generate tagihan untuk waktu `now`.
// Error storage menghentikan run lebih awal; baris yang sudah dibuat dibiarkan
// (tanpa rollback) — run bulan berikutnya akan mengisi yang bolong lewat cek duplikat.
func (g *Generator) Run(ctx context.Context, now time.Time) (RunStats, error) {
	now = now.In(g.Loc)
	var stats RunStats

	// 1) sweep dulu supaya status basi tidak ikut campur
	if n, err := g.Sweep(ctx, now); err != nil {
		log.Printf("[BILLING] sweep gagal (lanjut generate): %v", err)
	} else {
		stats.Swept = n
	}

	// 2) tentukan periode
	monthlyPeriod := MonthlyPeriod(now)
	semesterPeriod, genSemester := SemesterPeriod(now)

	// 3) anak yang punya tarif
	children, err := g.Children.ListBillable(ctx)
	if err != nil {
		return stats, err
	}

	// 4) generate per anak
	for _, child := range children {
		if child.MonthlyFeeIDR > 0 {
			created, err := g.ensure(ctx, child.ChildID, model.PaymentCategoryMonthly,
				monthlyPeriod, child.MonthlyFeeIDR, now)
			if err != nil {
				return stats, err
			}
			if created {
				stats.MonthlyCreated++
			} else {
				stats.MonthlySkipped++
			}
		}

		if genSemester && child.SemesterFeeIDR > 0 {
			created, err := g.ensure(ctx, child.ChildID, model.PaymentCategorySemester,
				semesterPeriod, child.SemesterFeeIDR, now)
			if err != nil {
				return stats, err
			}
			if created {
				stats.SemesterCreated++
			} else {
				stats.SemesterSkipped++
			}
		}
	}

	return stats, nil
}

// ensure membuat satu tagihan Pending kalau belum ada untuk (child, category, period).
// Unique violation dari DB dianggap "sudah ada" (race dengan create manual), bukan error.
func (g *Generator) ensure(ctx context.Context, childID uuid.UUID, category model.PaymentCategory, period string, amountIDR int, now time.Time) (bool, error) {
	exists, err := g.Payments.ExistsForPeriod(ctx, childID, category, period)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	p := period
	payment := &model.PaymentModel{
		PaymentChildID:   childID,
		PaymentCategory:  category,
		PaymentPeriod:    &p,
		PaymentAmountIDR: amountIDR,
		PaymentStatus:    model.PaymentStatusPending,
		PaymentDueDate:   ScheduledDueDate(category, now),
	}
	if err := g.Payments.Create(ctx, payment); err != nil {
		if IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
