// file: internals/features/payment/billing/service/stores.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	model "skytopia_backend/internals/features/payment/billing/model"
)

// PaymentStore: akses ke tabel payments yang dibutuhkan core billing.
// Implementasi GORM ada di package repository; test memakai fake in-memory.
type PaymentStore interface {
	// ExistsForPeriod: fast-path cek duplikat (child, category, period).
	// Sumber kebenaran duplikat tetap unique index di DB.
	ExistsForPeriod(ctx context.Context, childID uuid.UUID, category model.PaymentCategory, period string) (bool, error)

	// Create menyisipkan satu payment; unique violation dikembalikan apa adanya.
	Create(ctx context.Context, p *model.PaymentModel) error

	// MarkOverdue: bulk update status Pending/Submitted yang due_date < now → Overdue.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

// ChildStore: akses ke direktori anak.
type ChildStore interface {
	// ListBillable mengembalikan anak aktif dengan monthly_fee > 0 OR semester_fee > 0.
	ListBillable(ctx context.Context) ([]model.BillableChild, error)
}

// IsUniqueViolation: unique index (child, category, period) adalah sumber
// kebenaran duplikat; pelanggarannya diperlakukan sebagai "sudah ada", bukan error.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "unique constraint")
}
