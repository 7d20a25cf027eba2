// file: internals/features/payment/billing/repository/payment_repo.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "skytopia_backend/internals/features/payment/billing/model"
)

// PaymentRepository: implementasi GORM dari service.PaymentStore.
type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// ExistsForPeriod: fast-path cek duplikat; unique index DB tetap jadi penjaga terakhir.
func (r *PaymentRepository) ExistsForPeriod(ctx context.Context, childID uuid.UUID, category model.PaymentCategory, period string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_child_id = ? AND payment_category = ? AND payment_period = ?",
			childID, category, period).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *model.PaymentModel) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// MarkOverdue: bulk update Pending/Submitted yang lewat jatuh tempo → Overdue.
// Idempotent: run kedua dengan `now` yang sama tidak menyentuh baris apa pun.
func (r *PaymentRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_status IN ? AND payment_due_date < ?",
			[]model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusSubmitted}, now).
		Updates(map[string]any{
			"payment_status":     model.PaymentStatusOverdue,
			"payment_updated_at": time.Now(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
