// file: internals/features/payment/billing/repository/child_repo.go
package repository

import (
	"context"

	"gorm.io/gorm"

	model "skytopia_backend/internals/features/payment/billing/model"
)

// ChildRepository: implementasi GORM dari service.ChildStore.
type ChildRepository struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) *ChildRepository {
	return &ChildRepository{DB: db}
}

// ListBillable: anak aktif yang punya tarif bulanan atau semesteran.
func (r *ChildRepository) ListBillable(ctx context.Context) ([]model.BillableChild, error) {
	var rows []model.BillableChild
	err := r.DB.WithContext(ctx).
		Table("children").
		Select(`child_id        AS child_id,
		        child_monthly_fee_idr  AS monthly_fee_idr,
		        child_semester_fee_idr AS semester_fee_idr`).
		Where("child_is_active = TRUE AND child_deleted_at IS NULL").
		Where("child_monthly_fee_idr > 0 OR child_semester_fee_idr > 0").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
