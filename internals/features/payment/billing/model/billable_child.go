// file: internals/features/payment/billing/model/billable_child.go
package model

import "github.com/google/uuid"

// BillableChild: proyeksi minimum anak yang dibutuhkan generator billing.
// Diisi dari tabel `children` (lihat repository.ChildRepository.ListBillable).
type BillableChild struct {
	ChildID        uuid.UUID `gorm:"column:child_id"`
	MonthlyFeeIDR  int       `gorm:"column:monthly_fee_idr"`
	SemesterFeeIDR int       `gorm:"column:semester_fee_idr"`
}
