// file: internals/features/children/model/child_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChildModel struct {
	// PK
	ChildID uuid.UUID `gorm:"column:child_id;type:uuid;default:gen_random_uuid();primaryKey" json:"child_id"`

	// Identitas anak
	ChildName      string     `gorm:"column:child_name;type:varchar(100);not null" json:"child_name"`
	ChildBirthDate *time.Time `gorm:"column:child_birth_date;type:date" json:"child_birth_date,omitempty"`
	ChildGender    *string    `gorm:"column:child_gender;type:varchar(10)" json:"child_gender,omitempty"`

	// Kontak orang tua/wali
	ChildParentName  *string `gorm:"column:child_parent_name;type:varchar(100)" json:"child_parent_name,omitempty"`
	ChildParentPhone *string `gorm:"column:child_parent_phone;type:varchar(30)" json:"child_parent_phone,omitempty"`

	// Tarif (IDR). 0 = tidak ditagih untuk kategori tsb.
	ChildMonthlyFeeIDR  int `gorm:"column:child_monthly_fee_idr;not null;default:0;check:child_monthly_fee_idr>=0" json:"child_monthly_fee_idr"`
	ChildSemesterFeeIDR int `gorm:"column:child_semester_fee_idr;not null;default:0;check:child_semester_fee_idr>=0" json:"child_semester_fee_idr"`

	// Status keaktifan
	ChildIsActive bool `gorm:"column:child_is_active;not null;default:true;index:ix_child_is_active" json:"child_is_active"`

	// Timestamps (eksplisit)
	ChildCreatedAt time.Time      `gorm:"column:child_created_at;not null;default:now()" json:"child_created_at"`
	ChildUpdatedAt time.Time      `gorm:"column:child_updated_at;not null;default:now()" json:"child_updated_at"`
	ChildDeletedAt gorm.DeletedAt `gorm:"column:child_deleted_at;index" json:"-"`
}

// TableName overrides the table name used by ChildModel to `children`
func (ChildModel) TableName() string {
	return "children"
}

func (m *ChildModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ChildCreatedAt.IsZero() {
		m.ChildCreatedAt = now
	}
	m.ChildUpdatedAt = now
	return nil
}

func (m *ChildModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ChildUpdatedAt = time.Now()
	return nil
}
