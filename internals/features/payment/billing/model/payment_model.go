// file: internals/features/payment/billing/model/payment_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — kategori & status tagihan
// =========================================================

type PaymentCategory string

const (
	PaymentCategoryMonthly      PaymentCategory = "Monthly"
	PaymentCategorySemester     PaymentCategory = "Semester"
	PaymentCategoryRegistration PaymentCategory = "Registration"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusSubmitted PaymentStatus = "Submitted"
	PaymentStatusPaid      PaymentStatus = "Paid"
	PaymentStatusRejected  PaymentStatus = "Rejected"
	PaymentStatusOverdue   PaymentStatus = "Overdue"
)

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusSubmitted, PaymentStatusPaid,
		PaymentStatusRejected, PaymentStatusOverdue:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	// FK → children(child_id)
	PaymentChildID uuid.UUID `gorm:"column:payment_child_id;type:uuid;not null;index;uniqueIndex:uniq_payment_child_category_period,priority:1" json:"payment_child_id"`

	// Kategori + periode. Periode NULL hanya untuk Registration;
	// unique index partial di Postgres otomatis (NULL tidak saling bentrok).
	PaymentCategory PaymentCategory `gorm:"column:payment_category;type:varchar(20);not null;uniqueIndex:uniq_payment_child_category_period,priority:2" json:"payment_category"`
	PaymentPeriod   *string         `gorm:"column:payment_period;type:varchar(10);uniqueIndex:uniq_payment_child_category_period,priority:3" json:"payment_period,omitempty"`

	// Nominal (IDR)
	PaymentAmountIDR int `gorm:"column:payment_amount_idr;not null;check:payment_amount_idr>0" json:"payment_amount_idr"`

	// Status & bukti bayar
	PaymentStatus   PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'Pending';index:ix_payment_status" json:"payment_status"`
	PaymentDueDate  time.Time     `gorm:"column:payment_due_date;type:date;not null;index:ix_payment_due_date" json:"payment_due_date"`
	PaymentPaidAt   *time.Time    `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentProofURL *string       `gorm:"column:payment_proof_url;type:text" json:"payment_proof_url,omitempty"`

	// Payload notifikasi gateway (Midtrans) terakhir, untuk audit
	PaymentGatewayMeta datatypes.JSON `gorm:"column:payment_gateway_meta;type:jsonb" json:"payment_gateway_meta,omitempty"`

	// Timestamps (eksplisit)
	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;not null;default:now();index:ix_payment_created_at" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;not null;default:now()" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

// TableName overrides the table name used by PaymentModel to `payments`
func (PaymentModel) TableName() string {
	return "payments"
}

// =========================================================
// HOOKS — timestamps + guard konsistensi
// =========================================================

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	m.PaymentUpdatedAt = now

	if m.PaymentAmountIDR <= 0 {
		return fmt.Errorf("payment_amount_idr must be > 0")
	}
	// Semester wajib punya periode
	if m.PaymentCategory == PaymentCategorySemester &&
		(m.PaymentPeriod == nil || *m.PaymentPeriod == "") {
		return fmt.Errorf("payment_period is required for Semester category")
	}
	return nil
}

func (m *PaymentModel) BeforeSave(tx *gorm.DB) (err error) {
	// Paid harus punya paid_at
	if m.PaymentStatus == PaymentStatusPaid && m.PaymentPaidAt == nil {
		now := time.Now()
		m.PaymentPaidAt = &now
	}
	return nil
}

func (m *PaymentModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PaymentUpdatedAt = time.Now()
	return nil
}
