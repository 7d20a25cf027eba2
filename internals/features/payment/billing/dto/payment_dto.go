// file: internals/features/payment/billing/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "skytopia_backend/internals/features/payment/billing/model"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS — DTO
////////////////////////////////////////////////////////////////////////////////

// Create (manual oleh admin; due date dihitung backend dari kategori)
type PaymentCreateDTO struct {
	PaymentChildID   uuid.UUID `json:"payment_child_id" validate:"required"`
	PaymentCategory  string    `json:"payment_category" validate:"required,oneof=Monthly Semester Registration"`
	PaymentPeriod    *string   `json:"payment_period,omitempty" validate:"omitempty,max=10"` // "YYYY-MM" / "YYYY-1" / "YYYY-2"
	PaymentAmountIDR int       `json:"payment_amount_idr" validate:"required,gt=0"`
}

// Update status (admin) — approve/reject/override
type PaymentStatusUpdateDTO struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=Pending Submitted Paid Rejected Overdue"`
}

// Submit bukti bayar (orang tua) — Pending/Overdue → Submitted
type PaymentProofDTO struct {
	PaymentProofURL string `json:"payment_proof_url" validate:"required,url"`
}

// Response
type PaymentResponse struct {
	PaymentID        uuid.UUID  `json:"payment_id"`
	PaymentChildID   uuid.UUID  `json:"payment_child_id"`
	PaymentCategory  string     `json:"payment_category"`
	PaymentPeriod    *string    `json:"payment_period,omitempty"`
	PaymentAmountIDR int        `json:"payment_amount_idr"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentDueDate   time.Time  `json:"payment_due_date"`
	PaymentPaidAt    *time.Time `json:"payment_paid_at,omitempty"`
	PaymentProofURL  *string    `json:"payment_proof_url,omitempty"`
	PaymentCreatedAt time.Time  `json:"payment_created_at"`
	PaymentUpdatedAt time.Time  `json:"payment_updated_at"`
}

// Snap token (Midtrans)
type PaymentSnapResponse struct {
	PaymentID uuid.UUID `json:"payment_id"`
	SnapToken string    `json:"snap_token"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func (r PaymentCreateDTO) ToModel(dueDate time.Time) *model.PaymentModel {
	return &model.PaymentModel{
		PaymentChildID:   r.PaymentChildID,
		PaymentCategory:  model.PaymentCategory(r.PaymentCategory),
		PaymentPeriod:    r.PaymentPeriod,
		PaymentAmountIDR: r.PaymentAmountIDR,
		PaymentStatus:    model.PaymentStatusPending,
		PaymentDueDate:   dueDate,
	}
}

func FromModel(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:        m.PaymentID,
		PaymentChildID:   m.PaymentChildID,
		PaymentCategory:  string(m.PaymentCategory),
		PaymentPeriod:    m.PaymentPeriod,
		PaymentAmountIDR: m.PaymentAmountIDR,
		PaymentStatus:    string(m.PaymentStatus),
		PaymentDueDate:   m.PaymentDueDate,
		PaymentPaidAt:    m.PaymentPaidAt,
		PaymentProofURL:  m.PaymentProofURL,
		PaymentCreatedAt: m.PaymentCreatedAt,
		PaymentUpdatedAt: m.PaymentUpdatedAt,
	}
}

func FromModels(ms []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
