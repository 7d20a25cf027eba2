// file: internals/features/children/dto/child_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "skytopia_backend/internals/features/children/model"
)

////////////////////////////////////////////////////////////////////////////////
// CHILDREN — DTO
////////////////////////////////////////////////////////////////////////////////

// Create
type ChildCreateDTO struct {
	ChildName           string     `json:"child_name" validate:"required,min=2,max=100"`
	ChildBirthDate      *time.Time `json:"child_birth_date,omitempty"`
	ChildGender         *string    `json:"child_gender,omitempty" validate:"omitempty,oneof=male female"`
	ChildParentName     *string    `json:"child_parent_name,omitempty" validate:"omitempty,max=100"`
	ChildParentPhone    *string    `json:"child_parent_phone,omitempty" validate:"omitempty,max=30"`
	ChildMonthlyFeeIDR  int        `json:"child_monthly_fee_idr" validate:"min=0"`
	ChildSemesterFeeIDR int        `json:"child_semester_fee_idr" validate:"min=0"`
}

// Update (partial)
type ChildUpdateDTO struct {
	ChildName           *string    `json:"child_name,omitempty" validate:"omitempty,min=2,max=100"`
	ChildBirthDate      *time.Time `json:"child_birth_date,omitempty"`
	ChildGender         *string    `json:"child_gender,omitempty" validate:"omitempty,oneof=male female"`
	ChildParentName     *string    `json:"child_parent_name,omitempty" validate:"omitempty,max=100"`
	ChildParentPhone    *string    `json:"child_parent_phone,omitempty" validate:"omitempty,max=30"`
	ChildMonthlyFeeIDR  *int       `json:"child_monthly_fee_idr,omitempty" validate:"omitempty,min=0"`
	ChildSemesterFeeIDR *int       `json:"child_semester_fee_idr,omitempty" validate:"omitempty,min=0"`
	ChildIsActive       *bool      `json:"child_is_active,omitempty"`
}

// Response
type ChildResponse struct {
	ChildID             uuid.UUID  `json:"child_id"`
	ChildName           string     `json:"child_name"`
	ChildBirthDate      *time.Time `json:"child_birth_date,omitempty"`
	ChildGender         *string    `json:"child_gender,omitempty"`
	ChildParentName     *string    `json:"child_parent_name,omitempty"`
	ChildParentPhone    *string    `json:"child_parent_phone,omitempty"`
	ChildMonthlyFeeIDR  int        `json:"child_monthly_fee_idr"`
	ChildSemesterFeeIDR int        `json:"child_semester_fee_idr"`
	ChildIsActive       bool       `json:"child_is_active"`
	ChildCreatedAt      time.Time  `json:"child_created_at"`
	ChildUpdatedAt      time.Time  `json:"child_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func (r ChildCreateDTO) ToModel() *model.ChildModel {
	return &model.ChildModel{
		ChildName:           r.ChildName,
		ChildBirthDate:      r.ChildBirthDate,
		ChildGender:         r.ChildGender,
		ChildParentName:     r.ChildParentName,
		ChildParentPhone:    r.ChildParentPhone,
		ChildMonthlyFeeIDR:  r.ChildMonthlyFeeIDR,
		ChildSemesterFeeIDR: r.ChildSemesterFeeIDR,
		ChildIsActive:       true,
	}
}

// ApplyTo menerapkan field non-nil ke model (partial update)
func (r ChildUpdateDTO) ApplyTo(m *model.ChildModel) {
	if r.ChildName != nil {
		m.ChildName = *r.ChildName
	}
	if r.ChildBirthDate != nil {
		m.ChildBirthDate = r.ChildBirthDate
	}
	if r.ChildGender != nil {
		m.ChildGender = r.ChildGender
	}
	if r.ChildParentName != nil {
		m.ChildParentName = r.ChildParentName
	}
	if r.ChildParentPhone != nil {
		m.ChildParentPhone = r.ChildParentPhone
	}
	if r.ChildMonthlyFeeIDR != nil {
		m.ChildMonthlyFeeIDR = *r.ChildMonthlyFeeIDR
	}
	if r.ChildSemesterFeeIDR != nil {
		m.ChildSemesterFeeIDR = *r.ChildSemesterFeeIDR
	}
	if r.ChildIsActive != nil {
		m.ChildIsActive = *r.ChildIsActive
	}
}

func FromModel(m model.ChildModel) ChildResponse {
	return ChildResponse{
		ChildID:             m.ChildID,
		ChildName:           m.ChildName,
		ChildBirthDate:      m.ChildBirthDate,
		ChildGender:         m.ChildGender,
		ChildParentName:     m.ChildParentName,
		ChildParentPhone:    m.ChildParentPhone,
		ChildMonthlyFeeIDR:  m.ChildMonthlyFeeIDR,
		ChildSemesterFeeIDR: m.ChildSemesterFeeIDR,
		ChildIsActive:       m.ChildIsActive,
		ChildCreatedAt:      m.ChildCreatedAt,
		ChildUpdatedAt:      m.ChildUpdatedAt,
	}
}

func FromModels(ms []model.ChildModel) []ChildResponse {
	out := make([]ChildResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
