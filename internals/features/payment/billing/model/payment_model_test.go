package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentBeforeCreate_Guards(t *testing.T) {
	period := "2026-06"

	t.Run("amount harus > 0", func(t *testing.T) {
		m := &PaymentModel{
			PaymentChildID:  uuid.New(),
			PaymentCategory: PaymentCategoryMonthly,
			PaymentPeriod:   &period,
		}
		assert.Error(t, m.BeforeCreate(nil))
	})

	t.Run("semester wajib punya periode", func(t *testing.T) {
		m := &PaymentModel{
			PaymentChildID:   uuid.New(),
			PaymentCategory:  PaymentCategorySemester,
			PaymentAmountIDR: 2000000,
		}
		assert.Error(t, m.BeforeCreate(nil))
	})

	t.Run("registration tanpa periode sah", func(t *testing.T) {
		m := &PaymentModel{
			PaymentChildID:   uuid.New(),
			PaymentCategory:  PaymentCategoryRegistration,
			PaymentAmountIDR: 1000000,
		}
		require.NoError(t, m.BeforeCreate(nil))
		assert.False(t, m.PaymentCreatedAt.IsZero())
		assert.False(t, m.PaymentUpdatedAt.IsZero())
	})
}

func TestPaymentBeforeSave_PaidSetsPaidAt(t *testing.T) {
	period := "2026-06"
	m := &PaymentModel{
		PaymentChildID:   uuid.New(),
		PaymentCategory:  PaymentCategoryMonthly,
		PaymentPeriod:    &period,
		PaymentAmountIDR: 500000,
		PaymentStatus:    PaymentStatusPaid,
	}

	require.NoError(t, m.BeforeSave(nil))
	require.NotNil(t, m.PaymentPaidAt)
	assert.WithinDuration(t, time.Now(), *m.PaymentPaidAt, time.Minute)

	// paid_at yang sudah ada tidak ditimpa
	fixed := time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC)
	m.PaymentPaidAt = &fixed
	require.NoError(t, m.BeforeSave(nil))
	assert.Equal(t, fixed, *m.PaymentPaidAt)
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Submitted", "Paid", "Rejected", "Overdue"} {
		assert.True(t, ValidPaymentStatus(s), s)
	}
	assert.False(t, ValidPaymentStatus("paid"))
	assert.False(t, ValidPaymentStatus(""))
}
