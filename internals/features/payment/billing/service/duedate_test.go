package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	model "skytopia_backend/internals/features/payment/billing/model"
	service "skytopia_backend/internals/features/payment/billing/service"
)

func TestManualDueDate(t *testing.T) {
	now := time.Date(2026, time.March, 17, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		category model.PaymentCategory
		want     time.Time
	}{
		{"monthly +7 hari", model.PaymentCategoryMonthly, now.AddDate(0, 0, 7)},
		{"semester +30 hari", model.PaymentCategorySemester, now.AddDate(0, 0, 30)},
		{"registration +7 hari", model.PaymentCategoryRegistration, now.AddDate(0, 0, 7)},
		{"kategori tak dikenal fallback +7 hari", model.PaymentCategory("Lainnya"), now.AddDate(0, 0, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ManualDueDate(tt.category, now))
		})
	}
}

func TestScheduledDueDate_Monthly(t *testing.T) {
	// tanggal 10 bulan berjalan, tidak peduli tanggal invokasi
	for _, day := range []int{1, 10, 28} {
		now := time.Date(2026, time.March, day, 14, 0, 0, 0, time.UTC)
		got := service.ScheduledDueDate(model.PaymentCategoryMonthly, now)
		assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), got)
	}
}

func TestScheduledDueDate_Semester(t *testing.T) {
	t.Run("run Juni → 15 Juli tahun yang sama", func(t *testing.T) {
		now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
		got := service.ScheduledDueDate(model.PaymentCategorySemester, now)
		assert.Equal(t, time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("run Desember → 15 Januari tahun berikutnya", func(t *testing.T) {
		now := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
		got := service.ScheduledDueDate(model.PaymentCategorySemester, now)
		assert.Equal(t, time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("run bulan lain jatuh ke aturan Monthly", func(t *testing.T) {
		// cabang ini tidak pernah tercapai dari generator (hanya Juni/Desember),
		// tapi perilakunya dikunci di sini
		now := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
		got := service.ScheduledDueDate(model.PaymentCategorySemester, now)
		assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestScheduledDueDate_UnknownCategory(t *testing.T) {
	now := time.Date(2026, time.August, 21, 0, 0, 0, 0, time.UTC)
	got := service.ScheduledDueDate(model.PaymentCategory("Lainnya"), now)
	assert.Equal(t, time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestScheduledDueDate_HonorsLocation(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skip("tzdata tidak tersedia")
	}
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, jakarta)
	got := service.ScheduledDueDate(model.PaymentCategorySemester, now)
	assert.Equal(t, jakarta, got.Location())
}

func TestMonthlyPeriod(t *testing.T) {
	assert.Equal(t, "2026-06", service.MonthlyPeriod(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-12", service.MonthlyPeriod(time.Date(2026, time.December, 31, 23, 0, 0, 0, time.UTC)))
}

func TestSemesterPeriod(t *testing.T) {
	t.Run("Juni → semester genap tahun berjalan", func(t *testing.T) {
		period, ok := service.SemesterPeriod(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
		assert.True(t, ok)
		assert.Equal(t, "2026-2", period)
	})

	t.Run("Desember → semester ganjil tahun berikutnya", func(t *testing.T) {
		period, ok := service.SemesterPeriod(time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC))
		assert.True(t, ok)
		assert.Equal(t, "2027-1", period)
	})

	t.Run("bulan lain → tidak ada", func(t *testing.T) {
		_, ok := service.SemesterPeriod(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
		assert.False(t, ok)
	})
}
