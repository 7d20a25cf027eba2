// file: internals/features/payment/billing/service/duedate.go
package service

import (
	"fmt"
	"time"

	model "skytopia_backend/internals/features/payment/billing/model"
)

/* =======================================================
   DUE DATE POLICY — dua jalur yang memang berbeda:
   - manual (admin buat ad hoc): offset dari "sekarang"
   - terjadwal (generator bulanan): tanggal kalender akademik
   Keduanya pure function: selalu menghasilkan tanggal, tidak pernah error.
======================================================= */

// ManualDueDate menghitung jatuh tempo tagihan yang dibuat manual oleh admin.
//   - Monthly/Registration: +7 hari
//   - Semester: +30 hari
//   - kategori tak dikenal: +7 hari
func ManualDueDate(category model.PaymentCategory, now time.Time) time.Time {
	switch category {
	case model.PaymentCategorySemester:
		return now.AddDate(0, 0, 30)
	case model.PaymentCategoryMonthly, model.PaymentCategoryRegistration:
		return now.AddDate(0, 0, 7)
	default:
		return now.AddDate(0, 0, 7)
	}
}

// ScheduledDueDate menghitung jatuh tempo tagihan yang dibuat generator bulanan.
//   - Monthly: tanggal 10 bulan berjalan
//   - Semester (run Juni): 15 Juli tahun yang sama — semester genap (Jul–Des)
//   - Semester (run Desember): 15 Januari tahun berikutnya — semester ganjil (Jan–Jun)
//   - Semester di bulan lain jatuh ke aturan Monthly; generator hanya membuat
//     tagihan Semester di Juni/Desember sehingga cabang ini tidak pernah tercapai.
func ScheduledDueDate(category model.PaymentCategory, now time.Time) time.Time {
	if category == model.PaymentCategorySemester {
		switch now.Month() {
		case time.June:
			return time.Date(now.Year(), time.July, 15, 0, 0, 0, 0, now.Location())
		case time.December:
			return time.Date(now.Year()+1, time.January, 15, 0, 0, 0, 0, now.Location())
		}
	}
	return time.Date(now.Year(), now.Month(), 10, 0, 0, 0, 0, now.Location())
}

/* =======================================================
   PERIODE BILLING
======================================================= */

// MonthlyPeriod mengembalikan periode bulanan "YYYY-MM" untuk waktu tsb.
func MonthlyPeriod(now time.Time) string {
	return now.Format("2006-01")
}

// SemesterPeriod menentukan periode semester yang harus digenerate bulan ini.
//   - Juni: "<tahun>-2" (semester genap, Jul–Des)
//   - Desember: "<tahun+1>-1" (semester ganjil, Jan–Jun)
//   - bulan lain: tidak ada generate semester (ok=false)
func SemesterPeriod(now time.Time) (period string, ok bool) {
	switch now.Month() {
	case time.June:
		return fmt.Sprintf("%d-2", now.Year()), true
	case time.December:
		return fmt.Sprintf("%d-1", now.Year()+1), true
	default:
		return "", false
	}
}
