package children

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"skytopia_backend/internals/features/children/model"
)

type ChildSeed struct {
	ChildName           string  `json:"child_name"`
	ChildGender         *string `json:"child_gender"`
	ChildParentName     *string `json:"child_parent_name"`
	ChildParentPhone    *string `json:"child_parent_phone"`
	ChildMonthlyFeeIDR  int     `json:"child_monthly_fee_idr"`
	ChildSemesterFeeIDR int     `json:"child_semester_fee_idr"`
}

func SeedChildrenFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []ChildSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	// Ambil nama yang sudah ada supaya seeding idempotent
	var existingNames []string
	if err := db.Model(&model.ChildModel{}).
		Select("child_name").
		Find(&existingNames).Error; err != nil {
		log.Fatalf("❌ Gagal ambil data anak yang sudah ada: %v", err)
	}

	existingMap := make(map[string]bool)
	for _, n := range existingNames {
		existingMap[n] = true
	}

	var newChildren []model.ChildModel
	for _, s := range seeds {
		if existingMap[s.ChildName] {
			log.Printf("ℹ️ Anak dengan nama '%s' sudah ada, dilewati.", s.ChildName)
			continue
		}
		newChildren = append(newChildren, model.ChildModel{
			ChildName:           s.ChildName,
			ChildGender:         s.ChildGender,
			ChildParentName:     s.ChildParentName,
			ChildParentPhone:    s.ChildParentPhone,
			ChildMonthlyFeeIDR:  s.ChildMonthlyFeeIDR,
			ChildSemesterFeeIDR: s.ChildSemesterFeeIDR,
			ChildIsActive:       true,
		})
	}

	if len(newChildren) == 0 {
		log.Println("ℹ️ Tidak ada data anak baru untuk di-seed.")
		return
	}

	if err := db.Create(&newChildren).Error; err != nil {
		log.Fatalf("❌ Gagal seed data anak: %v", err)
	}
	log.Printf("✅ %d data anak berhasil di-seed.", len(newChildren))
}
