package seeds

import (
	"gorm.io/gorm"

	children "skytopia_backend/internals/seeds/children"
)

func RunAllSeeds(db *gorm.DB) {
	children.SeedChildrenFromJSON(db, "internals/seeds/children/data_children.json")
}
