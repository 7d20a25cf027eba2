// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "skytopia_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up admin routes...")
	routeDetails.AdminRoutes(api.Group("/a"), db)

	// ===================== USER (orang tua) =====================
	log.Println("[INFO] Setting up user routes...")
	routeDetails.UserRoutes(api.Group("/u"), db)

	// ===================== PUBLIC (webhook dsb) =====================
	log.Println("[INFO] Setting up public routes...")
	routeDetails.PublicRoutes(api, db)
}
