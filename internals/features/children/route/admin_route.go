// internals/features/children/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	childCtl "skytopia_backend/internals/features/children/controller"
)

// Pemakaian: route.ChildrenAdminRoutes(api.Group("/a"), db)
func ChildrenAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := childCtl.NewChildController(db)

	children := r.Group("/children")

	children.Post("/", ctl.Create)      // POST   /api/a/children
	children.Get("/", ctl.List)         // GET    /api/a/children
	children.Get("/:id", ctl.GetByID)   // GET    /api/a/children/:id
	children.Patch("/:id", ctl.Update)  // PATCH  /api/a/children/:id
	children.Delete("/:id", ctl.Delete) // DELETE /api/a/children/:id
}
