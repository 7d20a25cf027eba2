// internals/features/payment/billing/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingCtl "skytopia_backend/internals/features/payment/billing/controller"
)

// Pemakaian: route.PaymentAdminRoutes(api.Group("/a"), db)
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billingCtl.NewPaymentController(db)

	payments := r.Group("/payments")

	payments.Post("/", ctl.Create)                  // POST   /api/a/payments
	payments.Get("/", ctl.List)                     // GET    /api/a/payments
	payments.Post("/generate", ctl.RunGenerator)    // POST   /api/a/payments/generate
	payments.Get("/:id", ctl.GetByID)               // GET    /api/a/payments/:id
	payments.Patch("/:id/status", ctl.UpdateStatus) // PATCH  /api/a/payments/:id/status
	payments.Delete("/:id", ctl.Delete)             // DELETE /api/a/payments/:id
}
