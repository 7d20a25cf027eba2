// internals/features/payment/billing/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingCtl "skytopia_backend/internals/features/payment/billing/controller"
	middlewares "skytopia_backend/internals/middlewares"
)

// Pemakaian: route.PaymentUserRoutes(api.Group("/u"), db)
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billingCtl.NewPaymentController(db)

	r.Get("/children/:child_id/payments", ctl.ListByChild) // GET  /api/u/children/:child_id/payments
	r.Post("/payments/:id/proof", ctl.SubmitProof)         // POST /api/u/payments/:id/proof
	r.Post("/payments/:id/snap", ctl.CreateSnapToken)      // POST /api/u/payments/:id/snap
}

// Webhook Midtrans — tanpa prefix role, dipanggil server-to-server.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billingCtl.NewPaymentController(db)

	r.Post("/payments/webhook", middlewares.WebhookRateLimiter(), ctl.MidtransWebhook) // POST /api/payments/webhook
}
