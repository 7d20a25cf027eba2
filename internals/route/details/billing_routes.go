// file: internals/route/details/billing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ChildrenRoute "skytopia_backend/internals/features/children/route"
	BillingRoute "skytopia_backend/internals/features/payment/billing/route"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ChildrenRoute.ChildrenAdminRoutes(r, db)
	BillingRoute.PaymentAdminRoutes(r, db)
}

func UserRoutes(r fiber.Router, db *gorm.DB) {
	BillingRoute.PaymentUserRoutes(r, db)
}

func PublicRoutes(r fiber.Router, db *gorm.DB) {
	BillingRoute.PaymentWebhookRoutes(r, db)
}
