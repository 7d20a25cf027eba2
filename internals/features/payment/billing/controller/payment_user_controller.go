package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	childModel "skytopia_backend/internals/features/children/model"
	dto "skytopia_backend/internals/features/payment/billing/dto"
	model "skytopia_backend/internals/features/payment/billing/model"
	service "skytopia_backend/internals/features/payment/billing/service"
	helper "skytopia_backend/internals/helpers"
)

/* ======================== LIST TAGIHAN PER ANAK (orang tua) ======================== */
// GET /api/u/children/:child_id/payments
func (h *PaymentController) ListByChild(c *fiber.Ctx) error {
	h.sweepQuietly(c)

	childID, err := uuid.Parse(c.Params("child_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "child_id tidak valid")
	}

	var rows []model.PaymentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("payment_child_id = ?", childID).
		Order("payment_due_date DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

/* ======================== SUBMIT BUKTI BAYAR ======================== */
// POST /api/u/payments/:id/proof — Pending/Overdue → Submitted
func (h *PaymentController) SubmitProof(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PaymentProofDTO
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.PaymentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("payment_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	switch row.PaymentStatus {
	case model.PaymentStatusPending, model.PaymentStatusOverdue:
		// lanjut
	case model.PaymentStatusSubmitted:
		return fiber.NewError(fiber.StatusConflict, "Bukti bayar sudah pernah dikirim, menunggu verifikasi admin")
	default:
		return fiber.NewError(fiber.StatusConflict, "Tagihan tidak dalam status yang bisa dibayar")
	}

	row.PaymentProofURL = &req.PaymentProofURL
	row.PaymentStatus = model.PaymentStatusSubmitted

	if err := h.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan bukti bayar")
	}

	return helper.JsonUpdated(c, "Bukti bayar terkirim, menunggu verifikasi admin", dto.FromModel(row))
}

/* ======================== SNAP TOKEN (Midtrans) ======================== */
// POST /api/u/payments/:id/snap — buat token pembayaran online untuk tagihan unpaid.
func (h *PaymentController) CreateSnapToken(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.PaymentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("payment_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if row.PaymentStatus == model.PaymentStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Tagihan sudah dibayar")
	}
	if row.PaymentDueDate.Before(time.Now().AddDate(0, -3, 0)) {
		return fiber.NewError(fiber.StatusConflict, "Tagihan terlalu lama, hubungi admin")
	}

	parentName := ""
	var child childModel.ChildModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("child_id = ?", row.PaymentChildID).
		First(&child).Error; err == nil && child.ChildParentName != nil {
		parentName = *child.ChildParentName
	}

	token, err := service.GenerateSnapToken(row, parentName)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans")
	}

	return helper.JsonOK(c, "Snap token dibuat", dto.PaymentSnapResponse{
		PaymentID: row.PaymentID,
		SnapToken: token,
	})
}

/* ======================== WEBHOOK MIDTRANS ======================== */
// POST /api/payments/webhook
func (h *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandlePaymentStatusWebhook(h.DB, body); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Notifikasi diproses", nil)
}
