package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skytopia_backend/internals/configs"
	dto "skytopia_backend/internals/features/payment/billing/dto"
	model "skytopia_backend/internals/features/payment/billing/model"
	repository "skytopia_backend/internals/features/payment/billing/repository"
	service "skytopia_backend/internals/features/payment/billing/service"
	helper "skytopia_backend/internals/helpers"
)

type PaymentController struct {
	DB       *gorm.DB
	Payments *repository.PaymentRepository
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:       db,
		Payments: repository.NewPaymentRepository(db),
	}
}

var validate = validator.New()

// sweepQuietly: sinkronkan status Overdue sebelum read path.
// Gagal sweep tidak boleh memblokir read — cukup log, lanjut dengan status lama.
func (h *PaymentController) sweepQuietly(c *fiber.Ctx) {
	if _, err := h.Payments.MarkOverdue(c.UserContext(), time.Now()); err != nil {
		log.Printf("[BILLING] sweep sebelum read gagal: %v", err)
	}
}

/* ======================= CREATE (manual) ======================= */
// POST /api/a/payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.PaymentCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	category := model.PaymentCategory(req.PaymentCategory)

	// Semester wajib punya periode
	if category == model.PaymentCategorySemester &&
		(req.PaymentPeriod == nil || *req.PaymentPeriod == "") {
		return fiber.NewError(fiber.StatusBadRequest, "payment_period wajib diisi untuk kategori Semester")
	}

	// fast-path cek duplikat per (child, category, period)
	if req.PaymentPeriod != nil && *req.PaymentPeriod != "" {
		exists, err := h.Payments.ExistsForPeriod(c.UserContext(), req.PaymentChildID, category, *req.PaymentPeriod)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if exists {
			return fiber.NewError(fiber.StatusConflict, "Tagihan untuk periode tersebut sudah ada")
		}
	}

	m := req.ToModel(service.ManualDueDate(category, time.Now()))
	if err := h.Payments.Create(c.UserContext(), m); err != nil {
		// unique index DB = sumber kebenaran duplikat (race dengan generator)
		if service.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Tagihan untuk periode tersebut sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tagihan")
	}

	return helper.JsonCreated(c, "Tagihan berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/payments?child_id=&status=&category=&period=&page=&per_page=
func (h *PaymentController) List(c *fiber.Ctx) error {
	h.sweepQuietly(c)

	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.PaymentModel{})

	if s := c.Query("child_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "child_id tidak valid")
		}
		q = q.Where("payment_child_id = ?", id)
	}
	if s := c.Query("status"); s != "" {
		if !model.ValidPaymentStatus(s) {
			return fiber.NewError(fiber.StatusBadRequest, "status tidak dikenal")
		}
		q = q.Where("payment_status = ?", s)
	}
	if s := c.Query("category"); s != "" {
		q = q.Where("payment_category = ?", s)
	}
	if s := c.Query("period"); s != "" {
		q = q.Where("payment_period = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentModel
	if err := q.
		Order("payment_due_date DESC, payment_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/payments/:id
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	h.sweepQuietly(c)

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

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE STATUS ======================== */
// PATCH /api/a/payments/:id/status
// Admin boleh set status apa pun (approve Submitted → Paid, reject → Rejected, dst).
func (h *PaymentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PaymentStatusUpdateDTO
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

	row.PaymentStatus = model.PaymentStatus(req.PaymentStatus)
	if row.PaymentStatus == model.PaymentStatusPaid && row.PaymentPaidAt == nil {
		now := time.Now()
		row.PaymentPaidAt = &now
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui status tagihan")
	}

	return helper.JsonUpdated(c, "Status tagihan berhasil diperbarui", dto.FromModel(row))
}

/* ======================== DELETE ======================== */
// DELETE /api/a/payments/:id — tagihan Paid tidak boleh dihapus.
func (h *PaymentController) Delete(c *fiber.Ctx) error {
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
		return fiber.NewError(fiber.StatusConflict, "Tagihan yang sudah Paid tidak boleh dihapus")
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus tagihan")
	}

	return helper.JsonDeleted(c, "Tagihan berhasil dihapus", fiber.Map{"payment_id": id})
}

/* ======================== RUN GENERATOR (manual trigger) ======================== */
// POST /api/a/payments/generate — jalankan satu putaran generate di luar jadwal.
func (h *PaymentController) RunGenerator(c *fiber.Ctx) error {
	loc, err := time.LoadLocation(configs.GetEnv("BILLING_TIMEZONE", "Asia/Jakarta"))
	if err != nil {
		loc = time.UTC
	}

	gen := service.NewGenerator(h.Payments, repository.NewChildRepository(h.DB), loc)
	stats, err := gen.Run(c.UserContext(), time.Now())
	if err != nil {
		// partial completion diterima: baris yang sudah dibuat tetap berdiri
		log.Printf("[BILLING] run manual gagal: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Generate tagihan gagal di tengah jalan")
	}

	return helper.JsonOK(c, "Generate tagihan selesai", fiber.Map{
		"monthly_created":  stats.MonthlyCreated,
		"semester_created": stats.SemesterCreated,
		"monthly_skipped":  stats.MonthlySkipped,
		"semester_skipped": stats.SemesterSkipped,
		"swept":            stats.Swept,
	})
}
