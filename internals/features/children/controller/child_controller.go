package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "skytopia_backend/internals/features/children/dto"
	model "skytopia_backend/internals/features/children/model"
	helper "skytopia_backend/internals/helpers"
)

type ChildController struct {
	DB *gorm.DB
}

func NewChildController(db *gorm.DB) *ChildController {
	return &ChildController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /api/a/children
func (h *ChildController) Create(c *fiber.Ctx) error {
	var req dto.ChildCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data anak")
	}

	return helper.JsonCreated(c, "Data anak berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/children?q=&active=&page=&per_page=
func (h *ChildController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.ChildModel{})

	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("child_name ILIKE ?", "%"+s+"%")
	}
	switch c.Query("active") {
	case "true":
		q = q.Where("child_is_active = TRUE")
	case "false":
		q = q.Where("child_is_active = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ChildModel
	if err := q.
		Order("child_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/children/:id
func (h *ChildController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ChildModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("child_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data anak tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (partial) ======================== */
// PATCH /api/a/children/:id
func (h *ChildController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ChildUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.ChildModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("child_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data anak tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui data anak")
	}

	return helper.JsonUpdated(c, "Data anak berhasil diperbarui", dto.FromModel(row))
}

/* ======================== DELETE (soft) ======================== */
// DELETE /api/a/children/:id
func (h *ChildController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("child_id = ?", id).
		Delete(&model.ChildModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data anak")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data anak tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Data anak berhasil dihapus", fiber.Map{"child_id": id})
}
