package handler

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func tagsJSON(tags []string) (datatypes.JSON, error) {
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// ListCategories returns active categories with their available dishes.
func (h *Handler) ListCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := h.DB.
		Preload("Dishes", "is_available = ?", true).
		Where("is_active = ?", true).
		Order("name").
		Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories, "OK")
}

// ListDishes is the public menu, scoped to available dishes.
func (h *Handler) ListDishes(c *fiber.Ctx) error {
	filter := new(model.FilterDish)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	query := h.DB.Model(&model.Dish{}).Where("is_available = ?", true)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Vegetarian != nil {
		query = query.Where("is_vegetarian = ?", *filter.Vegetarian)
	}
	if filter.SearchKey != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
	}

	var total int64
	query.Count(&total)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var dishes model.Dishes
	if err := query.Preload("Category").Order("name").Find(&dishes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	response := &model.ResponseCustom{
		Rows:       dishes,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response, "OK")
}

func (h *Handler) GetDish(c *fiber.Ctx) error {
	dish, err := helper.GetDishBySlug(h.DB, c.Params("slug"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, dish, "OK")
}

func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var count int64
	h.DB.Model(&model.Category{}).Where("name = ?", input.Name).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.CATEGORY_NAME_EXISTS, nil)
	}

	category := model.Category{
		Name:        input.Name,
		Slug:        helper.GenerateUniqueCategorySlug(h.DB, input.Name),
		Description: input.Description,
		IsActive:    true,
	}
	if err := h.DB.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CATEGORY_NAME_EXISTS, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	logrus.Infof("category %s created", category.Slug)

	return utils.SuccessResponse(c, fiber.StatusCreated, category, "Category created.")
}

func (h *Handler) EditCategory(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("inputEditCategory").(model.EditCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	category, err := helper.GetCategoryById(h.DB, uint(id))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	renamed := input.Name != nil && *input.Name != category.Name
	if renamed {
		var count int64
		h.DB.Model(&model.Category{}).Where("name = ? AND id <> ?", *input.Name, category.ID).Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CATEGORY_NAME_EXISTS, nil)
		}
	}

	if err := copier.CopyWithOption(category, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	if renamed {
		category.Slug = helper.GenerateUniqueCategorySlug(h.DB, category.Name)
	}

	if err := h.DB.Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CATEGORY_NAME_EXISTS, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category, "Category updated.")
}

func (h *Handler) CreateDish(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateDish").(model.CreateDishInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if _, err := helper.GetCategoryById(h.DB, input.CategoryID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	tags, err := tagsJSON(input.Tags)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	dish := model.Dish{
		Name:         input.Name,
		Slug:         helper.GenerateUniqueDishSlug(h.DB, input.Name),
		Description:  input.Description,
		Price:        input.Price,
		CategoryID:   input.CategoryID,
		IsVegetarian: input.IsVegetarian,
		IsAvailable:  true,
		Tags:         tags,
	}
	if input.ImageURL != "" {
		dish.ImageURL = &input.ImageURL
	}

	if err := h.DB.Create(&dish).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	logrus.Infof("dish %s created", dish.Slug)

	created, err := helper.GetDishById(h.DB, dish.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created, "Dish created.")
}

func (h *Handler) EditDish(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("inputEditDish").(model.EditDishInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	dish, err := helper.GetDishById(h.DB, uint(id))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if input.CategoryID != nil && *input.CategoryID != dish.CategoryID {
		if _, err := helper.GetCategoryById(h.DB, *input.CategoryID); err != nil {
			return utils.AppErrorResponse(c, err)
		}
	}

	renamed := input.Name != nil && *input.Name != dish.Name

	// Tags need the JSON conversion, keep them away from the struct copy
	tags := input.Tags
	input.Tags = nil
	if err := copier.CopyWithOption(dish, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	if tags != nil {
		converted, err := tagsJSON(*tags)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}
		dish.Tags = converted
	}
	if renamed {
		dish.Slug = helper.GenerateUniqueDishSlug(h.DB, dish.Name)
	}

	dish.Category = nil
	if err := h.DB.Save(dish).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	updated, err := helper.GetDishById(h.DB, dish.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated, "Dish updated.")
}

// ToggleDishAvailability flips the available flag, hiding or restoring the
// dish on the public menu.
func (h *Handler) ToggleDishAvailability(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	dish, err := helper.GetDishById(h.DB, uint(id))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.DB.Model(&model.Dish{}).Where("id = ?", dish.ID).
		Update("is_available", !dish.IsAvailable).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	dish.IsAvailable = !dish.IsAvailable

	return utils.SuccessResponse(c, fiber.StatusOK, dish, "Dish availability updated.")
}

// AdminListCategories includes inactive categories.
func (h *Handler) AdminListCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := h.DB.Order("name").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories, "OK")
}

// AdminListDishes includes unavailable dishes and supports the full filter.
func (h *Handler) AdminListDishes(c *fiber.Ctx) error {
	filter := new(model.FilterDish)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	query := h.DB.Model(&model.Dish{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Vegetarian != nil {
		query = query.Where("is_vegetarian = ?", *filter.Vegetarian)
	}
	if filter.Available != nil {
		query = query.Where("is_available = ?", *filter.Available)
	}
	if filter.SearchKey != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
	}

	var total int64
	query.Count(&total)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var dishes model.Dishes
	if err := query.Preload("Category").Order("name").Find(&dishes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	response := &model.ResponseCustom{
		Rows:       dishes,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response, "OK")
}
