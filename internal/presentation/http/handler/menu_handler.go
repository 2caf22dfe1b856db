package handler

import (
	"github.com/chaatcart/kiosk-api/internal/application/service"
	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/chaatcart/kiosk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MenuHandler handles menu HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListPublic handles the kiosk menu listing. Unavailable items are hidden.
func (h *MenuHandler) ListPublic(c *gin.Context) {
	items, err := h.menuService.ListMenu(c.Request.Context(), true)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved successfully", items)
}

// ListAdmin handles the admin menu listing including unavailable items
func (h *MenuHandler) ListAdmin(c *gin.Context) {
	items, err := h.menuService.ListMenu(c.Request.Context(), false)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved successfully", items)
}

type menuOptionRequest struct {
	Name  string  `json:"name" binding:"required"`
	Extra float64 `json:"extra"`
}

// Create handles adding a menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req struct {
		Name      string              `json:"name" binding:"required"`
		Category  string              `json:"category"`
		Price     *float64            `json:"price" binding:"required"`
		Options   []menuOptionRequest `json:"options"`
		Available *bool               `json:"available"`
		SortOrder int                 `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	options := make([]entity.MenuOption, 0, len(req.Options))
	for _, o := range req.Options {
		options = append(options, entity.MenuOption{Name: o.Name, Extra: o.Extra})
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Name:      req.Name,
		Category:  req.Category,
		Price:     *req.Price,
		Options:   options,
		Available: available,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// Update handles a partial menu item patch
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req struct {
		Name      *string              `json:"name"`
		Category  *string              `json:"category"`
		Price     *float64             `json:"price"`
		Options   *[]menuOptionRequest `json:"options"`
		Available *bool                `json:"available"`
		SortOrder *int                 `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateItemInput{
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Available: req.Available,
		SortOrder: req.SortOrder,
	}
	if req.Options != nil {
		options := make([]entity.MenuOption, 0, len(*req.Options))
		for _, o := range *req.Options {
			options = append(options, entity.MenuOption{Name: o.Name, Extra: o.Extra})
		}
		input.Options = &options
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// Delete handles removing a menu item
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item deleted successfully", nil)
}
