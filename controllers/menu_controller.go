package controllers

import (
	"net/http"

	"ShopOrder/services"
	"ShopOrder/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	MenuService *services.MenuService
}

func NewMenuController(menuService *services.MenuService) *MenuController {
	return &MenuController{MenuService: menuService}
}

func (h *MenuController) GetMenu(c *gin.Context) {
	menu, err := h.MenuService.GetMenu(c.Request.Context())
	if err != nil {
		fail(c, "Failed to load menu", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, menu)
}
