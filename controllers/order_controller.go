package controllers

import (
	"net/http"

	"ShopOrder/models"
	"ShopOrder/services"
	"ShopOrder/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	OrderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{OrderService: orderService}
}

func (h *OrderController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		badRequest(c, "Invalid order format", err)
		return
	}
	if err := h.OrderService.Submit(c.Request.Context(), order); err != nil {
		fail(c, "Failed to send order", err)
		return
	}
	utils.OKResponse(c, http.StatusOK, nil)
}

// SendToLine pushes an order text that the front end already formatted.
func (h *OrderController) SendToLine(c *gin.Context) {
	var req models.RawOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "order text is required", err)
		return
	}
	if err := h.OrderService.Forward(c.Request.Context(), req.Order); err != nil {
		fail(c, "Failed to send order", err)
		return
	}
	utils.OKResponse(c, http.StatusOK, nil)
}
