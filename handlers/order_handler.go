package handlers

import (
	"ShopOrder/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterOrderRoutes(router *gin.RouterGroup, orderController *controllers.OrderController) {
	router.POST("/orders", orderController.CreateOrder)
	router.POST("/api/send-to-line", orderController.SendToLine)
}
