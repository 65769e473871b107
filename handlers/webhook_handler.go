package handlers

import (
	"ShopOrder/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterWebhookRoutes(router *gin.RouterGroup, webhookController *controllers.WebhookController) {
	router.POST("/webhook", webhookController.Receive)
}
