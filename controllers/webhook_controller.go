package controllers

import (
	"net/http"

	"ShopOrder/services"
	"ShopOrder/utils"

	"github.com/gin-gonic/gin"
)

type WebhookController struct {
	WebhookService *services.WebhookService
}

func NewWebhookController(webhookService *services.WebhookService) *WebhookController {
	return &WebhookController{WebhookService: webhookService}
}

// Receive handles LINE webhook deliveries. The signature is checked against
// the body exactly as received.
func (h *WebhookController) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		fail(c, "Failed to read body", err)
		return
	}
	if err := h.WebhookService.Handle(c.Request.Context(), body, c.GetHeader(services.SignatureHeader)); err != nil {
		fail(c, "Failed to handle webhook", err)
		return
	}
	utils.OKResponse(c, http.StatusOK, nil)
}
