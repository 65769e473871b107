package controllers

import (
	"net/http"

	"ShopOrder/models"
	"ShopOrder/services"
	"ShopOrder/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService *services.SettingsService
}

func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: settingsService}
}

func (h *SettingsController) GetInterval(c *gin.Context) {
	interval, err := h.SettingsService.ReadInterval(c.Request.Context())
	if err != nil {
		fail(c, "Failed to read interval", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, gin.H{"interval": interval})
}

func (h *SettingsController) UpdateInterval(c *gin.Context) {
	var req models.IntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "interval must be a non-negative integer", err)
		return
	}
	if err := h.SettingsService.WriteInterval(c.Request.Context(), *req.Interval); err != nil {
		fail(c, "Failed to update interval", err)
		return
	}
	utils.OKResponse(c, http.StatusOK, gin.H{"interval": *req.Interval})
}

func (h *SettingsController) GetOpen(c *gin.Context) {
	opened, err := h.SettingsService.ReadOpenFlag(c.Request.Context())
	if err != nil {
		fail(c, "Failed to read open flag", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, gin.H{"opened": opened})
}

func (h *SettingsController) UpdateOpen(c *gin.Context) {
	var req models.OpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "opened must be a boolean", err)
		return
	}
	if err := h.SettingsService.WriteOpenFlag(c.Request.Context(), *req.Opened); err != nil {
		fail(c, "Failed to update open flag", err)
		return
	}
	utils.OKResponse(c, http.StatusOK, gin.H{"opened": *req.Opened})
}

func (h *SettingsController) GetAdmin(c *gin.Context) {
	userID, err := h.SettingsService.ReadAdmin(c.Request.Context())
	if err != nil {
		fail(c, "Failed to read admin", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, gin.H{"userId": userID})
}
