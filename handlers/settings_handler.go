package handlers

import (
	"ShopOrder/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterSettingsRoutes sets up the settings routes. adminAuth guards the writes.
func RegisterSettingsRoutes(router *gin.RouterGroup, settingsController *controllers.SettingsController, adminAuth gin.HandlerFunc) {
	settingsGroup := router.Group("/settings")
	{
		settingsGroup.GET("/time", settingsController.GetInterval)
		settingsGroup.POST("/time", adminAuth, settingsController.UpdateInterval)
		settingsGroup.GET("/open", settingsController.GetOpen)
		settingsGroup.POST("/open", adminAuth, settingsController.UpdateOpen)
		settingsGroup.GET("/admin", adminAuth, settingsController.GetAdmin)
	}
}
