package handlers

import (
	"ShopOrder/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMenuRoutes(router *gin.RouterGroup, menuController *controllers.MenuController) {
	router.GET("/menu", menuController.GetMenu)
}
