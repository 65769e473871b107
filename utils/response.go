package utils

import "github.com/gin-gonic/gin"

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse writes data as the JSON body.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// OKResponse writes {"success": true} merged with extra fields.
func OKResponse(c *gin.Context, statusCode int, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	ErrorDetailsResponse(c, statusCode, message, "")
}

func ErrorDetailsResponse(c *gin.Context, statusCode int, message, details string) {
	c.AbortWithStatusJSON(statusCode, errorBody{Success: false, Error: message, Details: details})
}
