package middleware

import (
	"errors"
	"net/http"

	"ShopOrder/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware renders the last error a handler attached with c.Error.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			details := ""
			if customErr.Err != nil {
				details = customErr.Err.Error()
			}
			if customErr.StatusCode >= http.StatusInternalServerError {
				log.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
			}
			utils.ErrorDetailsResponse(c, customErr.StatusCode, customErr.Message, details)
			return
		}

		log.Ctx(c.Request.Context()).Error().Err(err).Msg("unhandled error")
		utils.ErrorDetailsResponse(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
