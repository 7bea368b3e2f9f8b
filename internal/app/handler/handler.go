package handler

import (
	"net/http"

	"revenue/internal/app/apperr"
	"revenue/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Вспомогательные функции ============

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// handleError выбирает статус по классу ошибки; внутренние ошибки наружу не отдаются
func handleError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logrus.WithField("path", c.FullPath()).Error(err)
		errorResponse(c, status, "internal server error")
		return
	}
	errorResponse(c, status, err.Error())
}

func bindError(c *gin.Context, err error) {
	errorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
}
