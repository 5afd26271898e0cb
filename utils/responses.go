package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

func Created(c *gin.Context, data interface{}) {
	Success(c, http.StatusCreated, data)
}

// Error renders the typed error envelope. Non-readable and unexpected errors are
// logged and replaced with a generic internal message.
func Error(c *gin.Context, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = NewInternalError(err.Error())
	}

	status := apiErr.Status
	message := apiErr.Message
	if !apiErr.Readable {
		log.Printf("internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "Something went wrong"
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   ErrorBody{Code: apiErr.Code, Message: message},
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, NewValidationError(message))
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, NewUnauthorizedError(message))
}
