package response

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"buy-me-a-coffee/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request ID middleware sets.
const RequestIDKey = "request_id"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:      data,
		RequestID: RequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// PNG sends a 200 image/png response that clients may cache for maxAge.
func PNG(c *gin.Context, img []byte, maxAge time.Duration) {
	if maxAge > 0 {
		c.Header("Cache-Control", "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
	}
	c.Data(http.StatusOK, "image/png", img)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
			RequestID: RequestID(c),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: RequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// RequestID retrieves the request ID from context, or generates one.
func RequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if s, ok := id.(string); ok && s != "" {
			return s
		}
	}
	return uuid.New().String()
}
