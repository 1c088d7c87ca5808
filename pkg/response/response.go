package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careloop/advocates-api/internal/models"
	appErrors "github.com/careloop/advocates-api/pkg/errors"
)

// Envelope represents the common success response contract.
type Envelope struct {
	Data       interface{}            `json:"data,omitempty"`
	Pagination *models.Pagination     `json:"pagination,omitempty"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
}

// ErrorBody is the wire shape for failed requests.
type ErrorBody struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// JSON sends a success response with optional pagination metadata.
func JSON(c *gin.Context, status int, data interface{}, pagination *models.Pagination, meta ...map[string]interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	envelope := Envelope{Data: data, Pagination: pagination}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Plain sends a success payload without the envelope wrapper.
func Plain(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, payload)
}

// Error sends an error response converting the error to the common shape.
// Internal detail is suppressed for 5xx statuses when gin runs in release
// mode so operational failures never leak connection strings or SQL.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")

	body := ErrorBody{
		Error:   appErr.Message,
		Message: appErr.Detail,
		Details: appErr.Details,
	}
	if appErr.Status >= http.StatusInternalServerError {
		if gin.Mode() == gin.ReleaseMode {
			body.Message = ""
		} else if body.Message == "" && appErr.Err != nil {
			body.Message = appErr.Err.Error()
		}
	}

	c.JSON(appErr.Status, body)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
