// Package response writes JSON answers and maps service errors to statuses.
package response

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/validation"
	"MiniLearn/pkg/logger"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal server error"

// Detail answers with {"detail": msg}.
func Detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// Error maps err onto a status and a client safe message. Unexpected errors
// are logged and hidden behind a generic 500.
func Error(c *gin.Context, log logger.Log, err error) {
	var integrity *app_errors.IntegrityError

	switch {
	case errors.Is(err, app_errors.ErrValidation):
		Detail(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, app_errors.ErrNotFound):
		Detail(c, http.StatusNotFound, capitalize(err.Error()))
	case errors.Is(err, app_errors.ErrAudioNotFound):
		Detail(c, http.StatusNotFound, "Audio file not found")
	case errors.Is(err, app_errors.ErrMissingAsset):
		Detail(c, http.StatusNotFound, capitalize(err.Error()))
	case errors.As(err, &integrity):
		Detail(c, http.StatusBadRequest, capitalize(integrity.Error()))
	case errors.Is(err, app_errors.ErrIntegrityViolation):
		Detail(c, http.StatusBadRequest, "Integrity error")
	default:
		_ = c.Error(err)
		log.ErrorErr("request failed", err, "method", c.Request.Method, "path", c.FullPath())
		Detail(c, http.StatusInternalServerError, internalErrorMessage)
	}
}

// BindError answers a body that could not be decoded or failed binding rules.
func BindError(c *gin.Context, err error) {
	Detail(c, http.StatusUnprocessableEntity, validation.Message(err))
}

// PathID parses the named path parameter as a positive int64. On failure it
// has already answered 400.
func PathID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		Detail(c, http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return id, true
}

// QueryInt reads an optional integer query parameter.
func QueryInt(c *gin.Context, name string, def int) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		Detail(c, http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return v, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
