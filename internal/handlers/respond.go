package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"artcurator/internal/common"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes so the client never has to parse messages.
const (
	codeBadRequest   = "bad_request"
	codeUnauthorized = "unauthorized"
	codeNotFound     = "not_found"
	codeConflict     = "conflict"
	codeGalleryFull  = "gallery_full"
	codeUpstream     = "upstream_unavailable"
	codeInternal     = "internal"
)

func errorBody(code, message string) gin.H {
	return gin.H{"error": message, "code": code}
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest, codeBadRequest
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized, codeUnauthorized
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, common.ErrGalleryFull):
		return http.StatusConflict, codeGalleryFull
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict, codeConflict
	case errors.Is(err, common.ErrUpstreamUnavailable):
		return http.StatusBadGateway, codeUpstream
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

// respondError maps a domain error to a structured JSON error response.
// Server-side failures are logged with full detail but surfaced generically.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	status, code := classify(err)

	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		if h.log != nil {
			h.log.Errorw(logKey, append([]interface{}{"err", err}, kv...)...)
		}
		msg = "internal server error"
	case http.StatusBadGateway:
		if h.log != nil {
			h.log.Errorw(logKey, append([]interface{}{"err", err}, kv...)...)
		}
		msg = "museum catalog unavailable"
	default:
		if h.log != nil {
			h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
		}
	}

	c.JSON(status, errorBody(code, msg))
}

// pathInt parses a numeric path parameter, answering 400 itself on failure.
func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(codeBadRequest, fmt.Sprintf("%s must be an integer", name)))
		return 0, false
	}
	return v, true
}
