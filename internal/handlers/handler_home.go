package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kipubooks/kipu-backend/internal/apperrors"
	"github.com/kipubooks/kipu-backend/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// maxUploadBytes bounds any single image upload.
const maxUploadBytes = 10 << 20

// respondError maps service errors to HTTP statuses. Unrecognized errors are
// logged and become an opaque 500.
func respondError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msg})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: msg})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: msg})
	case errors.Is(err, apperrors.ErrUpstreamUnavailable), errors.Is(err, apperrors.ErrMalformedResponse):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: msg})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
	}
}

// readUploadedImage extracts the "image" form file from a multipart request.
func readUploadedImage(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, err
	}
	if fileHeader.Size > maxUploadBytes {
		return nil, errors.New("image exceeds the 10MB upload limit")
	}

	var file multipart.File
	file, err = fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(io.LimitReader(file, maxUploadBytes))
}

// registerHomeRoutes sets up unauthenticated service routes.
func registerHomeRoutes(r *gin.Engine) {
	// Health godoc
	// Liveness probe, also used by the mobile client to detect connectivity.
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}
