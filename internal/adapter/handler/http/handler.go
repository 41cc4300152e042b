package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest:   http.StatusBadRequest,
	domain.ErrUnauthorized: http.StatusUnauthorized,

	domain.ErrCatalogMiss:             http.StatusNotFound,
	domain.ErrPaymentInitiationFailed: http.StatusBadGateway,
	domain.ErrInvalidConfirmation:     http.StatusNotFound,
	domain.ErrPaymentPending:          http.StatusAccepted,

	// the order reached FAILED and the user has been told; the redirect itself was handled
	domain.ErrCaptureFailed:  http.StatusOK,
	domain.ErrFetchFailed:    http.StatusOK,
	domain.ErrDeliveryFailed: http.StatusOK,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func statusOf(err error) (int, bool) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, true
		}
	}
	return http.StatusInternalServerError, false
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := statusOf(err)
	if !ok {
		h.logger.Error("aborting request", zap.Error(err))
	}
	_ = ctx.AbortWithError(statusCode, err)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusOf(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.Status(statusCode)
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
