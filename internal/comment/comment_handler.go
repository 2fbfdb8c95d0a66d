package comment

import (
	"net/http"
	"strconv"

	"go-sales-report/internal/middleware"
	reporterrors "go-sales-report/internal/report/errors"
	"go-sales-report/internal/shared/apperror"
	"go-sales-report/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("comment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("comment.handler")
	}
	return &Handler{service: service, logger: l}
}

func parseReportID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.FromError(c, reporterrors.ErrInvalidReportID)
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("comment request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	reportID, ok := parseReportID(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create comment validation failed", zap.Error(err))
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	managerID := c.GetUint(middleware.KeySalesPersonID)
	resp, err := h.service.Create(c.Request.Context(), managerID, reportID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) ListByReport(c *gin.Context) {
	reportID, ok := parseReportID(c)
	if !ok {
		return
	}

	actorID := c.GetUint(middleware.KeySalesPersonID)
	isManager := c.GetBool(middleware.KeyIsManager)
	resp, err := h.service.ListByReport(c.Request.Context(), actorID, isManager, reportID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}
