package report

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

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
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

func actor(c *gin.Context) (uint, bool) {
	return c.GetUint(middleware.KeySalesPersonID), c.GetBool(middleware.KeyIsManager)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create report validation failed", zap.Error(err))
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	actorID, _ := actor(c)
	resp, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) List(c *gin.Context) {
	var q ListReportsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http list reports validation failed", zap.Error(err))
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}

	actorID, isManager := actor(c)
	items, total, err := h.service.List(c.Request.Context(), actorID, isManager, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Page(c, http.StatusOK, items, response.NewPaginationMeta(total, q.Page, q.PerPage))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}

	actorID, isManager := actor(c)
	resp, err := h.service.GetByID(c.Request.Context(), actorID, isManager, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update report validation failed", zap.Error(err))
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	actorID, _ := actor(c)
	resp, err := h.service.Update(c.Request.Context(), actorID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}

	actorID, _ := actor(c)
	if err := h.service.Delete(c.Request.Context(), actorID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}
