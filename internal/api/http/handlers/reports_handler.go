package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campuslink/community-service/internal/api/dto"
	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/repository"
	"github.com/campuslink/community-service/internal/service"
)

// ReportsHandler exposes report filing for members and the moderation queue
// for staff.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Create handles POST /api/v1/reports.
func (h *ReportsHandler) Create(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	report, err := h.reports.File(c.Context(), actor, req.TargetType, req.TargetID, req.Reason)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK("report filed", dto.NewReportResponse(report)))
}

// List handles GET /api/v1/admin/reports.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	page, pageSize, offset := pageParams(c)

	filter := repository.ReportFilter{Limit: pageSize, Offset: offset}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.ReportStatus(statusStr)
		filter.Status = &status
	}
	if targetStr := c.Query("targetType"); targetStr != "" {
		target := domain.ReportTargetType(targetStr)
		filter.TargetType = &target
	}

	reports, total, err := h.reports.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("reports", dto.NewPage(dto.NewReportResponses(reports), page, pageSize, total)))
}

// Resolve handles PUT /api/v1/admin/reports/:reportId/status.
func (h *ReportsHandler) Resolve(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "reportId")
	if err != nil {
		return err
	}
	var req dto.ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	report, err := h.reports.Resolve(c.Context(), actor, id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("report updated", dto.NewReportResponse(report)))
}
