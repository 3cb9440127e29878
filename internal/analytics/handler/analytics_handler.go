package handler

import (
	"github.com/HariharanVicky/user-management-service/internal/analytics"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	analyticsService *analytics.Service
}

func NewAnalyticsHandler(analyticsService *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.analyticsService.Dashboard(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(d)
}

func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	return h.section(c, func(d *analytics.Dashboard) any { return d.Overview })
}

func (h *AnalyticsHandler) Roles(c *fiber.Ctx) error {
	return h.section(c, func(d *analytics.Dashboard) any { return d.Roles })
}

func (h *AnalyticsHandler) Activity(c *fiber.Ctx) error {
	return h.section(c, func(d *analytics.Dashboard) any { return d.Activity })
}

func (h *AnalyticsHandler) Geographic(c *fiber.Ctx) error {
	return h.section(c, func(d *analytics.Dashboard) any { return d.Geographic })
}

func (h *AnalyticsHandler) Engagement(c *fiber.Ctx) error {
	return h.section(c, func(d *analytics.Dashboard) any { return d.Engagement })
}

func (h *AnalyticsHandler) Retention(c *fiber.Ctx) error {
	return h.section(c, func(d *analytics.Dashboard) any { return d.Retention })
}

func (h *AnalyticsHandler) GrowthTrends(c *fiber.Ctx) error {
	return h.section(c, func(d *analytics.Dashboard) any { return d.GrowthTrends })
}

func (h *AnalyticsHandler) Performance(c *fiber.Ctx) error {
	return h.section(c, func(d *analytics.Dashboard) any { return d.Performance })
}

func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	d, err := h.analyticsService.Dashboard(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"totalUsers":     d.Overview.TotalUsers,
		"activeUsers":    d.Overview.ActiveUsers,
		"mostCommonRole": d.Roles.MostCommonRole,
		"churnRate":      d.Retention.ChurnRate,
		"generatedAt":    d.GeneratedAt,
	})
}

func (h *AnalyticsHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", "json")

	export, err := h.analyticsService.ExportData(c.Context(), format)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(export)
}

func (h *AnalyticsHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "UP",
		"service": "user-analytics",
	})
}

func (h *AnalyticsHandler) section(c *fiber.Ctx, pick func(*analytics.Dashboard) any) error {
	d, err := h.analyticsService.Dashboard(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(pick(d))
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
