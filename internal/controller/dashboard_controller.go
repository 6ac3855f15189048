package controller

import (
	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/serverutils"
	"github.com/goodwellmafunga/skills-assessment/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Summary(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
	LogDetail(ctx *fiber.Ctx) error
	ExportAssessments(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service       service.IDashboardService
	exportService service.IExportService
	jwt           *serverutils.JwtMiddleware
}

func NewDashboardController(
	service service.IDashboardService,
	exportService service.IExportService,
	jwt *serverutils.JwtMiddleware,
) IDashboardController {
	return &dashboardController{
		service:       service,
		exportService: exportService,
		jwt:           jwt,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard", c.jwt.Admin)
	h.Get("/summary", c.Summary)
	h.Get("/logs", c.Logs)
	h.Get("/logs/:id", c.LogDetail)

	e := r.Group("/exports", c.jwt.Admin)
	e.Get("/assessments.xlsx", c.ExportAssessments)
}

func (c *dashboardController) Summary(ctx *fiber.Ctx) error {
	res, err := c.service.GetSummary(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard summary", res))
}

func (c *dashboardController) Logs(ctx *fiber.Ctx) error {
	var req dto.LogListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.BadBody(err)
	}

	res, err := c.service.GetLogs(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs retrieved", res))
}

func (c *dashboardController) LogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogDetail(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Log retrieved", res))
}

func (c *dashboardController) ExportAssessments(ctx *fiber.Ctx) error {
	data, err := c.exportService.AssessmentsWorkbook(ctx.UserContext())
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, service.ExportContentType)
	ctx.Attachment(service.ExportFileName)
	return ctx.Send(data)
}
