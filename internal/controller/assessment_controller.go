package controller

import (
	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/serverutils"
	"github.com/goodwellmafunga/skills-assessment/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type assessmentController struct {
	service service.IAssessmentService
	jwt     *serverutils.JwtMiddleware
}

func NewAssessmentController(service service.IAssessmentService, jwt *serverutils.JwtMiddleware) IAssessmentController {
	return &assessmentController{service: service, jwt: jwt}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assessments")
	h.Post("/submit", c.jwt.Optional, c.Submit)
	h.Get("/:id", c.Show)
}

func (c *assessmentController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitAssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadBody(err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	var userId *uuid.UUID
	if id, ok := serverutils.UserID(ctx); ok {
		userId = &id
	}

	res, err := c.service.Submit(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Assessment submitted", res))
}

func (c *assessmentController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Invalid assessment id")
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Assessment retrieved", res))
}
