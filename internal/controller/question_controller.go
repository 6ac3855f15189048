package controller

import (
	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/serverutils"
	"github.com/goodwellmafunga/skills-assessment/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type questionController struct {
	service service.IQuestionService
	jwt     *serverutils.JwtMiddleware
}

func NewQuestionController(service service.IQuestionService, jwt *serverutils.JwtMiddleware) IQuestionController {
	return &questionController{service: service, jwt: jwt}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/questions")
	h.Get("/", c.List)
	h.Post("/", c.jwt.Admin, c.Create)
}

func (c *questionController) List(ctx *fiber.Ctx) error {
	var req dto.ListQuestionsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.BadBody(err)
	}

	res, err := c.service.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Questions retrieved", res))
}

func (c *questionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadBody(err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Question created", res))
}
