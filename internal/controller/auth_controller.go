package controller

import (
	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/serverutils"
	"github.com/goodwellmafunga/skills-assessment/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	VerifyTwoFALogin(ctx *fiber.Ctx) error
	SetupTwoFA(ctx *fiber.Ctx) error
	EnableTwoFA(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	jwt     *serverutils.JwtMiddleware
}

func NewAuthController(service service.IAuthService, jwt *serverutils.JwtMiddleware) IAuthController {
	return &authController{service: service, jwt: jwt}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/signup", c.Signup)
	h.Post("/login", c.Login)
	h.Post("/2fa/verify-login", c.VerifyTwoFALogin)
	h.Post("/2fa/setup", c.jwt.Required, c.SetupTwoFA)
	h.Post("/2fa/enable", c.jwt.Required, c.EnableTwoFA)
	h.Get("/me", c.jwt.Required, c.Me)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadBody(err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Signup(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("User registered", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadBody(err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login step completed", res))
}

func (c *authController) VerifyTwoFALogin(ctx *fiber.Ctx) error {
	var req dto.TwoFAVerifyLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadBody(err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.VerifyTwoFALogin(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) SetupTwoFA(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserID(ctx)
	if !ok {
		return apperror.Unauthorized("Unauthorized")
	}

	res, err := c.service.SetupTwoFA(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("2FA secret generated", res))
}

func (c *authController) EnableTwoFA(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserID(ctx)
	if !ok {
		return apperror.Unauthorized("Unauthorized")
	}

	var req dto.TwoFAEnableRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadBody(err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.service.EnableTwoFA(ctx.UserContext(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("2FA enabled", nil))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserID(ctx)
	if !ok {
		return apperror.Unauthorized("Unauthorized")
	}

	res, err := c.service.Me(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User retrieved", res))
}
