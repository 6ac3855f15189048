package controller

import (
	"crypto/subtle"
	"strconv"

	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/serverutils"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/memory"
	"github.com/goodwellmafunga/skills-assessment/internal/service"
	"github.com/goodwellmafunga/skills-assessment/pkg/telegram"

	"github.com/gofiber/fiber/v2"
)

const telegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	TelegramWebhook(ctx *fiber.Ctx) error
	WebMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	service       service.IConversationService
	sender        telegram.Sender
	updates       *memory.UpdateRegistry
	webhookSecret string
	logger        logger.ILogger
}

// NewChatController wires the chat engine to its transports. sender may be
// nil when no bot token is configured; replies are then only logged.
func NewChatController(
	service service.IConversationService,
	sender telegram.Sender,
	updates *memory.UpdateRegistry,
	webhookSecret string,
	log logger.ILogger,
) IChatController {
	return &chatController{
		service:       service,
		sender:        sender,
		updates:       updates,
		webhookSecret: webhookSecret,
		logger:        log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/webhooks/telegram", c.TelegramWebhook)
	r.Post("/chat/messages", c.WebMessage)
}

// TelegramWebhook always acknowledges accepted updates with 200 so Telegram
// does not redeliver them; failures surface to the user as chat replies.
func (c *chatController) TelegramWebhook(ctx *fiber.Ctx) error {
	if c.webhookSecret != "" {
		got := ctx.Get(telegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(c.webhookSecret)) != 1 {
			return apperror.Unauthorized("Invalid webhook secret")
		}
	}

	var update telegram.Update
	if err := ctx.BodyParser(&update); err != nil {
		return serverutils.BadBody(err)
	}

	msg := update.Message
	if msg == nil || msg.From == nil {
		return ctx.JSON(serverutils.SuccessResponse[any]("Ignored", nil))
	}

	if !c.updates.MarkSeen(entity.ChatChannelTelegram, update.UpdateId) {
		c.logger.Info("TELEGRAM", "Duplicate update ignored", map[string]interface{}{"update_id": update.UpdateId})
		return ctx.JSON(serverutils.SuccessResponse[any]("Duplicate", nil))
	}

	userId := strconv.FormatInt(msg.From.Id, 10)
	c.logger.Info("TELEGRAM", "Inbound message", map[string]interface{}{
		"update_id": update.UpdateId, "user": userId, "text": msg.Text,
	})

	reply := c.service.Handle(ctx.UserContext(), entity.ChatChannelTelegram, userId, msg.Text)

	if c.sender == nil {
		c.logger.Warn("TELEGRAM", "No bot token configured, reply not sent", map[string]interface{}{"user": userId})
	} else if err := c.sender.SendMessage(ctx.UserContext(), msg.Chat.Id, reply); err != nil {
		c.logger.Error("TELEGRAM", "Failed to send reply", map[string]interface{}{
			"chat_id": msg.Chat.Id, "error": err.Error(),
		})
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}

func (c *chatController) WebMessage(ctx *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadBody(err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	reply := c.service.Handle(ctx.UserContext(), entity.ChatChannelWeb, req.UserId, req.Text)
	return ctx.JSON(serverutils.SuccessResponse("Reply", dto.ChatMessageResponse{Reply: reply}))
}
