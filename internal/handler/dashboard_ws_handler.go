package handler

import (
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/serverutils"
	internalWS "github.com/goodwellmafunga/skills-assessment/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// DashboardHandler upgrades authenticated admin connections onto the hub.
type DashboardHandler struct {
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewDashboardHandler(hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *DashboardHandler {
	return &DashboardHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

// ServeWs checks the token before the upgrade. Browsers cannot set headers
// on a WebSocket handshake, so the "token" query parameter is accepted too.
func (h *DashboardHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := serverutils.BearerToken(c)
	if tokenStr == "" {
		return apperror.Unauthorized("Missing token (Query 'token' or Header 'Authorization')")
	}

	claims, err := serverutils.ParseToken(h.jwtSecret, tokenStr, serverutils.TokenTypeAccess)
	if err != nil {
		h.logger.Warn("DashboardHandler", "Invalid token in WS handshake", nil)
		return err
	}
	if claims.Role != string(entity.UserRoleAdmin) {
		return apperror.Forbidden("Admin access required")
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	userID := claims.UserID
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("DashboardHandler", "WebSocket session started", map[string]interface{}{"user_id": userID})
		internalWS.ServeWs(h.hub, conn, userID)
		h.logger.Info("DashboardHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
	})(c)
}

func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/dashboard", h.ServeWs)
}
