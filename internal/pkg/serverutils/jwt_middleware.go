package serverutils

import (
	"errors"
	"strings"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess = "access"
	TokenTypeTemp   = "temp"

	LocalUserID = "user_id"
	LocalRole   = "role"
)

type Claims struct {
	UserID uuid.UUID
	Role   string
	Type   string
}

// IssueToken signs an HS256 token carrying user_id, role and type.
func IssueToken(secret string, c Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": c.UserID.String(),
		"role":    c.Role,
		"type":    c.Type,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature, expiry and the expected token type.
func ParseToken(secret, tokenStr, wantType string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("Invalid token")
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthorized("Invalid claims")
	}

	typ, _ := mc["type"].(string)
	if typ != wantType {
		return nil, apperror.Unauthorized("Invalid token type")
	}

	rawID, _ := mc["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperror.Unauthorized("Token missing user_id")
	}

	role, _ := mc["role"].(string)
	return &Claims{UserID: userID, Role: role, Type: typ}, nil
}

// BearerToken reads the Authorization header, falling back to the "token"
// query parameter used by browser WebSocket clients.
func BearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ctx.Query("token")
}

type JwtMiddleware struct {
	secret string
}

func NewJwtMiddleware(secret string) *JwtMiddleware {
	return &JwtMiddleware{secret: secret}
}

func (m *JwtMiddleware) setLocals(ctx *fiber.Ctx, c *Claims) {
	ctx.Locals(LocalUserID, c.UserID.String())
	ctx.Locals(LocalRole, c.Role)
}

// Required rejects requests without a valid access token.
func (m *JwtMiddleware) Required(ctx *fiber.Ctx) error {
	tokenStr := BearerToken(ctx)
	if tokenStr == "" {
		return apperror.Unauthorized("Missing token")
	}
	claims, err := ParseToken(m.secret, tokenStr, TokenTypeAccess)
	if err != nil {
		return err
	}
	m.setLocals(ctx, claims)
	return ctx.Next()
}

// Admin is Required plus the admin role.
func (m *JwtMiddleware) Admin(ctx *fiber.Ctx) error {
	tokenStr := BearerToken(ctx)
	if tokenStr == "" {
		return apperror.Unauthorized("Missing token")
	}
	claims, err := ParseToken(m.secret, tokenStr, TokenTypeAccess)
	if err != nil {
		return err
	}
	if claims.Role != "admin" {
		return apperror.Forbidden("Admin access required")
	}
	m.setLocals(ctx, claims)
	return ctx.Next()
}

// Optional attaches the user when a valid token is present and otherwise
// lets the request through anonymously.
func (m *JwtMiddleware) Optional(ctx *fiber.Ctx) error {
	if tokenStr := BearerToken(ctx); tokenStr != "" {
		if claims, err := ParseToken(m.secret, tokenStr, TokenTypeAccess); err == nil {
			m.setLocals(ctx, claims)
		}
	}
	return ctx.Next()
}

// UserID returns the authenticated user, if any.
func UserID(ctx *fiber.Ctx) (uuid.UUID, bool) {
	raw, ok := ctx.Locals(LocalUserID).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
