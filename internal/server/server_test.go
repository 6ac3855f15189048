package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/bootstrap"
	"github.com/goodwellmafunga/skills-assessment/internal/config"
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/serverutils"
	"github.com/goodwellmafunga/skills-assessment/internal/testutil"
	"github.com/goodwellmafunga/skills-assessment/pkg/conversation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			ChatLogFilePath:    filepath.Join(dir, "chat.log"),
			CorsAllowedOrigins: "http://localhost:5173",
		},
		Auth: config.AuthConfig{
			JwtSecret:      "server-test-secret",
			AccessTokenTTL: time.Hour,
			TempTokenTTL:   time.Minute,
			TotpIssuer:     "SkillsAssessment",
		},
		Telegram: config.TelegramConfig{
			WebhookSecret: "s3cret",
			DedupWindow:   time.Minute,
		},
		Chat:   config.ChatConfig{LockTTL: time.Second, LockWait: time.Second, MaxRetries: 3},
		Outbox: config.OutboxConfig{Interval: time.Second, BatchSize: 10, Topic: "dashboard_events"},
		Hub:    config.HubConfig{MaxClients: 4, RedisChannel: "dashboard_events"},
	}
}

func newTestServer(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.SeedQuestions(t, db, testutil.QuestionSpec{Domain: entity.QuestionDomainSoft, Category: "Communication", DisplayOrder: 1})

	cfg := testConfig(t)
	container := bootstrap.NewContainer(db, cfg)
	t.Cleanup(container.Close)
	return New(cfg, container).GetApp()
}

func decode(t *testing.T, body io.Reader) serverutils.BaseResponse[json.RawMessage] {
	t.Helper()
	var res serverutils.BaseResponse[json.RawMessage]
	require.NoError(t, json.NewDecoder(body).Decode(&res))
	return res
}

func TestHealth(t *testing.T) {
	app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.False(t, body.Success)
	assert.Equal(t, 404, body.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := newTestServer(t)

	for _, path := range []string{"/api/v1/dashboard/summary", "/api/v1/exports/assessments.xlsx", "/api/v1/auth/me"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode, path)
	}
}

func TestListQuestions(t *testing.T) {
	app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/questions?active_only=true", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	var questions []map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &questions))
	assert.Len(t, questions, 1)
}

func TestWebChatFlow(t *testing.T) {
	app := newTestServer(t)

	send := func(text string) string {
		payload, _ := json.Marshal(map[string]string{"user_id": "web-1", "text": text})
		req := httptest.NewRequest("POST", "/api/v1/chat/messages", strings.NewReader(string(payload)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		body := decode(t, resp.Body)
		var out struct {
			Reply string `json:"reply"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &out))
		return out.Reply
	}

	assert.Equal(t, conversation.MsgWelcome, send("hi"))
	assert.Contains(t, send("READY"), "Q1/1")
	assert.Equal(t, conversation.MsgNeedChoice, send("maybe"))
}

func TestTelegramWebhookSecret(t *testing.T) {
	app := newTestServer(t)
	update := `{"update_id":1,"message":{"message_id":1,"from":{"id":7},"chat":{"id":7},"text":"hi"}}`

	req := httptest.NewRequest("POST", "/api/v1/webhooks/telegram", strings.NewReader(update))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("POST", "/api/v1/webhooks/telegram", strings.NewReader(update))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "s3cret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
