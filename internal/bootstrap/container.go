package bootstrap

import (
	"context"
	"path/filepath"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/config"
	"github.com/goodwellmafunga/skills-assessment/internal/controller"
	"github.com/goodwellmafunga/skills-assessment/internal/handler"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/serverutils"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/memory"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/unitofwork"
	"github.com/goodwellmafunga/skills-assessment/internal/service"
	"github.com/goodwellmafunga/skills-assessment/internal/websocket"
	"github.com/goodwellmafunga/skills-assessment/pkg/admin/dashboard"
	"github.com/goodwellmafunga/skills-assessment/pkg/events"
	"github.com/goodwellmafunga/skills-assessment/pkg/lock"
	pktNats "github.com/goodwellmafunga/skills-assessment/pkg/nats"
	"github.com/goodwellmafunga/skills-assessment/pkg/telegram"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	ChatController       controller.IChatController
	QuestionController   controller.IQuestionController
	AssessmentController controller.IAssessmentController
	DashboardController  controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	OutboxRelay       service.IOutboxRelayService
	DashboardConsumer service.IDashboardConsumerService

	// WebSockets
	DashboardHandler *handler.DashboardHandler
	WebSocketHub     *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	c := &Container{}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)
	c.Logger = sysLogger
	jwt := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: int64(cfg.Outbox.BatchSize)},
		watermill.NopLogger{},
	)
	c.closers = append(c.closers, func() { pubSub.Close() })
	publishers := []events.Publisher{events.NewChannelPublisher(pubSub, cfg.Outbox.Topic)}

	// 3. Infrastructure, all optional
	// NATS
	if cfg.App.NatsURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		natsPub, err := pktNats.NewPublisher(ctx, cfg.App.NatsURL)
		cancel()
		if err != nil {
			sysLogger.Warn("BOOT", "Failed to connect to NATS, outbox stays in-process", map[string]interface{}{"error": err.Error()})
		} else {
			publishers = append(publishers, natsPub)
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// Redis
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("BOOT", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			sysLogger.Warn("BOOT", "Failed to connect to Redis, using in-process locks", map[string]interface{}{"error": err.Error()})
			rdb.Close()
			rdb = nil
		} else {
			c.closers = append(c.closers, func() { rdb.Close() })
		}
	}

	lockOpts := lock.Options{TTL: cfg.Chat.LockTTL, Wait: cfg.Chat.LockWait}
	var locker lock.Locker = lock.NewMemoryLocker(lockOpts)
	var hubRedis redis.UniversalClient
	if rdb != nil {
		locker = lock.NewRedisLocker(rdb, "lock:", lockOpts)
		hubRedis = rdb
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "websocket.log"))
	wsHub := websocket.NewHub(hubRedis, cfg.Hub.RedisChannel, cfg.Hub.MaxClients, wsLogger)
	c.WebSocketHub = wsHub

	// Telegram
	var sender telegram.Sender
	if cfg.Telegram.BotToken != "" {
		sender = telegram.NewClient(cfg.Telegram.APIBaseURL, cfg.Telegram.BotToken, cfg.Telegram.SendTimeout)
	} else {
		sysLogger.Warn("BOOT", "TELEGRAM_BOT_TOKEN not set, Telegram replies are disabled", nil)
	}

	// 4. Services
	dashboardAggregator := dashboard.NewAggregator(sysLogger)

	conversationService := service.NewConversationService(uowFactory, locker, chatLogger, cfg.Chat.MaxRetries)
	questionService := service.NewQuestionService(uowFactory)
	assessmentService := service.NewAssessmentService(uowFactory, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory, sysLogger, dashboardAggregator)
	exportService := service.NewExportService(uowFactory, sysLogger, dashboardAggregator)
	authService := service.NewAuthService(uowFactory, cfg.Auth, sysLogger)

	c.OutboxRelay = service.NewOutboxRelayService(uowFactory, publishers, sysLogger, cfg.Outbox.Interval, cfg.Outbox.BatchSize)
	c.DashboardConsumer = service.NewDashboardConsumerService(pubSub, cfg.Outbox.Topic, wsHub, wsLogger)

	// 5. Controllers
	c.AuthController = controller.NewAuthController(authService, jwt)
	c.ChatController = controller.NewChatController(
		conversationService,
		sender,
		memory.NewUpdateRegistry(cfg.Telegram.DedupWindow),
		cfg.Telegram.WebhookSecret,
		chatLogger,
	)
	c.QuestionController = controller.NewQuestionController(questionService, jwt)
	c.AssessmentController = controller.NewAssessmentController(assessmentService, jwt)
	c.DashboardController = controller.NewDashboardController(dashboardService, exportService, jwt)
	c.DashboardHandler = handler.NewDashboardHandler(wsHub, cfg.Auth.JwtSecret, wsLogger)

	return c
}

// Start launches the hub, the dashboard consumer and the outbox relay. They
// stop when ctx is done.
func (c *Container) Start(ctx context.Context) error {
	if err := c.WebSocketHub.Start(ctx); err != nil {
		return err
	}
	if err := c.DashboardConsumer.Consume(ctx); err != nil {
		return err
	}
	go c.OutboxRelay.Run(ctx)
	return nil
}

// Close releases broker and cache connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.Logger.Sync()
}
