package bootstrap

import (
	"context"
	"log"

	"github.com/marcosalmeidaedp/bot-cliente/internal/config"
	"github.com/marcosalmeidaedp/bot-cliente/internal/controller"
	"github.com/marcosalmeidaedp/bot-cliente/internal/handler"
	"github.com/marcosalmeidaedp/bot-cliente/internal/pkg/logger"
	"github.com/marcosalmeidaedp/bot-cliente/internal/repository/contract"
	"github.com/marcosalmeidaedp/bot-cliente/internal/repository/implementation"
	"github.com/marcosalmeidaedp/bot-cliente/internal/repository/memory"
	"github.com/marcosalmeidaedp/bot-cliente/internal/service"
	"github.com/marcosalmeidaedp/bot-cliente/internal/telegram"
	"github.com/marcosalmeidaedp/bot-cliente/internal/websocket"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/database"
	pktNats "github.com/marcosalmeidaedp/bot-cliente/pkg/nats"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/search"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"
)

const auditTopicName = "AUDIT_QUERY_PERFORMED"

type Container struct {
	// Controllers
	WebhookController controller.IWebhookController
	OpsController     controller.IOpsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & ops streaming
	AuditStreamHandler *handler.AuditStreamHandler
	WebSocketHub       *websocket.Hub

	// Shared infrastructure
	Logger  logger.ILogger
	Records *store.RecordStore
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Record Store (fatal on any source/schema problem: the bot must
	// not serve without a complete dataset)
	var customerRepo contract.ICustomerRepository
	if cfg.Records.DBConnection != "" {
		gormDB, err := database.NewGormDBFromDSN(cfg.Records.DBConnection)
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to records database: %v", err)
		}
		customerRepo = implementation.NewGormCustomerRepository(gormDB)
	} else {
		customerRepo = implementation.NewExcelCustomerRepository(cfg.Records.ExcelFile)
	}

	customers, err := customerRepo.Load(context.Background())
	if err != nil {
		log.Fatalf("[FATAL] Failed to load customer records: %v", err)
	}
	records := store.New(customers, customerRepo.Source())
	sysLogger.Info("Bootstrap", "Customer records loaded", map[string]interface{}{
		"records": records.Len(),
		"source":  records.Source(),
	})

	engine := search.NewEngine(records)

	// 3. Session storage
	sessionRepo := memory.NewSessionRepository()

	// 4. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 5. Redis (optional, cross-instance ops streaming)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Invalid REDIS_URL, running single-instance", map[string]interface{}{"error": err.Error()})
		} else {
			rdb = redis.NewClient(opt)
		}
	}

	hub := websocket.NewHub(rdb, sysLogger)

	// 6. NATS mirror (optional, warn-only)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect NATS publisher", map[string]interface{}{"error": err.Error()})
			natsPub = nil
		}
	}

	// 7. Audit pipeline
	auditWriter := &lumberjack.Logger{
		Filename:   cfg.App.AuditLogPath,
		MaxSize:    10, // Megabytes
		MaxBackups: 10,
		MaxAge:     90, // Days
		Compress:   true,
	}
	auditService := service.NewAuditService(pubSub, auditTopicName, sysLogger)
	consumerService := service.NewConsumerService(pubSub, auditTopicName, auditWriter, natsPub, hub, sysLogger)

	// 8. Telegram transport
	responder, err := telegram.NewResponder(cfg.Telegram.BotToken, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Telegram bot: %v", err)
	}
	if cfg.Telegram.WebhookBaseURL != "" {
		if err := responder.RegisterWebhook(cfg.Telegram.WebhookBaseURL + cfg.Telegram.WebhookPath); err != nil {
			sysLogger.Warn("Bootstrap", "Webhook registration failed", map[string]interface{}{"error": err.Error()})
		}
	}

	// 9. Dialogue core
	dialogService := service.NewDialogService(sessionRepo, engine, responder, auditService, sysLogger)

	// 10. Controllers
	webhookController := controller.NewWebhookController(dialogService, responder, sysLogger)
	authService := service.NewAuthService(cfg)
	opsController := controller.NewOpsController(authService, records, sessionRepo, sysLogger)
	auditStreamHandler := handler.NewAuditStreamHandler(hub, sysLogger)

	return &Container{
		WebhookController:  webhookController,
		OpsController:      opsController,
		ConsumerService:    consumerService,
		AuditStreamHandler: auditStreamHandler,
		WebSocketHub:       hub,
		Logger:             sysLogger,
		Records:            records,
	}
}
