package bootstrap

import (
	"context"
	"log"

	"fleetrent-be/internal/config"
	"fleetrent-be/internal/controller"
	"fleetrent-be/internal/handler"
	"fleetrent-be/internal/pkg/logger"
	"fleetrent-be/internal/pkg/mailer"
	"fleetrent-be/internal/repository/implementation"
	"fleetrent-be/internal/repository/memory"
	"fleetrent-be/internal/repository/unitofwork"
	"fleetrent-be/internal/service"
	"fleetrent-be/internal/websocket"
	"fleetrent-be/pkg/collections"
	"fleetrent-be/pkg/workflow/cancellation"
	workflowEvents "fleetrent-be/pkg/workflow/events"

	pktNats "fleetrent-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// auditTopicName is the in-process pipeline topic for audit entries
const auditTopicName = "WORKFLOW_AUDIT"

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	ContractController    controller.IContractController
	ReturnController      controller.IReturnController
	CollectionsController controller.ICollectionsController
	PaymentController     controller.IPaymentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Audit pipeline
	publisherService := service.NewPublisherService(auditTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		auditTopicName,
		uowFactory,
	)

	// 4. Workflow Domain Components
	eventPublisher := workflowEvents.NewNatsPublisher(natsPub, sysLogger)
	workflowController := cancellation.NewController(sysLogger, eventPublisher)
	collectionsAggregator := collections.NewAggregator(sysLogger)
	collectionsCache := memory.NewCollectionsCache()

	// 5. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth)
	contractService := service.NewContractService(uowFactory)
	cancellationService := service.NewCancellationService(
		uowFactory,
		workflowController,
		publisherService,
		emailService,
		sysLogger,
	)
	collectionsService := service.NewCollectionsService(uowFactory, collectionsAggregator, collectionsCache)
	paymentService := service.NewPaymentService(uowFactory, collectionsService, cfg.Payment)

	// 6. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, uowFactory, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 7. Controllers
	return &Container{
		NotificationHandler:   notifHandler,
		WebSocketHub:          wsHub,
		AuthController:        controller.NewAuthController(authService),
		ContractController:    controller.NewContractController(contractService, cancellationService),
		ReturnController:      controller.NewReturnController(cancellationService),
		CollectionsController: controller.NewCollectionsController(collectionsService),
		PaymentController:     controller.NewPaymentController(paymentService),

		ConsumerService: consumerService,
	}
}
