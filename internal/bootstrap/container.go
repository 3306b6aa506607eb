package bootstrap

import (
	"context"
	"log"

	"campus-chatbot-be/internal/config"
	"campus-chatbot-be/internal/controller"
	"campus-chatbot-be/internal/pkg/logger"
	"campus-chatbot-be/internal/repository/contract"
	"campus-chatbot-be/internal/repository/implementation"
	"campus-chatbot-be/internal/repository/memory"
	"campus-chatbot-be/internal/repository/redisstore"
	"campus-chatbot-be/internal/service"
	"campus-chatbot-be/pkg/assist/match"
	"campus-chatbot-be/pkg/assist/session"
	"campus-chatbot-be/pkg/bedrock"
	"campus-chatbot-be/pkg/records"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController  controller.IAuthController
	OAuthController controller.IOAuthController
	ChatController  controller.IChatController

	// Background services (exposed for main.go to run)
	AuditConsumer service.IAuditConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Conversation store, selected by config
	var conversationRepo contract.ConversationRepository
	if cfg.App.SessionStore == "redis" {
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
		conversationRepo = redisstore.NewSessionRepository(rdb)
		log.Println("[INFO] Using conversation store: REDIS")
	} else {
		conversationRepo = memory.NewSessionRepository()
		log.Println("[INFO] Using conversation store: MEMORY")
	}
	sessionManager := session.NewManager(conversationRepo)

	// 4. Generation collaborator
	agentClient := bedrock.New(context.Background(), bedrock.Config{
		Region:          cfg.Agent.Region,
		AgentID:         cfg.Agent.AgentID,
		AliasID:         cfg.Agent.AliasID,
		KnowledgeBaseID: cfg.Agent.KnowledgeBaseID,
	})

	// 5. Record source and matcher
	recordSource := records.NewFileSource(cfg.App.DataDir, sysLogger)
	matcher := match.NewSubstringMatcher()

	// 6. Services
	userRepo := implementation.NewUserRepository(db)
	auditPublisher := service.NewAuditPublisher(pubSub)
	auditConsumer := service.NewAuditConsumerService(pubSub, sysLogger)

	authService := service.NewAuthService(userRepo, sessionManager, cfg.Auth.JwtSecret, cfg.Auth.EmailDomain)
	oauthService := service.NewOAuthService(cfg)
	chatService := service.NewChatService(
		sessionManager,
		recordSource,
		matcher,
		agentClient,
		auditPublisher,
		sysLogger,
	)

	// 7. Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		OAuthController: controller.NewOAuthController(oauthService),
		ChatController:  controller.NewChatController(chatService),

		AuditConsumer: auditConsumer,
		Logger:        sysLogger,
	}
}
