package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/bot"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/config"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/metrics"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/notify"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/router"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/service"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/store"
	"github.com/Scriptome-AI/hackathon-hackagent/pkg/slackbot"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Server.Mode == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	metrics.Register()

	st := store.Open(cfg.Data.Dir, logger)

	// Services
	participantSvc := service.NewParticipantService(st, logger)
	projectSvc := service.NewProjectService(st, logger)

	// Slack client
	client := slackbot.New(cfg.Slack.BotToken)

	// Notifier
	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.Slack.BotToken != "" {
		notifier = notify.NewSlackNotifier(client, notify.Channels{
			Approvals:     cfg.Channels.Approvals,
			Announcements: cfg.Channels.Announcements,
			Submissions:   cfg.Channels.Submissions,
		}, logger)
	} else {
		logger.Warn("slack bot token not configured, notifications disabled")
	}

	// Bot handlers
	handler := bot.NewHandler(client, notifier, participantSvc, projectSvc, logger)
	httpHandler := bot.NewHTTPHandler(handler, cfg.Slack.SigningSecret, logger)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	router.Setup(r, router.Deps{Bot: httpHandler})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server run", zap.Error(err))
	}
}
