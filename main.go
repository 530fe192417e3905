package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SaiNageswarS/chat-core/agent"
	"github.com/SaiNageswarS/chat-core/appconfig"
	"github.com/SaiNageswarS/chat-core/memory"
	"github.com/SaiNageswarS/chat-core/services"
	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

func main() {
	dotenv.LoadEnv()

	// load config file
	ccfgg := &appconfig.AppConfig{}
	err := config.LoadConfig("config.ini", ccfgg)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	store := memory.NewStore(ccfgg.ChatHistoryLimit())
	chatAgent := agent.NewChatAgent(ccfgg)

	mux := http.NewServeMux()
	services.ProvideChatService(store, chatAgent).RegisterRoutes(mux)

	srv := &http.Server{Addr: ccfgg.HTTPAddress(), Handler: mux}

	// catch SIGINT/SIGTERM -> drain
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("chat-core listening", zap.String("addr", srv.Addr), zap.String("mode", string(chatAgent.Mode())))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
