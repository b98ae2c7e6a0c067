package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Elmorjene/elmorjene-officiel/internal/cart"
	"github.com/Elmorjene/elmorjene-officiel/internal/catalog"
	"github.com/Elmorjene/elmorjene-officiel/internal/db"
	httpapi "github.com/Elmorjene/elmorjene-officiel/internal/http"
	"github.com/Elmorjene/elmorjene-officiel/internal/notify"
	"github.com/Elmorjene/elmorjene-officiel/internal/order"
)

func main() {
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)
	cfg := loadConfig()

	if cfg.TelegramToken == "" {
		logger.Fatal("TELEGRAM_BOT_TOKEN not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage: in-memory by default, Postgres when a DSN is configured.
	var (
		products catalog.Repository
		orders   order.Repository
	)
	if cfg.DatabaseDSN != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
		if err != nil {
			logger.Fatalf("db connect: %v", err)
		}
		defer pool.Close()

		if cfg.RunMigrations {
			if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
				logger.Fatalf("db migrate: %v", err)
			}
		}

		products = catalog.NewPostgresRepository(pool)
		orders = order.NewPostgresRepository(pool)
		logger.Printf("using postgres storage")
	} else {
		products = catalog.NewMemoryRepository(catalog.DefaultProducts())
		orders = order.NewMemoryRepository()
		logger.Printf("using in-memory storage")
	}

	// Telegram relay
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Fatalf("telegram bot: %v", err)
	}

	receiver := notify.NewReceiver(bot, cfg.TelegramChatID, logger)
	go receiver.Listen(ctx)

	// HTTP
	carts := cart.NewStore()
	router := httpapi.NewRouter(products, orders, carts, receiver)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	cancel()
}

type config struct {
	Port           string
	DatabaseDSN    string
	RunMigrations  bool
	TelegramToken  string
	TelegramChatID int64
}

func loadConfig() config {
	chatID, _ := strconv.ParseInt(getEnv("TELEGRAM_CHAT_ID", "0"), 10, 64)

	return config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", ""),
		RunMigrations:  envBool("RUN_MIGRATIONS", true),
		TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: chatID,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return fallback
	}
}
