// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"travelgenie/internal/ai"
	"travelgenie/internal/config"
	httptransport "travelgenie/internal/http"
	"travelgenie/internal/infra"
	"travelgenie/internal/modules/account"
	"travelgenie/internal/modules/chat"
	"travelgenie/internal/modules/geo"
	"travelgenie/internal/modules/trip"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, cleanup, err := newProvider(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("ai provider init: %v", err)
	}
	defer cleanup()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = infra.NewRedis(cfg.Redis.Addr)
	}

	blobs := infra.NewBlobStore(cfg.Storage.DataDir)

	tripStore := trip.NewStore(blobs)
	tripSvc := trip.NewService(provider, tripStore)

	chatStore := chat.NewStore(blobs)
	chatSvc := chat.NewService(provider, chatStore)

	accountClient := account.NewClient(cfg.Parse.BaseURL, cfg.Parse.AppID, cfg.Parse.RestKey)
	accountSvc := account.NewService(accountClient, blobs)

	geoClient := geo.NewClient(cfg.Parse.BaseURL, cfg.Parse.AppID, cfg.Parse.RestKey)
	geoCache := geo.NewCache(geoClient, redisClient)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:           tripSvc,
		TripStore:       tripStore,
		Chat:            chatSvc,
		Accounts:        accountSvc,
		Geo:             geoCache,
		GenerateTimeout: cfg.AI.GenerateTimeout,
		ChatTimeout:     cfg.AI.ChatTimeout,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("travelgenie listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// newProvider selects the generation backend from config.
func newProvider(ctx context.Context, cfg config.AIConfig) (ai.Provider, func(), error) {
	switch cfg.Provider {
	case "gemini":
		p, err := ai.NewGeminiProvider(ctx, cfg.GeminiKey)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		p := ai.NewOpenAIProvider(cfg.OpenAIBase, cfg.OpenAIKey, cfg.OpenAIModel)
		return p, func() {}, nil
	}
}
