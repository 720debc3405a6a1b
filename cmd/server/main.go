package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/classroom-booking/internal/auth"
	"github.com/iliyamo/classroom-booking/internal/config"
	"github.com/iliyamo/classroom-booking/internal/handler"
	"github.com/iliyamo/classroom-booking/internal/middleware"
	"github.com/iliyamo/classroom-booking/internal/queue"
	"github.com/iliyamo/classroom-booking/internal/repository"
	"github.com/iliyamo/classroom-booking/internal/router"
	"github.com/iliyamo/classroom-booking/internal/store"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	// Pick the backing store.  Redis doubles as the cache/limiter backend;
	// with the MySQL or memory store Redis stays optional and its absence
	// just disables caching and rate limiting.
	var kv store.KeyValue
	var rdb *redis.Client
	switch cfg.StoreDriver {
	case config.StoreMySQL:
		s, err := store.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open mysql store: %v", err)
		}
		kv = s
		rdb = config.NewRedisClient()
	case config.StoreMemory:
		kv = store.NewMemoryStore()
		rdb = config.NewRedisClient()
	default:
		rdb = config.NewRedisClient()
		if rdb == nil {
			log.Fatal("redis store selected but redis is unreachable")
		}
		kv = store.NewRedisStore(rdb)
	}
	defer func() { _ = kv.Close() }()

	classrooms := repository.NewClassroomRepo(kv)
	bookings := repository.NewBookingRepo(kv)

	ctx := context.Background()
	if err := classrooms.Seed(ctx); err != nil {
		log.Fatalf("seed classrooms: %v", err)
	}

	passHash, err := auth.HashPassword(cfg.AdminPass, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}

	// Audit-trail consumer; reconnects on its own and never stops the server.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	cacheCfg := config.LoadCacheConfig()
	cacheMW := middleware.NewRedisCache(cacheCfg, rdb)
	rateMW := middleware.NewRedisRateLimit(config.LoadRateLimitConfig(), rdb)
	middleware.InvalidateOnChange(ctx, kv, rdb, cacheCfg.Prefix)

	h := handler.New(bookings, classrooms)
	a := &handler.AuthHandler{
		JWTSecret: cfg.JWTSecret,
		TTLMin:    cfg.AccessTTLMin,
		AdminUser: cfg.AdminUser,
		PassHash:  passHash,
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterAPI(e, h, a, cfg.JWTSecret, rateMW, cacheMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
