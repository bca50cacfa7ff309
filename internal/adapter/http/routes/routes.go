package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "spayway_checkout/docs" // swagger docs
	"spayway_checkout/internal/adapter/http/handlers"
	"spayway_checkout/internal/adapter/persistence/repository"
	"spayway_checkout/internal/infrastructure/cache"
	"spayway_checkout/internal/infrastructure/config"
	"spayway_checkout/internal/infrastructure/database"
	"spayway_checkout/internal/infrastructure/events"
	"spayway_checkout/internal/infrastructure/payments"
	"spayway_checkout/internal/usecase"
	"spayway_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the dependencies and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config) {
	gin.SetMode(cfg.Server.GinMode)

	flowHandler, cleanup := buildPaymentFlowHandler(cfg)
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           cors.AllowAll().Handler(NewRouter(flowHandler)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[server] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[server] shutdown error: %v", err)
	}
}

// NewRouter builds the gin engine with all public routes.
func NewRouter(flowHandler *handlers.PaymentFlowHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addPaymentFlowRoutes(v1, flowHandler)
	return router
}

func buildPaymentFlowHandler(cfg *config.Config) (*handlers.PaymentFlowHandler, func()) {
	var closers []func() error

	var gateway interfaces.IPaymentGateway
	spGateway, err := payments.NewSPayWayGateway(cfg.SPayWay, cfg.Breaker)
	if err != nil {
		log.Printf("S-PayWay gateway not configured: %v", err)
	} else {
		gateway = spGateway
	}

	ddb := database.ConnectDynamoDB(cfg.DynamoDB)
	if cfg.DynamoDB.Endpoint != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := database.EnsureCheckoutsTable(ctx, ddb, cfg.DynamoDB.CheckoutsTable); err != nil {
			log.Printf("[database] ensure table %s failed: %v", cfg.DynamoDB.CheckoutsTable, err)
		}
		cancel()
	}
	checkoutRepo := repository.NewCheckoutDynamoRepository(ddb, cfg.DynamoDB.CheckoutsTable)

	var store interfaces.IIdempotencyStore = cache.NoopStore{}
	if cfg.Redis.Addr != "" {
		redisStore := cache.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.SPayWay.Timeout)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisStore.Ping(ctx); err != nil {
			log.Printf("[cache] redis ping failed addr=%s err=%v", cfg.Redis.Addr, err)
		}
		cancel()
		store = redisStore
		closers = append(closers, redisStore.Close)
	} else {
		log.Printf("[cache] REDIS_ADDR not set; request ids are not deduplicated")
	}

	var publisher interfaces.ICheckoutEventPublisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.CheckoutTopic)
		publisher = kafkaPublisher
		closers = append(closers, kafkaPublisher.Close)
	} else {
		log.Printf("[events] KAFKA_BROKERS not set; checkout events are dropped")
	}

	flowUseCase := usecase.NewPaymentFlowUseCase(gateway, checkoutRepo, store, publisher)

	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("[server] close error: %v", err)
			}
		}
	}
	return handlers.NewPaymentFlowHandler(flowUseCase, cfg.SPayWay.PreferredMethod), cleanup
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(requestIDMiddleware())
}
