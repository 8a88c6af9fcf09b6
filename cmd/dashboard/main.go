package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ritual/internal/dashboard/api/handler"
	"ritual/internal/dashboard/api/middleware"
	"ritual/internal/dashboard/api/routes"
	"ritual/internal/dashboard/config"
	"ritual/internal/dashboard/jwt"
	"ritual/internal/dashboard/repository"
	"ritual/internal/dashboard/service"
	"ritual/internal/provider"
	"ritual/internal/provider/paperspace"
	"ritual/internal/tgi"
	"ritual/pkg/infra"
	"ritual/pkg/logger"
	"ritual/pkg/mail"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/dashboard.log")
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "dashboard"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
		SSLMode:  appConfig.Postgres.SSLMode,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	//set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host:     appConfig.Redis.Host,
		Port:     appConfig.Redis.Port,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	//set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
		Username:  appConfig.Elasticsearch.Username,
		Password:  appConfig.Elasticsearch.Password,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}

	//set up kafka
	healthCheckTaskWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.HealthCheckTaskTopic)
	defer healthCheckTaskWriter.Close()

	// set up provider registry
	registry := provider.NewRegistry()
	registry.Register(provider.TypePaperspace, func(credential provider.Credential, store provider.CredentialStore) provider.Provider {
		return paperspace.New(credential, store, zapLogger)
	})

	// set up dependencies
	serverRepo := repository.NewServerRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(redisClient)
	healthCheckRepo := repository.NewHealthCheckRepository(esClient)
	credentialStore := repository.NewCredentialStore(providerRepo)

	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	tgiClient := tgi.NewClient(appConfig.TGI.MaxRetries, appConfig.TGI.RequestTimeout, appConfig.TGI.InitialBackoff)
	jwtUtils := jwt.NewJwtUtils(appConfig.JWT.SecretKey, appConfig.JWT.AccessTokenTTL, appConfig.JWT.RefreshTokenTTL)

	providerService := service.NewProviderService(providerRepo, serverRepo, registry, credentialStore)
	serverService := service.NewServerService(serverRepo, healthCheckRepo, providerService, healthCheckTaskWriter, mailSender)
	userService := service.NewUserService(userRepo, mailSender, appConfig.Server.LoginURL)
	authService := service.NewAuthService(userService, jwtUtils, refreshTokenRepo, appConfig.JWT.RefreshTokenTTL)
	settingService := service.NewSettingService(settingRepo)
	playgroundService := service.NewPlaygroundService(tgiClient)

	handlerLogger := handler.NewLogger(zapLogger)
	authHandler := handler.NewAuthHandler(authService, handlerLogger)
	serverHandler := handler.NewServerHandler(handlerLogger, serverService)
	providerHandler := handler.NewProviderHandler(handlerLogger, providerService)
	userHandler := handler.NewUserHandler(handlerLogger, userService)
	settingHandler := handler.NewSettingHandler(handlerLogger, settingService)
	playgroundHandler := handler.NewPlaygroundHandler(handlerLogger, playgroundService)

	m := middleware.NewAuthMiddleware(jwtUtils)

	// Create cronjobs for health check fan out and the daily fleet report
	cronJob := cron.New()
	_, err = cronJob.AddFunc(appConfig.HealthCheck.EnqueueCron, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
		e := serverService.EnqueueHealthChecks(ctx2)
		cancel2()
		if e != nil {
			zapLogger.Error("failed to enqueue health check tasks", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for health check tasks", zap.Error(err))
	}
	_, err = cronJob.AddFunc(appConfig.HealthCheck.ReportCron, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
		e := serverService.ReportFleetHealth(ctx2, time.Now().Add(-time.Hour*24), time.Now(), appConfig.Mail.AdminMailAddress)
		cancel2()
		if e != nil {
			zapLogger.Error("failed to generate daily report", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.SetUpAuthRoutes(r, authHandler, m)
	routes.SetUpServerRoutes(r, serverHandler, m)
	routes.SetUpProviderRoutes(r, providerHandler, m)
	routes.SetUpUserRoutes(r, userHandler, m)
	routes.SetUpSettingRoutes(r, settingHandler, m)
	routes.SetUpPlaygroundRoutes(r, playgroundHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	cronJob.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
