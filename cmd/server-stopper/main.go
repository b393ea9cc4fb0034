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

	"GSLM_Microservice/internal/server-stopper/api/handler"
	"GSLM_Microservice/internal/server-stopper/api/routes"
	"GSLM_Microservice/internal/server-stopper/config"
	"GSLM_Microservice/internal/server-stopper/consumer"
	"GSLM_Microservice/internal/server-stopper/orchestrator"
	"GSLM_Microservice/internal/server-stopper/repository"
	"GSLM_Microservice/pkg/infra"
	"GSLM_Microservice/pkg/logger"
	"GSLM_Microservice/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/server-stopper.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "server-stopper"))
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

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
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

	// set up aws clients
	awsConfig, err := infra.NewAWSConfig(infra.AWSConfig{Region: appConfig.AWS.Region})
	if err != nil {
		zapLogger.Fatal("failed to load aws config", zap.Error(err))
	}
	ssmClient := infra.NewSSMClient(awsConfig)

	// set up kafka
	reader := infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.ConsumerGroupID, appConfig.Kafka.StopTopic)
	transitionWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.TransitionTopic)
	defer transitionWriter.Close()

	// set up dependencies
	serverRepo := repository.NewServerRepository(db)
	orch := orchestrator.NewOrchestrator(serverRepo, ssmClient, transitionWriter, zapLogger)
	stopHandler := handler.NewStopHandler(zapLogger, orch)

	intentConsumer := consumer.NewConsumer(reader, orch, zapLogger)
	intentConsumer.Start()
	zapLogger.Info("stop-intent consumer started")

	m := middleware.NewAuthMiddleware()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddStopRoutes(r, stopHandler, m)

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
	intentConsumer.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
