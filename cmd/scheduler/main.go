package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"GSLM_Microservice/internal/scheduler/config"
	"GSLM_Microservice/internal/scheduler/evaluator"
	"GSLM_Microservice/internal/scheduler/repository"
	"GSLM_Microservice/internal/scheduler/scheduler"
	"GSLM_Microservice/pkg/infra"
	"GSLM_Microservice/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/scheduler.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Scheduler.LogLevel, fileSyncer).With(zap.String("service.name", "scheduler"))
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

	// set up kafka writers
	startWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.StartTopic)
	defer startWriter.Close()
	stopWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.StopTopic)
	defer stopWriter.Close()
	transitionWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.TransitionTopic)
	defer transitionWriter.Close()

	// set up dependencies
	serverRepo := repository.NewServerRepository(db)
	ev := evaluator.NewEvaluator(serverRepo, startWriter, stopWriter, transitionWriter, zapLogger)
	reconciler := scheduler.NewReconcileScheduler(appConfig.Scheduler.TickInterval, appConfig.Scheduler.TickTimeout, zapLogger, ev)

	reconciler.Start()
	zapLogger.Info("reconcile scheduler started", zap.Duration("tick_interval", appConfig.Scheduler.TickInterval))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down scheduler...")
	reconciler.Stop()
	zapLogger.Info("scheduler exiting")
}
