package main

import (
	"log"
	"os"

	"github.com/streamhive/streamhive/internal/config"
	"github.com/streamhive/streamhive/internal/server"
	"github.com/streamhive/streamhive/pkg/db/aws"
	"github.com/streamhive/streamhive/pkg/db/postgres"
	"github.com/streamhive/streamhive/pkg/db/redis"
	"github.com/streamhive/streamhive/pkg/logger"
)

func main() {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yml"
	}
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}

	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()
	appLogger.Infof("AppVersion: %s, LogLevel: %s, Mode: %s", cfg.Server.AppVersion, cfg.Logger.Level, cfg.Server.Mode)

	psqlDB, err := postgres.NewPsqlDB(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to db: %s", err)
	}
	appLogger.Infof("db connected, status: %#v", psqlDB.Stats())
	defer psqlDB.Close()

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %s", err)
	}
	defer redisClient.Close()
	appLogger.Infof("redis connected")

	s3Client, presignClient, err := aws.NewAWSClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not create s3 client: %s", err)
	}

	s := server.NewServer(cfg, psqlDB, redisClient, s3Client, presignClient, appLogger)
	if err = s.Run(); err != nil {
		appLogger.Fatalf("server stopped with error: %s", err)
	}
}
