// Package main issues a session token for a user id. Dev tooling: the service
// itself has no login endpoint, identity is provided by the session store.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/madhavmurthyt/workout-tracker/internal/auth"
	"github.com/madhavmurthyt/workout-tracker/internal/config"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	envFile := flag.String("env-file", ".env", "optional file with secrets")
	userID := flag.String("user", "", "user id to open the session for")
	revoke := flag.String("revoke", "", "token to revoke instead of issuing a new one")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Debugf("no env file loaded [%s]: %s", *envFile, err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("WORKOUT_TRACKER_REDIS_PASS"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warnf("close redis client: %s", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	authService := auth.NewAuthService(cfg.SessionTTL.Duration, rdb)

	if *revoke != "" {
		revoked, err := authService.Logout(ctx, *revoke)
		if err != nil {
			log.Fatalf("revoke session: %s", err)
		}
		fmt.Printf("revoked: %t\n", revoked)
		return
	}

	if *userID == "" {
		log.Fatalln("user id not specified, use -user")
	}

	token, err := authService.Login(ctx, *userID)
	if err != nil {
		log.Fatalf("login: %s", err)
	}

	fmt.Println(token)
}
