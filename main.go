package main

import (
	"context"
	"fmt"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/history"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/msg"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}

	opts := service.Options{
		DefaultStrategy: cfg.BotStrategy,
		HouseRules:      cfg.HouseRules(),
		HistoryTimeout:  cfg.HistoryTimeout,
		Store:           service.NewStore(),
	}
	if cfg.HistoryEnabled() {
		client, err := history.Connect(context.Background(), cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Error(err)
			return
		}
		publisher := history.NewRedisPublisher(client, cfg.HistoryQueue)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error(err)
			}
		}()
		opts.Publisher = publisher
		log.Infof("recording game actions to %s queue %s\n", cfg.RedisAddr, cfg.HistoryQueue)
	}

	log.Info(msg.Message.Welcome())
	server := network.NewHttpServer(cfg.Addr, service.NewManager(opts))
	log.Error(server.Serve())
}
