package main

import (
	"context"
	"fmt"
	"log"

	"github.com/nlklfor/tgBot-metallurg/core/cmd"
	"github.com/nlklfor/tgBot-metallurg/internal/bot"
)

func main() {
	err := cmd.Run(cmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (cmd.ConfigCarrier, error) {
			return bot.LoadConfig(path)
		},
		Bootstrap: func(ctx context.Context, carrier cmd.ConfigCarrier) (cmd.TelegramApp, error) {
			cfg, ok := carrier.(*bot.Config)
			if !ok {
				return nil, fmt.Errorf("unexpected config type %T", carrier)
			}
			return bot.Bootstrap(ctx, cfg)
		},
	})
	if err != nil {
		log.Fatalf("bot exited: %v", err)
	}
}
