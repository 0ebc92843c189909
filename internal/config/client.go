package config

import (
	"flag"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// ClientConfig: настройки itemctl. Серверные флаги сюда не попадают.
type ClientConfig struct {
	GatewayURL string `env:"GATEWAY_URL" envDefault:"http://localhost:3000"`
	Version    bool
}

func NewClientConfig() *ClientConfig {
	_ = godotenv.Load()

	cfg := &ClientConfig{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.GatewayURL, "gateway", cfg.GatewayURL, "адрес шлюза")
	flag.BoolVar(&cfg.Version, "version", false, "показать версию и выйти")

	flag.Parse()

	cfg.GatewayURL = strings.TrimRight(strings.TrimSpace(cfg.GatewayURL), "/")
	return cfg
}
