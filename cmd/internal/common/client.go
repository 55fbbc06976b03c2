package common

import (
	"fmt"

	"github.com/caarlos0/env/v10"

	"github.com/tenkit/tenkit/client"
)

func NewClient() (*client.Client, error) {
	cfg := struct {
		UA string `env:"TENKIT_UA,notEmpty"`
	}{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse tenkit envs: %w", err)
	}
	return client.New().WithUserAgent(cfg.UA), nil
}
