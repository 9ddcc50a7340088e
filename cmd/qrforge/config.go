package main

import (
	"github.com/dmitrymomot/qrforge/core/server"
)

type appConfig struct {
	Server server.Config

	AppName string `env:"APP_NAME" envDefault:"qrforge"`
	Env     string `env:"APP_ENV" envDefault:"local"`
}
