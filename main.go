package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"agroweather/apis/openmeteo"
	"agroweather/cli"
	"agroweather/config"
	"agroweather/manager"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %s\n", err)
	}

	cmd, err := cli.New(newWeather)
	if err != nil {
		log.Fatalf("new cli: %s\n", err)
	}

	if err = cmd.ExecuteContext(ctx); err != nil {
		log.Printf("exec: %s\n", err)
		os.Exit(1)
	}
}

func newWeather(cfg *config.Config) manager.Weather {
	weatherManager := manager.New(openmeteo.New(cfg.OpenMeteo.BaseURL))
	weatherManager.SetDefaults(cfg.Defaults)
	weatherManager.SetLanguage(cfg.Lang())

	return weatherManager
}
