package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/dkrastev/wellkeeper/internal/buildinfo"
	"github.com/dkrastev/wellkeeper/internal/cli"
	"github.com/dkrastev/wellkeeper/internal/config"
	"github.com/dkrastev/wellkeeper/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Optional; real env vars win over the file.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.MustLoad(*configPath)
	logger := logging.New(cfg.Env, os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
