package main

import (
	"context"
	"log"

	"github.com/tobim/famvault/internal/cli"
	"github.com/tobim/famvault/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
