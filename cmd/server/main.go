package main

import (
	"context"
	"log"

	server "github.com/albertopena123/evaluacion-enla/internal/server"
	"github.com/albertopena123/evaluacion-enla/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
