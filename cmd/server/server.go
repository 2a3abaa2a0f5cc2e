package main

import (
	"errors"
	"flag"
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeball/config"
	"github.com/zucenko/mazeball/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	path := flag.String("config", "mazeball.yaml", "yaml config, missing file means defaults")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("no config at %s, using defaults", *path)
		cfg, err = config.Default(), nil
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("config env: %v", err)
	}
	cfg.Log()

	Server := Server{
		GameServer: server.NewGameServer(cfg),
	}
	go Server.GameServer.Loop()
	Server.routes()
	log.Printf("listening on port %s", cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, Server.router))
}
