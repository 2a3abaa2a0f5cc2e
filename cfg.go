package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/ebitenutil"

	"github.com/zucenko/mazeball/config"
)

const configFile = "mazeball.yaml"

// loadConfig reads mazeball.yaml next to the binary. A missing or broken
// file leaves the defaults.
func loadConfig() config.Config {
	file, err := ebitenutil.OpenFile(configFile)
	if err != nil {
		log.Printf("no %s, using defaults", configFile)
		return config.Default()
	}
	defer file.Close()
	cfg, err := config.Read(file)
	if err != nil {
		log.Printf("failed reading %s: %v", configFile, err)
		return config.Default()
	}
	return cfg
}
