package main

import (
	"log"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("Config error:", err)
	}

	r := newRouter(cfg)

	log.Printf("Server starting on %s...", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Server failed:", err)
	}
}
