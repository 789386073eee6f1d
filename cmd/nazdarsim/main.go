package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/michal-laska/nazdar-baby/internal/sim"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(envStr("NAZDAR_LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	cfg := sim.Config{
		Players: envInt("NAZDAR_PLAYERS", 4),
		Games:   envInt("NAZDAR_GAMES", 10),
		Seed:    envInt64("NAZDAR_SEED", time.Now().UnixNano()),
		Shuffle: envStr("NAZDAR_SHUFFLE", "") != "",
	}

	log.WithFields(logrus.Fields{
		"players": cfg.Players,
		"games":   cfg.Games,
		"seed":    cfg.Seed,
	}).Info("starting simulation")

	res, err := sim.Run(cfg, log)
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range res.Seats {
		log.WithFields(logrus.Fields{
			"player":  s.Name,
			"points":  s.Points,
			"pending": s.Pending,
		}).Info("final standing")
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
