package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bankprobe/internal/config"
	"bankprobe/internal/logging"
	"bankprobe/internal/mockbank"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	srv := mockbank.NewServer(logger, mockbank.NewBank(cfg.BankName, "123456789"))

	logger.Info("mockbank_listen", zap.String("addr", cfg.Addr), zap.String("bank", cfg.BankName))
	log.Printf("mockbank listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		log.Fatal(err)
	}
}
