package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBase     string        // bank backend base URL, e.g., "http://localhost:10000"
	Addr        string        // mockbank bind address
	LogDir      string        // logs directory
	BankName    string        // mockbank display name
	HTTPTimeout time.Duration // bank client timeout (the health probe keeps the transport default)
}

func FromEnv() Config {
	// The original backend listens on 10000 unless told otherwise.
	apiBase := os.Getenv("API_BASE")
	if apiBase == "" {
		apiBase = "http://localhost:10000"
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:10000"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	bankName := os.Getenv("BANK_NAME")
	if bankName == "" {
		bankName = "Digital Bank"
	}

	httpTimeout := 10 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			httpTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	return Config{
		APIBase:     apiBase,
		Addr:        addr,
		LogDir:      logDir,
		BankName:    bankName,
		HTTPTimeout: httpTimeout,
	}
}
