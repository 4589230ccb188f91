// cmd/preflight/main.go
package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, color.RedString("✖"), msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, color.YellowString("⚠"), msg) }
	ok := func(msg string) { fmt.Println(color.GreenString("✔"), msg) }

	_ = godotenv.Load()

	apiBase := strings.TrimSpace(os.Getenv("API_BASE"))
	addr := strings.TrimSpace(os.Getenv("ADDR"))
	logDir := strings.TrimSpace(os.Getenv("LOG_DIR"))

	if apiBase == "" {
		warn("API_BASE is empty; the probe will target http://localhost:10000.")
	} else {
		u, err := url.Parse(apiBase)
		if err != nil || u.Scheme == "" || u.Host == "" {
			fail("API_BASE is not a valid URL: " + apiBase)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			fail("API_BASE must be http or https, got " + u.Scheme)
		}
		ok("API_BASE=" + apiBase)
	}

	if addr == "" {
		warn("ADDR is empty; mockbank will bind 127.0.0.1:10000.")
	} else {
		ok("ADDR=" + addr)
	}

	if logDir == "" {
		warn("LOG_DIR empty — logs go to ./logs.")
	} else {
		ok("LOG_DIR=" + logDir)
	}

	ok("preflight passed")
}
