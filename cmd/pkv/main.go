package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"pkv"
	"pkv/internal/config"
	"pkv/internal/logging"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: pkv [flags] <command> [args]

Commands:
  get <key>             print the stored value as JSON
  set <key> <json>      store a JSON value
  set-string <key> <v>  store a plain string
  del <key>             remove a key
  keys                  list all keys
  clear                 remove every entry

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	backend := flag.String("backend", "", "store backend (overrides config)")
	path := flag.String("path", "", "data directory (overrides config)")
	logLevel := flag.String("log-level", "", "log level (overrides config)")
	flag.Usage = usage
	flag.Parse()

	// Load config (TOML file with defaults, then PKV_* env vars)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// CLI flags override config and environment
	if *backend != "" {
		cfg.Store.Backend = *backend
	}
	if *path != "" {
		cfg.Store.Path = *path
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.Init(cfg.Log.Level, cfg.Log.Format)

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	st, err := pkv.Open(pkv.Config{
		Qualifier:    cfg.App.Qualifier,
		Organization: cfg.App.Organization,
		Application:  cfg.App.Application,
		Backend:      cfg.Store.Backend,
		Path:         config.ExpandHome(cfg.Store.Path),
	})
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer st.Close()

	if err := run(st, flag.Arg(0), flag.Args()[1:]); err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}
}
