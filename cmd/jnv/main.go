// Package main is the entry point for the jnv configuration tool.
// It resolves, validates, and optionally dumps the configuration the
// JSON browser runs with.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sheeeng/ynqa-jnv/internal/config"
	"github.com/sheeeng/ynqa-jnv/internal/config/loader"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "", "path to the configuration file")
		dump        = flag.Bool("dump", false, "print the resolved configuration as TOML")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return 0
	}

	path := *configPath
	if path == "" {
		path = defaultConfigPath()
	}

	doc, err := loader.NewTOMLLoader(path).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := config.Parse(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
		return 1
	}

	if *dump {
		out, err := cfg.TOML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: encoding configuration: %v\n", err)
			return 1
		}
		os.Stdout.Write(out)
		return 0
	}

	fmt.Printf("%s: ok\n", path)
	return 0
}

// defaultConfigPath returns the default configuration file location.
func defaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jnv", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "jnv", "config.toml")
}
