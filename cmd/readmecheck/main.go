// readmecheck validates the profile document: the markdown must parse,
// the marker pair must appear exactly once in order, picture blocks
// must balance, and every relative image reference must resolve to a
// file under the repo root. CI runs it as a pull request gate.
// Usage: go run ./cmd/readmecheck --config configs/profile.yaml
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Sora4431/Sora4431/internal/config"
	"github.com/Sora4431/Sora4431/internal/logger"
	"github.com/Sora4431/Sora4431/internal/readme"
	"github.com/Sora4431/Sora4431/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/profile.yaml", "path to config file")
	root := flag.String("root", ".", "repo root for resolving relative image paths")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	slog.SetDefault(log)

	log.Info("starting readmecheck",
		"version", version.Version,
		"readme", cfg.Assets.ReadmePath,
		"root", *root,
	)

	src, err := os.ReadFile(cfg.Assets.ReadmePath)
	if err != nil {
		log.Error("failed to read readme", "error", err)
		os.Exit(1)
	}

	findings := readme.Verify(src, *root)
	for _, f := range findings {
		fmt.Printf("%s: %s\n", cfg.Assets.ReadmePath, f)
	}
	if len(findings) > 0 {
		log.Error("readme check failed", "findings", len(findings))
		os.Exit(1)
	}

	log.Info("readme check passed")
}
