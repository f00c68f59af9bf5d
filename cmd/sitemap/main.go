package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/vincegoalt/rydercup2027-api/internal/config"
	"github.com/vincegoalt/rydercup2027-api/internal/content"
	"github.com/vincegoalt/rydercup2027-api/internal/routes"
	"go.uber.org/zap"
)

func main() {
	var (
		out = flag.String("out", "", "Output file (default: stdout)")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	catalog, err := content.Load()
	if err != nil {
		logger.Fatal("Invalid content catalog", zap.Error(err))
	}

	identities, err := routes.Generate(catalog)
	if err != nil {
		logger.Fatal("Failed to generate routes", zap.Error(err))
	}
	if err := routes.ValidateCrossLinks(catalog, identities); err != nil {
		logger.Fatal("Catalog cross-links are broken", zap.Error(err))
	}

	entries := routes.SitemapEntries(identities, cfg.Site.BaseURL, time.Now())

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Fatal("Failed to create output file", zap.Error(err))
		}
		defer f.Close()
		w = f
	}

	if err := routes.WriteXML(w, entries); err != nil {
		logger.Fatal("Failed to write sitemap", zap.Error(err))
	}

	if *out != "" {
		logger.Info("Sitemap written",
			zap.String("file", *out),
			zap.Int("urls", len(entries)),
		)
	}
}
