// Command seeder creates sample categories through the category service.
// Existing names are skipped, so it can be rerun safely.
//
// Flags:
//
//	--seeder-config  path to a YAML file listing categories (default: built-in samples)
//	--dry-run        report what would be created without writing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/admincatalog-backend/internal/app"
	"github.com/heartmarshall/admincatalog-backend/internal/app/seeder"
	"github.com/heartmarshall/admincatalog-backend/internal/config"
	"github.com/heartmarshall/admincatalog-backend/internal/service/category"
)

func main() {
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	dryRunFlag := flag.Bool("dry-run", false, "report without writing")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	storage, err := app.OpenStorage(ctx, appCfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	svc := category.NewService(logger, storage.Categories, storage.UnitOfWork, appCfg.Catalog)

	rep := seeder.New(logger, svc, appCfg.Catalog.MaxPageSize).Run(ctx, *seederCfg)
	if rep.Failed > 0 {
		storage.Close()
		os.Exit(1)
	}
}
