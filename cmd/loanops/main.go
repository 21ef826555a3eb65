package main

import (
	"log"
	"os"

	"github.com/seantiz/loanops/internal/api"
	"github.com/seantiz/loanops/internal/archive"
	"github.com/seantiz/loanops/internal/config"
	"github.com/seantiz/loanops/internal/jobstore"
	"github.com/seantiz/loanops/internal/loans"
	"github.com/seantiz/loanops/internal/process"
	"github.com/seantiz/loanops/internal/scheduler"
	"github.com/seantiz/loanops/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(os.Stdout, cfg.SlogLevel())

	logger.Info("loanops: starting",
		"listen_addr", cfg.ListenAddr,
		"loans_dir", cfg.LoansDir,
		"output_dir", cfg.OutputDir,
		"workers", cfg.Workers,
	)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	arc, err := archive.NewSQLiteArchive(cfg.ArchivePath)
	if err != nil {
		log.Fatalf("failed to open archive: %v", err)
	}
	defer arc.Close()

	catalog := loans.NewCatalog(cfg.LoansDir)
	runner := workflow.NewOperationsRunner(logger)
	svc := process.NewService(catalog, runner, arc, cfg.OutputDir, logger)
	jobs := jobstore.New()
	sched := scheduler.New(jobs, svc, cfg.Workers, logger)

	srv := api.NewServer(cfg.ListenAddr, catalog, jobs, sched, svc, arc, logger)

	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
