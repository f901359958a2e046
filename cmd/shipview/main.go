package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kwren/shipview/internal/config"
	"github.com/kwren/shipview/internal/database"
	"github.com/kwren/shipview/internal/database/repository"
	"github.com/kwren/shipview/internal/report"
	"github.com/kwren/shipview/internal/scope"
	"github.com/kwren/shipview/internal/service"
	"github.com/kwren/shipview/internal/tui"
)

func main() {
	link := flag.String("link", "", `share link query/hash, e.g. "?c=mastec-inc&m=Union Ridge#task=17096"`)
	customer := flag.String("c", "", "customer scope token (number, slug, or comma list)")
	admin := flag.Bool("admin", false, "staff view, all customers")
	milestone := flag.String("m", "", "pre-applied milestone filter")
	task := flag.String("task", "", "auto-open detail for this task number")
	sample := flag.Bool("sample", false, "use the built-in sample data source")
	reportURL := flag.String("url", "", "report endpoint URL (overrides config)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	params := scope.ParseLink(*link)
	if *customer != "" {
		params.Customer = *customer
	}
	if *admin {
		params.Admin = true
	}
	if *milestone != "" {
		params.Milestone = *milestone
	}
	if *task != "" {
		params.Task = *task
	}

	source, err := buildSource(cfg, *sample, *reportURL)
	if err != nil {
		log.Fatalf("report source: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	presetRepo := repository.NewPresetRepo(db)
	loader := service.NewLoader(source)

	p := tea.NewProgram(tui.New(ctx, cfg,
		tui.Repos{Presets: presetRepo},
		tui.Services{Loader: loader, Exporter: service.Exporter{}},
		params,
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func buildSource(cfg config.Config, sample bool, urlOverride string) (report.Source, error) {
	if sample || cfg.Report.Sample {
		return report.NewSampleSource(time.Now().UnixNano()), nil
	}
	url := strings.TrimSpace(urlOverride)
	if url == "" {
		url = strings.TrimSpace(cfg.Report.URL)
	}
	if url == "" {
		return nil, fmt.Errorf("no report URL configured; set report.url, pass -url, or use -sample")
	}
	return report.NewClient(url, cfg.Report.Timeout), nil
}
