package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"meckano-helper/config"
	"meckano-helper/internal/classifier"
	"meckano-helper/internal/model"
	"meckano-helper/internal/report"
	"meckano-helper/internal/report/repository/browser"
	"meckano-helper/internal/report/usecase"
	"meckano-helper/pkg/log"
	"meckano-helper/pkg/timemath"
)

// One-shot fill: attach to the browser, run a single fill, print the
// outcome, exit non-zero on failure. Meant for cron and manual use.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	start := flag.String("start", cfg.WorkDay.Start, "work day start (HH:MM)")
	end := flag.String("end", cfg.WorkDay.End, "work day end (HH:MM)")
	humanize := flag.Bool("humanize", false, "jitter the written times")
	flag.Parse()

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	window, err := timemath.ParseWindow(*start, *end)
	if err != nil {
		fmt.Println("Invalid work window: ", err)
		os.Exit(1)
	}

	pageRepo := browser.NewClient(logger, cfg.Browser)
	defer pageRepo.Close()

	if err := pageRepo.Ping(ctx); err != nil {
		fmt.Println("Browser not reachable: ", err)
		os.Exit(1)
	}

	rules := classifier.New(cfg.Skip, logger)
	uc := usecase.New(logger, pageRepo, rules, clockwork.NewRealClock(), cfg.Page)

	out, err := uc.Fill(ctx, model.NewScope(), report.FillInput{
		Window:   window,
		Humanize: *humanize,
	})

	fmt.Printf("run %s: filled=%d skipped=%d errors=%d submitted=%t closed=%t\n",
		out.RunID, out.Filled, out.Skipped, out.Errors, out.Submitted, out.DialogClosed)
	if out.Message != "" {
		fmt.Println(out.Message)
	}
	if err != nil {
		fmt.Println("Fill failed: ", err)
		os.Exit(1)
	}
}
