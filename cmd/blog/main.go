package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/pasival14/blog/pkg/config"
	"github.com/pasival14/blog/pkg/content"
	"github.com/pasival14/blog/pkg/db"
	"github.com/pasival14/blog/pkg/feed"
	"github.com/pasival14/blog/pkg/keywords"
	"github.com/pasival14/blog/pkg/recommender"
	"github.com/pasival14/blog/pkg/scheduler"
	"github.com/pasival14/blog/pkg/trending"
	"github.com/pasival14/blog/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting blog backend version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if err := config.Verify(cfg); err != nil {
		return fmt.Errorf("verify config: %w", err)
	}

	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Printf("[WARN] failed to close database: %v", cerr)
		}
	}()

	aggregator := trending.NewAggregator(database, trending.Config{
		WindowHours:     cfg.Trending.WindowHours,
		MaxInteractions: cfg.Trending.MaxInteractions,
		TopKeywords:     cfg.Trending.TopKeywords,
	})

	generator := recommender.NewGenerator(database, recommender.Config{
		Weights:                cfg.InteractionWeights(),
		MinInteractions:        cfg.Recommend.MinInteractions,
		ActiveWindowDays:       cfg.Recommend.ActiveWindowDays,
		InteractionFetchCap:    cfg.Recommend.InteractionFetchCap,
		CandidatePool:          cfg.Recommend.CandidatePool,
		ListSize:               cfg.Recommend.ListSize,
		ColdStartDays:          cfg.Recommend.ColdStartDays,
		ColdStartLimit:         cfg.Recommend.ColdStartLimit,
		ColdStartQueryKeywords: cfg.Recommend.ColdStartQueryKeywords,
		MaxWorkers:             cfg.Recommend.MaxWorkers,
	})

	sched := scheduler.NewScheduler(scheduler.Params{
		DB:                database,
		Fetcher:           content.NewHTTPExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent),
		Ranker:            keywords.NewExtractor(cfg.Extraction.MaxKeywords),
		Trending:          aggregator,
		Recommender:       generator,
		ExtractInterval:   cfg.Extraction.Interval,
		TrendingInterval:  cfg.Trending.Interval,
		RecommendInterval: cfg.Recommend.Interval,
		ExtractBatch:      cfg.Extraction.BatchSize,
		MinTextLength:     cfg.Extraction.MinTextLength,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: cfg.Server.Timeout,
		Version: revision,
		Debug:   opts.Debug,
	}, database, sched, feed.NewGenerator(cfg.Server.BaseURL, "Blog"))

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
