package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/cache"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a config file (default ./config.yaml)")
		input      = flag.String("input", "", "CSV file of processes (id,arrival,burst[,priority]); runs once and exits")
		algorithm  = flag.String("algorithm", "", "algorithm id for -input; compares all algorithms when empty")
		quantum    = flag.Int("quantum", 0, "round robin time quantum (default from config)")
		format     = flag.String("format", "table", "output format for -input: table, csv or json")
	)
	flag.Parse()

	cfg := config.GetSchedulerConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if *quantum == 0 {
		*quantum = cfg.RoundRobinTimeQuantum()
	}

	if *input != "" {
		if err := runFile(os.Stdout, *input, *algorithm, *quantum, *format); err != nil {
			slog.Error("simulation failed", "input", *input, "error", err)
			os.Exit(1)
		}
		return
	}

	app := fiber.New()
	handler := api.NewSchedulerHandlerImpl(cfg, newCache(cfg))
	api.RegisterRoutes(app, handler, api.NewRateLimiter(cfg.RateLimit).Handler())

	slog.Info("scheduler api listening", "port", cfg.Port)
	if err := app.Listen(":" + strconv.Itoa(cfg.Port)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newCache(cfg *config.SchedulerConfig) cache.Cache {
	if cfg.Redis.Addr == "" {
		return cache.NewMemory()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		slog.Warn("redis unavailable, using in-memory cache", "addr", cfg.Redis.Addr, "error", err)
		_ = client.Close()
		return cache.NewMemory()
	}
	slog.Info("using redis response cache", "addr", cfg.Redis.Addr)
	return cache.NewRedis(client, "scheduler:")
}

func runFile(w io.Writer, path, name string, quantum int, format string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	processes, err := requests.LoadProcessesCSV(f)
	if err != nil {
		return err
	}
	opts := schedulers.Options{Quantum: quantum}

	if name == "" {
		outcomes := schedulers.CompareAll(context.Background(), processes, opts)
		switch format {
		case "json":
			return json.NewEncoder(w).Encode(responses.NewComparisonResponse(uuid.New(), quantum, outcomes))
		case "csv":
			return errors.New("csv output needs -algorithm")
		}
		for _, a := range core.Algorithms() {
			if outcome := outcomes[a]; outcome.Err == nil {
				if err := report.WriteTable(w, a.Title(), outcome.Result); err != nil {
					return err
				}
			}
		}
		return report.WriteComparison(w, outcomes, nil)
	}

	alg, err := core.ParseAlgorithm(name)
	if err != nil {
		slog.Warn("unknown algorithm, falling back to fcfs", "algorithm", name)
	}
	result, err := schedulers.Run(alg, processes, opts)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(responses.NewScheduleResponse(uuid.New(), alg, quantum, result))
	case "csv":
		return report.WriteCSV(w, result)
	}
	return report.WriteTable(w, alg.Title(), result)
}
