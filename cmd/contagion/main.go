package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"contagion/config"
	"contagion/engine"
	"contagion/server"
	"contagion/simulation"
	"contagion/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(utils.GetEnvDefault("CONFIG", "config.yaml"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	addr := utils.GetEnvDefault("ADDR", cfg.Addr)
	port := utils.GetEnvDefault("PORT", cfg.Port)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	// シミュレーション初期化
	sim, err := simulation.New(cfg.Simulation, rng)
	if err != nil {
		log.Fatalf("simulation error: %v", err)
	}
	if err := sim.Infect(cfg.Simulation.InitInfected); err != nil {
		log.Fatalf("initial infection error: %v", err)
	}
	if err := sim.Vaccinate(cfg.Simulation.InitVaccinated); err != nil {
		log.Fatalf("initial vaccination error: %v", err)
	}
	slog.InfoContext(ctx, "simulation created",
		"agents", cfg.Simulation.NumAgents,
		"topology", cfg.Simulation.Topology,
		"seed", seed)

	runner := engine.NewRunner(sim)
	go func() {
		if err := runner.Run(ctx); err != nil {
			slog.ErrorContext(ctx, "runner error", "err", err)
		}
	}()

	handler := server.Route(runner)
	s := server.NewServer(fmt.Sprintf("%s:%s", addr, port), handler)

	go func() {
		if err := s.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http error: %v", err)
		}
	}()
	slog.InfoContext(ctx, "server listening", "addr", addr+":"+port)

	<-ctx.Done()
	slog.InfoContext(ctx, "shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "graceful shutdown failed", "error", err)
		if err := s.Close(); err != nil {
			slog.ErrorContext(ctx, "forced close failed", "error", err)
		}
	}
	slog.InfoContext(ctx, "server shutdown complete")
}
