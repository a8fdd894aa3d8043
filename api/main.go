package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DeafMist/award-seat-radar/backend/internal/config"
	"github.com/DeafMist/award-seat-radar/backend/internal/dates"
	"github.com/DeafMist/award-seat-radar/backend/internal/dedupe"
	"github.com/DeafMist/award-seat-radar/backend/internal/logger"
	"github.com/DeafMist/award-seat-radar/backend/internal/models"
	"github.com/DeafMist/award-seat-radar/backend/internal/processing"
	"github.com/DeafMist/award-seat-radar/backend/internal/seats"
)

func main() {
	log := logger.New("api")
	cfg, err := config.LoadAPI()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	client := seats.New(cfg.SeatsBaseURL, cfg.SeatsAPIKey, cfg.SeatsTimeout, log)
	seen := dedupe.NewCache(cfg.DedupeCapacity, cfg.DedupeTTL)

	srv := &server{log: log, cfg: cfg, client: client, seen: seen}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", srv.handleHealth)
	r.Get("/alerts", srv.handleAlerts)

	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.SearchTimeout + 15*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("api server starting", slog.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}

type server struct {
	log    *slog.Logger
	cfg    *config.API
	client *seats.Client
	seen   *dedupe.Cache
}

type errorResponse struct {
	Error string `json:"error"`
}

type alertItem struct {
	models.FlightBatch
	OutboundMonths []dates.Bucket `json:"outbound_months"`
	InboundMonths  []dates.Bucket `json:"inbound_months"`
}

type alertsResponse struct {
	Total int         `json:"total"`
	Items []alertItem `json:"items"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.client.Health(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.SearchTimeout)
	defer cancel()

	q := r.URL.Query()
	origin := strings.TrimSpace(q.Get("origin"))
	destination := strings.TrimSpace(q.Get("destination"))
	if origin == "" || destination == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "origin and destination are required"})
		return
	}

	cabin := strings.TrimSpace(q.Get("cabin"))
	if cabin == "" {
		cabin = processing.DefaultCabin
	}

	records, err := s.client.SearchAvailability(ctx, seats.SearchParams{
		Origin:      origin,
		Destination: destination,
		StartDate:   strings.TrimSpace(q.Get("start_date")),
		Days:        clampInt(q.Get("days"), s.cfg.DefaultDays, 365),
		Cabin:       cabin,
	})
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, seats.ErrAuth):
			// The key is server configuration, not a client mistake.
			status = http.StatusInternalServerError
		case errors.Is(err, seats.ErrRateLimited):
			status = http.StatusTooManyRequests
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	batches := processing.Process(records, processing.Options{
		MaxStalenessHours: clampInt(q.Get("max_staleness_hours"), s.cfg.MaxStalenessHours, 24*365),
		DirectOnly:        parseBool(q.Get("direct")),
		Airline:           strings.TrimSpace(q.Get("airline")),
		Program:           strings.TrimSpace(q.Get("program")),
		MaxCost:           clampInt(q.Get("max_cost"), 0, 10_000_000),
		Cabin:             cabin,
	})

	freshOnly := parseBool(q.Get("fresh"))
	items := make([]alertItem, 0, len(batches))
	for _, batch := range batches {
		if freshOnly && s.seen.IsSeen(batch.ID) {
			continue
		}
		s.seen.MarkSeen(batch.ID)
		items = append(items, alertItem{
			FlightBatch:    batch,
			OutboundMonths: batch.OutboundBuckets(),
			InboundMonths:  batch.InboundBuckets(),
		})
	}

	s.log.Info("alert search served",
		slog.String("route", origin+"-"+destination),
		slog.Int("records", len(records)),
		slog.Int("batches", len(items)),
	)

	writeJSON(w, http.StatusOK, alertsResponse{Total: len(items), Items: items})
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

func clampInt(raw string, fallback, max int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if value <= 0 {
		return fallback
	}
	if value > max {
		return max
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding failures mean the client went away; nothing useful to do.
	_ = json.NewEncoder(w).Encode(payload)
}
