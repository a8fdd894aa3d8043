package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DeafMist/award-seat-radar/backend/internal/config"
	"github.com/DeafMist/award-seat-radar/backend/internal/importer"
	"github.com/DeafMist/award-seat-radar/backend/internal/logger"
	"github.com/DeafMist/award-seat-radar/backend/internal/models"
	"github.com/DeafMist/award-seat-radar/backend/internal/processing"
	"github.com/DeafMist/award-seat-radar/backend/internal/render"
	"github.com/DeafMist/award-seat-radar/backend/internal/seats"
)

func main() {
	log := logger.New("cli")
	cfg, err := config.LoadCLI()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "award-radar",
		Short:         "Generate award seat alerts from a file or a live search",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFileCmd(log, cfg))
	root.AddCommand(newSearchCmd(log, cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error("command failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func newFileCmd(log *slog.Logger, cfg *config.CLI) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "file",
		Short: "Parse a flight input file and print one alert per block",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read %s: %w", input, err)
			}

			batches, err := importer.ParseBatch(string(content))
			if err != nil {
				return fmt.Errorf("parse %s: %w", input, err)
			}

			log.Info("input parsed", slog.String("file", input), slog.Int("flights", len(batches)))
			return printAlerts(batches)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", cfg.InputFile, "path to the flight input file")
	return cmd
}

func newSearchCmd(log *slog.Logger, cfg *config.CLI) *cobra.Command {
	var (
		origin       string
		dest         string
		days         int
		cabin        string
		directOnly   bool
		maxStaleness int
		airline      string
		program      string
		maxCost      int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search seats.aero and print alerts for the surviving batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireAPIKey(); err != nil {
				return err
			}
			if origin == "" || dest == "" {
				return fmt.Errorf("--origin and --dest are required")
			}

			client := seats.New(cfg.SeatsBaseURL, cfg.SeatsAPIKey, cfg.SeatsTimeout, log)
			records, err := client.SearchAvailability(cmd.Context(), seats.SearchParams{
				Origin:      origin,
				Destination: dest,
				Days:        days,
				Cabin:       cabin,
			})
			if err != nil {
				return err
			}
			log.Info("search completed",
				slog.String("route", strings.ToUpper(origin)+"-"+strings.ToUpper(dest)),
				slog.Int("records", len(records)),
			)

			batches := processing.Process(records, processing.Options{
				MaxStalenessHours: maxStaleness,
				DirectOnly:        directOnly,
				Airline:           airline,
				Program:           program,
				MaxCost:           maxCost,
				Cabin:             cabin,
			})
			if len(batches) == 0 {
				fmt.Println("No batches survived the filters. Try a longer window, another cabin, or fewer filters.")
				return nil
			}

			log.Info("batches built", slog.Int("batches", len(batches)))
			return printAlerts(batches)
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "origin IATA code (e.g. GRU)")
	cmd.Flags().StringVar(&dest, "dest", "", "destination IATA code (e.g. MIA)")
	cmd.Flags().IntVar(&days, "days", cfg.Days, "days forward to search (max 365)")
	cmd.Flags().StringVar(&cabin, "cabin", cfg.Cabin, "cabin class: economy, business or first")
	cmd.Flags().BoolVar(&directOnly, "direct", false, "only direct flights")
	cmd.Flags().IntVar(&maxStaleness, "max-staleness", cfg.MaxStalenessHours, "max hours since the source last confirmed a record")
	cmd.Flags().StringVar(&airline, "airline", "", "airline name filter (substring)")
	cmd.Flags().StringVar(&program, "program", "", "mileage program filter (substring)")
	cmd.Flags().IntVar(&maxCost, "max-cost", 0, "max mileage cost per record (0 = no limit)")
	return cmd
}

func printAlerts(batches []models.FlightBatch) error {
	for i, batch := range batches {
		alert, err := render.Alert(batch)
		if err != nil {
			return fmt.Errorf("render alert %d: %w", i+1, err)
		}

		fmt.Println(strings.Repeat(".", 70))
		fmt.Println(alert)
		fmt.Println(strings.Repeat(".", 70))
		fmt.Println()
	}

	fmt.Printf("%d alert(s) generated\n", len(batches))
	return nil
}
