package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pbianchi/moto-soul/internal/config"
	"github.com/pbianchi/moto-soul/internal/logger"
	"github.com/pbianchi/moto-soul/internal/service"
	"github.com/pbianchi/moto-soul/internal/store"
	"github.com/pbianchi/moto-soul/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("motosoul")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, log)

	if err := run(ctx, storages, services); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// run dispatches the positional command left after flag parsing. With no
// command it prints the dashboard summary.
//
// Commands:
//
//	dashboard                      print dashboard aggregates (default)
//	export-logbook <file>          write the logbook snapshot to file
//	import-logbook <file>          restore the logbook from a snapshot file
//	export-explorer <file>         write the explorer snapshot to file
//	import-explorer <file>         restore the explorer from a snapshot file
func run(ctx context.Context, storages *store.Storages, services *service.Services) error {
	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "dashboard"
	}

	switch cmd {
	case "dashboard":
		return printDashboard(ctx, storages)
	case "export-logbook":
		snapshot, err := services.LogbookBackup.Export(ctx)
		if err != nil {
			return err
		}
		return writeSnapshot(flag.Arg(1), snapshot)
	case "import-logbook":
		var snapshot models.LogbookSnapshot
		if err := readSnapshot(flag.Arg(1), &snapshot); err != nil {
			return err
		}
		return services.LogbookBackup.Import(ctx, snapshot)
	case "export-explorer":
		snapshot, err := services.ExplorerBackup.Export(ctx)
		if err != nil {
			return err
		}
		return writeSnapshot(flag.Arg(1), snapshot)
	case "import-explorer":
		var snapshot models.ExplorerSnapshot
		if err := readSnapshot(flag.Arg(1), &snapshot); err != nil {
			return err
		}
		return services.ExplorerBackup.Import(ctx, snapshot)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printDashboard(ctx context.Context, storages *store.Storages) error {
	profile, err := storages.Logbook.GetProfile(ctx)
	if err != nil {
		return err
	}

	trips, err := storages.Logbook.GetAllTrips(ctx)
	if err != nil {
		return err
	}

	maintenance, err := storages.Logbook.GetAllMaintenance(ctx)
	if err != nil {
		return err
	}

	fuel, err := storages.Logbook.GetAllFuel(ctx)
	if err != nil {
		return err
	}

	if profile == nil {
		fmt.Println("No profile configured yet")
	} else {
		fmt.Printf("%s | %s %d (%s)\n", profile.RiderName, profile.BikeModel, profile.BikeYear, profile.PlateNumber)
	}

	odometer := service.CurrentOdometer(profile, trips)
	fmt.Printf("Trips: %d, total %.0f km, %.1f h\n", service.TripCount(trips), service.TotalDistance(trips), service.TotalHours(trips))
	fmt.Printf("Odometer: %.0f km\n", odometer)

	if avg, ok := service.AverageFuelConsumption(fuel, service.TotalDistance(trips)); ok {
		fmt.Printf("Average consumption: %.1f L/100km\n", avg)
	} else {
		fmt.Println("Average consumption: -")
	}

	if forecast, ok := service.NextServiceDue(maintenance, odometer); ok {
		fmt.Printf("Next service: %.0f km (%.0f km remaining)\n", forecast.NextServiceKm, forecast.RemainingKm)
	} else {
		fmt.Println("Next service: -")
	}

	return nil
}

func writeSnapshot(path string, snapshot any) error {
	if path == "" {
		return fmt.Errorf("snapshot file path is required")
	}

	data, err := service.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

func readSnapshot(path string, out any) error {
	if path == "" {
		return fmt.Errorf("snapshot file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return service.DecodeSnapshot(data, out)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
