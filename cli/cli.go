package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"agroweather/config"
	"agroweather/manager"
)

// Factory builds the weather manager once the configuration is known.
type Factory func(cfg *config.Config) manager.Weather

type app struct {
	factory    Factory
	configPath string
	cfg        *config.Config
	weather    manager.Weather
}

func New(factory Factory) (*cobra.Command, error) {
	if factory == nil {
		return nil, fmt.Errorf("weather factory is nil")
	}

	a := &app{factory: factory}

	cmd := &cobra.Command{
		Use:           "agroweather",
		Short:         "Weather and market price API for the farming app",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.weather = a.factory(cfg)

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file (defaults to $CONFIG_PATH or the built-in config)")

	cmd.AddCommand(a.serveCommand(), a.currentCommand())

	return cmd, nil
}

func (a *app) currentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current [lat] [long]",
		Args:  cobra.MaximumNArgs(2),
		Short: "Print the current weather for a coordinate",
		RunE: func(cmd *cobra.Command, args []string) error {
			var lat, long *float64

			for i, arg := range args {
				value, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q: %w", arg, err)
				}
				if i == 0 {
					lat = &value
				} else {
					long = &value
				}
			}

			report, err := a.weather.Get(cmd.Context(), lat, long)
			if err != nil {
				return err
			}

			cmd.Printf("LOCATION\t %v, %v\n", report.Location.Latitude, report.Location.Longitude)
			cmd.Printf("CONDITION\t %s (%s)\n", report.ConditionText, report.Icon)
			cmd.Printf("TEMP\t\t %.1f\n", report.Temperature)
			cmd.Printf("HUMIDITY\t %.0f\n", report.Humidity)
			cmd.Printf("RAIN\t\t %.1f\n", report.Rain)
			cmd.Printf("UPDATED\t\t %s\n", report.UpdatedAt)

			return nil
		},
	}
}
