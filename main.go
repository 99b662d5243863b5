package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/PCKoper/heatcurve/internal/analyzer"
	"github.com/PCKoper/heatcurve/internal/api"
	"github.com/PCKoper/heatcurve/internal/csvsource"
	"github.com/PCKoper/heatcurve/internal/domoticz"
	"github.com/PCKoper/heatcurve/internal/logger"
)

func main() {
	root := &cobra.Command{
		Use:          "heatcurve",
		Short:        "Estimates the heating power curve of a house from its sensor history",
		SilenceUsage: true,
	}
	root.AddCommand(serveCommand(), analyzeCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func domoticzClientFromEnv() *domoticz.Client {
	cfg := domoticz.Config{
		BaseURL:                    os.Getenv("DOMOTICZ_URL"),
		InsecureTLS:                os.Getenv("DOMOTICZ_INSECURE_TLS") == "true",
		OutdoorTemperatureSensorID: os.Getenv("DOMOTICZ_OUTDOOR_TEMP_IDX"),
		IndoorTemperatureSensorID:  os.Getenv("DOMOTICZ_INDOOR_TEMP_IDX"),
		HeatingEnergySensorID:      os.Getenv("DOMOTICZ_HEATING_IDX"),
		GasSensorID:                os.Getenv("DOMOTICZ_GAS_IDX"),
		ElectricitySensorID:        os.Getenv("DOMOTICZ_ELECTRICITY_IDX"),
		UseGas:                     os.Getenv("HEATCURVE_USE_GAS") == "true",
		FetchGainSensors:           os.Getenv("HEATCURVE_ESTIMATE_GAINS") == "true",
	}

	return domoticz.NewClient(cfg)
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serves the analysis as JSON and charts over http",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()
			defer func() { _ = log.Sync() }()

			dc := domoticzClientFromEnv()
			a := analyzer.New(dc)
			if os.Getenv("HEATCURVE_ESTIMATE_GAINS") == "true" {
				config := a.GetConfig()
				config.EstimateGains = true
				a.SetConfig(*config)
			}
			s := api.NewServer(a, dc)

			log.Infow("fetching initial sensor data")
			err := s.Update()
			if err != nil {
				log.Warnw("initial sensor update failed", "err", err)
			}

			c := cron.New()
			_, err = c.AddFunc("30 2 * * *", func() {
				err := s.Update()
				if err != nil {
					log.Warnw("scheduled sensor update failed", "err", err)
				}
			})
			if err != nil {
				return err
			}
			c.Start()
			defer c.Stop()

			r := gin.Default()

			r.GET("/", s.RootHandler)
			r.GET("/analysis", s.AnalysisHandler)
			r.GET("/report", s.ReportHandler)
			r.GET("/samples", s.SamplesHandler)
			r.GET("/eras", s.ErasHandler)
			r.POST("/update", s.UpdateHandler)
			r.GET("/config", s.ConfigHandler)
			r.POST("/config", s.SetConfigHandler)
			r.POST("/config/temperatureofinterest", s.SetTemperatureOfInterest)
			r.POST("/config/costperkwh", s.SetCostPerKwh)
			r.POST("/config/era", s.SetDistributionEra)
			r.POST("/config/estimategains", s.SetEstimateGains)
			r.POST("/config/window", s.SetWindow)

			addr := os.Getenv("HEATCURVE_LISTEN_ADDR")
			if addr == "" {
				addr = ":8080"
			}

			log.Infow("listening", "addr", addr)
			return r.Run(addr)
		},
	}
}

func analyzeCommand() *cobra.Command {
	var csvPath string
	var startDate string
	var gains bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Runs one analysis and prints the text report",
		RunE: func(cmd *cobra.Command, args []string) error {
			var a *analyzer.Analyzer

			if csvPath != "" {
				opts := []csvsource.Option{}
				if startDate != "" {
					d, err := time.Parse("2006-01-02", startDate)
					if err != nil {
						return fmt.Errorf("parsing start date: %w", err)
					}
					opts = append(opts, csvsource.WithStartDate(d))
				}
				if os.Getenv("HEATCURVE_USE_GAS") == "true" {
					opts = append(opts, csvsource.WithGasEnergy())
				}

				src, err := csvsource.New(csvPath, opts...)
				if err != nil {
					return err
				}

				a = analyzer.New(src)
				config := a.GetConfig()
				config.Window = src.Window()
				config.EstimateGains = gains
				a.SetConfig(*config)
			} else {
				dc := domoticzClientFromEnv()
				err := dc.Update()
				if err != nil {
					return err
				}

				a = analyzer.New(dc)
				config := a.GetConfig()
				config.EstimateGains = gains
				a.SetConfig(*config)
			}

			analysis, err := a.Analyze()
			if err != nil {
				return err
			}

			fmt.Print(analysis.Report())
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "read samples from a csv file instead of domoticz")
	cmd.Flags().StringVar(&startDate, "start-date", "", "date of the first csv row (2006-01-02 format)")
	cmd.Flags().BoolVar(&gains, "gains", false, "estimate internal and external heat gains")

	return cmd
}
