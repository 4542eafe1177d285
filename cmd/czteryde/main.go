package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ObywatelTB/cztery-de/internal/api"
	"github.com/ObywatelTB/cztery-de/internal/config"
	"github.com/ObywatelTB/cztery-de/internal/geom4d"
)

var (
	cfgPath string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "czteryde",
	Short: "4D polytope geometry service",
	Long: `czteryde generates and transforms four-dimensional polytope data
(vertices and edges) and serves it over a small HTTP API for
client-side rendering.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return api.New(cfg, logger).ListenAndServe(ctx)
	},
}

var (
	cubeSize   float64
	cubeIndent bool
)

var cubeCmd = &cobra.Command{
	Use:   "cube",
	Short: "Print a tesseract as JSON",
	Long: `Generates the 16-vertex, 32-edge hypercube wireframe for the given
half-extent and writes it to stdout in the API wire schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(os.Stdout)
		if cubeIndent {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(geom4d.Tesseract(cubeSize))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cubeCmd.Flags().Float64Var(&cubeSize, "size", 1.0, "half-extent of the cube on every axis")
	cubeCmd.Flags().BoolVar(&cubeIndent, "indent", false, "pretty-print the JSON")

	rootCmd.AddCommand(serveCmd, cubeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
