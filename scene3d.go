package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mogaika/scene3d/config"
	"github.com/mogaika/scene3d/demo"
	"github.com/mogaika/scene3d/math3d"
	"github.com/mogaika/scene3d/scene"
	"github.com/mogaika/scene3d/status"
	"github.com/mogaika/scene3d/web"
)

var (
	cfgFile string
	addr    string
)

var rootCmd = &cobra.Command{
	Use:          "scene3d",
	Short:        "Transform graph server",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Animate the demo rig and stream snapshots over http and websocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.Server.Addr = addr
		}

		rig := demo.Build(newGraph(cfg), cfg.Demo)
		pub := status.NewPublisher()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		go func() {
			if err := demo.Run(ctx, rig, pub, cfg.Tick.Duration()); err != nil && ctx.Err() == nil {
				log.Printf("[scene3d] update loop stopped: %v", err)
				stop()
			}
		}()

		return web.NewServer(pub).ListenAndServe(ctx, cfg.Server.Addr, os.Stdout)
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Build the demo rig, update it once and print the tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rig := demo.Build(newGraph(cfg), cfg.Demo)
		rig.Graph.Update()
		fmt.Fprint(cmd.OutOrStdout(), scene.Dump(rig.Graph.Root))
		return nil
	},
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, err
		}
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	math3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return cfg, nil
}

func newGraph(cfg *config.Config) *scene.Graph {
	var opts []scene.GraphOption
	if cfg.Scene.AutoNames {
		opts = append(opts, scene.WithAutoNames(cfg.Scene.Seed))
	}
	return scene.NewGraph(opts...)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to yaml config")
	serveCmd.Flags().StringVarP(&addr, "addr", "i", "", "Address of server, overrides config")
	rootCmd.AddCommand(serveCmd, dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
