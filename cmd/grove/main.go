// Command grove opens a window with an actor that walks with the arrow keys
// or WASD and plants a tree with Space.
//
// With -script it runs headless instead, replaying a JSON input script and
// logging where the actor ended up and what was planted.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/play"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	scriptPath := flag.String("script", "", "replay a JSON input script headless instead of opening a window")
	tps := flag.Int("tps", 60, "ticks per second for -script runs")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	if err := run(*configPath, *scriptPath, *tps, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "grove:", err)
		os.Exit(1)
	}
}

func run(configPath, scriptPath string, tps int, logLevel string) error {
	cfg := grove.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = grove.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := grove.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	world := grove.NewWorld(cfg, log)
	if _, err := world.SpawnActor(grove.Vec2{}); err != nil {
		return err
	}
	world.OnPlanted(func(o grove.WorldObject) {
		log.Info("planted", zap.Float64("x", o.Position.X), zap.Float64("y", o.Position.Y), zap.Uint64("frame", o.Frame))
	})

	if scriptPath == "" {
		return play.Run(world, cfg, log)
	}

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := grove.LoadScript(data)
	if err != nil {
		return err
	}
	frames := grove.RunScript(world, script, tps)
	actor, _ := world.Actor()
	log.Info("script finished",
		zap.Int("frames", frames),
		zap.Float64("x", actor.Position.X),
		zap.Float64("y", actor.Position.Y),
		zap.Int("trees", world.Planted()),
	)
	return nil
}
