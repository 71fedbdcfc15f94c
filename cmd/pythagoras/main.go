package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/pythagoras"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	maxDepth   int
	intervalMS int
	showFPS    bool
	debug      bool
	headless   bool
	scriptPath string
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "pythagoras",
		Short: "Interactive animated Pythagoras-tree fractal",
		Long: `Pythagoras renders an animated Pythagoras-tree fractal that reshapes as
you move the pointer and deepens on a timer. Press S for a screenshot,
Escape to quit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", pythagoras.DefaultMaxDepth, "maximum recursion depth")
	cmd.Flags().IntVar(&opts.intervalMS, "interval", 500, "growth interval in milliseconds")
	cmd.Flags().BoolVar(&opts.showFPS, "fps", false, "show the FPS overlay")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "v", false, "log rebuild timings")
	cmd.Flags().BoolVar(&opts.headless, "headless", false, "run a scripted session without a window")
	cmd.Flags().StringVar(&opts.scriptPath, "script", "", "JSON session script for --headless")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	level := log.InfoLevel
	if opts.debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "pythagoras",
	})

	cfg := pythagoras.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := pythagoras.LoadConfig(opts.configPath)
		if err != nil {
			logger.Error("config", "err", err)
			return err
		}
		cfg = loaded
		logger.Debug("loaded config", "path", opts.configPath)
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = opts.maxDepth
	}
	if cmd.Flags().Changed("interval") {
		cfg.GrowIntervalMS = opts.intervalMS
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("config", "err", err)
		return err
	}

	model := pythagoras.NewModel(cfg)

	if opts.headless {
		return runHeadless(logger, model, cfg, opts.scriptPath)
	}

	logger.Info("starting",
		"surface", fmt.Sprintf("%dx%d", cfg.SurfaceWidth, cfg.SurfaceHeight),
		"max_depth", cfg.MaxDepth,
		"interval", cfg.GrowInterval())

	if err := pythagoras.Run(model, pythagoras.RunConfig{
		Title:   "Pythagoras",
		ShowFPS: opts.showFPS,
		Debug:   opts.debug,
	}); err != nil {
		logger.Error("run", "err", err)
		return err
	}
	return nil
}

// runHeadless replays a session script against the model and reports the
// resulting tree and cache state. With no script it grows the fractal to
// its maximum depth under a centered pointer.
func runHeadless(logger *log.Logger, model *pythagoras.Model, cfg pythagoras.Config, scriptPath string) error {
	data := defaultScript(cfg)
	if scriptPath != "" {
		var err error
		data, err = os.ReadFile(scriptPath)
		if err != nil {
			logger.Error("script", "err", err)
			return err
		}
	}

	script, err := pythagoras.LoadScript(data)
	if err != nil {
		logger.Error("script", "err", err)
		return err
	}
	if err := script.Run(model); err != nil {
		logger.Error("script", "err", err)
		return err
	}

	nodes := 0
	if t := model.Tree(); t != nil {
		nodes = t.Len()
	}
	stats := model.CacheStats()
	logger.Info("session complete",
		"depth", model.DepthLimit(),
		"nodes", nodes,
		"rebuilds", model.Rebuilds(),
		"cache_hit_rate", fmt.Sprintf("%.0f%%", stats.HitRate*100),
		"cache_evictions", stats.Evictions)
	return nil
}

// defaultScript centers the pointer and waits long enough to reach the
// maximum depth.
func defaultScript(cfg pythagoras.Config) []byte {
	waitMS := cfg.GrowIntervalMS*cfg.MaxDepth + cfg.GrowIntervalMS
	return []byte(fmt.Sprintf(`{"steps": [
		{"action": "move", "x": %d, "y": %d},
		{"action": "wait", "ms": %d}
	]}`, cfg.SurfaceWidth/2, cfg.SurfaceHeight/4, waitMS))
}
