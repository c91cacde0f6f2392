package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"stardrift/app"
	"stardrift/hal"
	"stardrift/internal/config"
	"stardrift/internal/stats"
)

// options is shared by every subcommand. flags receives raw flag values;
// only the flags the user set are copied onto cfg.
type options struct {
	envFile string
	flags   config.Config
	cfg     config.Config
	log     hal.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{flags: config.Default()}

	root := &cobra.Command{
		Use:   "stardrift",
		Short: "Animated procedural starfield.",
		Long: `stardrift renders layers of twinkling, flaring stars that drift ` +
			`toward the viewer while the field slowly rotates. Settings come ` +
			`from defaults, an optional .env file, STARDRIFT_* variables and ` +
			`flags, in that order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd.Flags())
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&o.envFile, "env-file", "", "Read STARDRIFT_* settings from this .env file.")
	f.IntVar(&o.flags.Width, "width", o.flags.Width, "Raster width in pixels.")
	f.IntVar(&o.flags.Height, "height", o.flags.Height, "Raster height in pixels.")
	f.Float64Var(&o.flags.TimeScale, "time-scale", o.flags.TimeScale, "Animation seconds per host second (0.001 = slow drift).")
	f.IntVar(&o.flags.Workers, "workers", o.flags.Workers, "Render goroutines (0 = GOMAXPROCS).")
	f.StringVar(&o.flags.Encoding, "encoding", o.flags.Encoding, "Output transfer: srgb or linear.")
	f.BoolVar(&o.flags.Verbose, "verbose", o.flags.Verbose, "Enable debug logging.")

	root.AddCommand(
		newWindowCmd(o),
		newHeadlessCmd(o),
		newRenderCmd(o),
		newLayersCmd(o),
		newVersionCmd(),
	)
	return root
}

// load resolves the effective configuration for the running command.
func (o *options) load(fs *pflag.FlagSet) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}

	overlays := []struct {
		name  string
		apply func(c *config.Config)
	}{
		{"width", func(c *config.Config) { c.Width = o.flags.Width }},
		{"height", func(c *config.Config) { c.Height = o.flags.Height }},
		{"time-scale", func(c *config.Config) { c.TimeScale = o.flags.TimeScale }},
		{"workers", func(c *config.Config) { c.Workers = o.flags.Workers }},
		{"encoding", func(c *config.Config) { c.Encoding = o.flags.Encoding }},
		{"verbose", func(c *config.Config) { c.Verbose = o.flags.Verbose }},
		{"zoom", func(c *config.Config) { c.Zoom = o.flags.Zoom }},
		{"format", func(c *config.Config) { c.Format = o.flags.Format }},
		{"hz", func(c *config.Config) { c.Hz = o.flags.Hz }},
		{"frames", func(c *config.Config) { c.Frames = o.flags.Frames }},
		{"wall-clock", func(c *config.Config) { c.WallClock = o.flags.WallClock }},
		{"snapshot-dir", func(c *config.Config) { c.SnapshotDir = o.flags.SnapshotDir }},
		{"snapshot-every", func(c *config.Config) { c.SnapshotEvery = o.flags.SnapshotEvery }},
		{"stats-every", func(c *config.Config) { c.StatsEvery = o.flags.StatsEvery }},
	}
	for _, ov := range overlays {
		if fs.Changed(ov.name) {
			ov.apply(&cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	o.log = hal.NewLogger("stardrift", cfg.Verbose)
	o.log.Debug("config", "resolution", cfg.Resolution().String(), "timeScale", cfg.TimeScale, "workers", cfg.Workers, "encoding", cfg.Encoding)
	return nil
}

func (o *options) host(present func(hal.Framebuffer) error) hal.HostConfig {
	return hal.HostConfig{
		Width:   o.cfg.Width,
		Height:  o.cfg.Height,
		Format:  o.cfg.PixelFormat(),
		Logger:  o.log,
		Present: present,
	}
}

func (o *options) appConfig() app.Config {
	cfg := app.Config{
		TimeScale:  o.cfg.TimeScale,
		Workers:    o.cfg.Workers,
		Encoding:   o.cfg.EncodingValue(),
		StatsEvery: o.cfg.StatsEvery,
	}
	if cfg.StatsEvery > 0 {
		s, err := stats.NewProcessSampler()
		if err != nil {
			o.log.Debug("process sampler unavailable", "err", err)
		} else {
			cfg.Sampler = s
		}
	}
	return cfg
}

// addHostFlags registers the settings shared by the window and headless
// runners.
func (o *options) addHostFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.flags.Format, "format", o.flags.Format, "Framebuffer pixel format: rgba8888 or rgb565.")
	f.Uint64Var(&o.flags.StatsEvery, "stats-every", o.flags.StatsEvery, "Log frame timing every N frames (0 = never).")
}
