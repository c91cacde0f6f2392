package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"stardrift/app"
	"stardrift/hal"
)

func newWindowCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open a desktop window (Escape or q quits).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			var a *app.App
			atexit.Register(func() { o.logFinal(a) })

			err := hal.RunWindow(hal.WindowConfig{
				Host: o.host(nil),
				Zoom: o.cfg.Zoom,
			}, app.Factory(ctx, o.appConfig(), func(created *app.App) { a = created }))
			o.logFinal(a)
			a = nil
			return ignoreCanceled(err)
		},
	}
	o.addHostFlags(cmd)
	cmd.Flags().IntVar(&o.flags.Zoom, "zoom", o.flags.Zoom, "Initial window size multiplier.")
	return cmd
}

func newHeadlessCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Render on a ticker without a window, optionally saving PNG snapshots.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			var sink *hal.PNGSink
			var present func(hal.Framebuffer) error
			if o.cfg.SnapshotEvery > 0 {
				dir := o.cfg.SnapshotDir
				if dir == "" {
					dir = "stardrift_" + xid.New().String()
				}
				s, err := hal.NewPNGSink(dir, o.cfg.SnapshotEvery)
				if err != nil {
					return err
				}
				sink = s
				present = s.Present
				o.log.Info("writing snapshots", "dir", dir, "every", o.cfg.SnapshotEvery)
			}

			var a *app.App
			atexit.Register(func() { o.logFinal(a) })

			err := hal.RunHeadless(ctx, hal.HeadlessConfig{
				Host:      o.host(present),
				Hz:        o.cfg.Hz,
				Frames:    o.cfg.Frames,
				WallClock: o.cfg.WallClock,
			}, app.Factory(ctx, o.appConfig(), func(created *app.App) { a = created }))
			err = ignoreCanceled(err)

			o.logFinal(a)
			a = nil
			if sink != nil {
				o.log.Info("snapshots written", "count", sink.Written(), "dir", sink.Dir)
			}
			return err
		},
	}
	o.addHostFlags(cmd)
	f := cmd.Flags()
	f.IntVar(&o.flags.Hz, "hz", o.flags.Hz, "Frames per second.")
	f.Uint64Var(&o.flags.Frames, "frames", o.flags.Frames, "Stop after N frames (0 = run until interrupted).")
	f.BoolVar(&o.flags.WallClock, "wall-clock", o.flags.WallClock, "Advance by measured wall time instead of 1/hz.")
	f.StringVar(&o.flags.SnapshotDir, "snapshot-dir", o.flags.SnapshotDir, "Snapshot directory (default stardrift_<id>).")
	f.Uint64Var(&o.flags.SnapshotEvery, "snapshot-every", o.flags.SnapshotEvery, "Save every Nth frame as PNG (0 = never).")
	return cmd
}

// ignoreCanceled treats an interrupt as a clean exit.
func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// logFinal reports the run summary once; a nil app means nothing ran or the
// summary was already logged.
func (o *options) logFinal(a *app.App) {
	if a == nil {
		return
	}
	kv := append(a.Stats().Snapshot().KeyVals(), "time", a.Clock().Now(), "held", a.Clock().Held())
	o.log.Info("run finished", kv...)
}
