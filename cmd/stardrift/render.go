package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stardrift/field"
	"stardrift/hal"
)

func newRenderCmd(o *options) *cobra.Command {
	var (
		at  float64
		out string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame at a given animation time to a PNG file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := o.cfg.Resolution()
			frame, err := field.RenderFrame(cmd.Context(), res, at, field.WithWorkers(o.cfg.Workers))
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if err := hal.WritePNG(out, frame.ToRGBA(o.cfg.EncodingValue())); err != nil {
				return err
			}
			o.log.Info("frame written", "path", out, "resolution", res.String(), "time", at)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&at, "time", 0, "Animation time in seconds.")
	f.StringVarP(&out, "out", "o", "stardrift.png", "Output PNG path.")
	return cmd
}

func newLayersCmd(o *options) *cobra.Command {
	var at float64
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Print depth, scale and fade of every layer at a given time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layers, err := field.LayersAt(at)
			if err != nil {
				return fmt.Errorf("layers: %w", err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-5s %-7s %-7s %-8s %-7s\n", "LAYER", "OFFSET", "DEPTH", "SCALE", "FADE")
			for _, l := range layers {
				fmt.Fprintf(w, "%-5d %-7.4f %-7.4f %-8.4f %-7.4f\n", l.Index, l.Offset, l.Depth, l.Scale, l.Fade)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "time", 0, "Animation time in seconds.")
	return cmd
}
