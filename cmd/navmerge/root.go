package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	navmesh "github.com/aurelien-rainone/navmesh-merge"
)

var configPath string

// RootCmd is navmerge's entry point: load a "mesh 2" text file, run the
// merge driver to a fixed point, compact, and print the serialized result
// to stdout along with a one-line timing summary on stderr.
var RootCmd = &cobra.Command{
	Use:   "navmerge FILE.mesh",
	Short: "merge a triangulated navmesh into a convex polygon mesh",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := NewSettings()
		if configPath != "" {
			var err error
			settings, err = loadSettings(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		ctx := navmesh.NewContext(true)

		ctx.StartTimer(navmesh.TimerLoad)
		m, err := navmesh.Load(f)
		ctx.StopTimer(navmesh.TimerLoad)
		if err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}
		m.Epsilon = settings.Epsilon

		ctx.StartTimer(navmesh.TimerMerge)
		merges := navmesh.RunMerge(ctx, m)
		ctx.StopTimer(navmesh.TimerMerge)

		ctx.StartTimer(navmesh.TimerCompact)
		navmesh.Compact(m)
		ctx.StopTimer(navmesh.TimerCompact)

		ctx.StartTimer(navmesh.TimerWrite)
		if err := navmesh.ToText(os.Stdout, m); err != nil {
			return err
		}
		ctx.StopTimer(navmesh.TimerWrite)

		fmt.Fprintf(os.Stderr, "%d merges, %d polygons remaining, load=%s merge=%s compact=%s write=%s\n",
			merges, len(m.Polygons),
			ctx.AccumulatedTime(navmesh.TimerLoad),
			ctx.AccumulatedTime(navmesh.TimerMerge),
			ctx.AccumulatedTime(navmesh.TimerCompact),
			ctx.AccumulatedTime(navmesh.TimerWrite),
		)
		if settings.EmitOBJ {
			if err := writeOBJ(args[0]+".obj", m); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML settings file")
}
