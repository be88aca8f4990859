package cmd

import (
	"fmt"
	"time"

	"github.com/MaticianInc/kel103/pkg/bar"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	flagCount    = "count"
	flagInterval = "interval"
)

var (
	yellow = color.New(color.FgHiYellow).SprintfFunc()
	green  = color.New(color.FgGreen).SprintfFunc()
	cyan   = color.New(color.FgCyan).SprintfFunc()
)

func init() {
	monitorCmd.Flags().IntP(flagCount, "c", 10, "number of samples to take")
	monitorCmd.Flags().DurationP(flagInterval, "i", time.Second, "delay between samples")
	rootCmd.AddCommand(monitorCmd)
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "poll voltage, current and power",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := cmd.Flags().GetInt(flagCount)
		if err != nil {
			return err
		}
		interval, err := cmd.Flags().GetDuration(flagInterval)
		if err != nil {
			return err
		}
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()

		ctx := cmd.Context()
		pb := bar.New(count, "sampling")
		defer pb.Finish()

		var v, a, w float64
		for i := 0; i < count; i++ {
			if i > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(interval):
				}
			}
			if v, err = dev.MeasureVoltage(); err != nil {
				return err
			}
			if a, err = dev.MeasureCurrent(); err != nil {
				return err
			}
			if w, err = dev.MeasurePower(); err != nil {
				return err
			}
			pb.Describe(fmt.Sprintf("%s %s %s",
				yellow("%7.3f V", v), green("%7.3f A", a), cyan("%7.3f W", w)))
			pb.Add(1)
		}
		return nil
	},
}
