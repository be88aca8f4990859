package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(powerCmd)
	powerCmd.AddCommand(powerGetCmd, powerSetpointCmd, powerSetCmd)
}

var powerCmd = &cobra.Command{
	Use:   "power",
	Short: "power commands",
}

var powerGetCmd = &cobra.Command{
	Use:   "get",
	Short: "measure the input power",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		w, err := dev.MeasurePower()
		if err != nil {
			return err
		}
		fmt.Printf("%g W\n", w)
		return nil
	},
}

var powerSetpointCmd = &cobra.Command{
	Use:   "setpoint",
	Short: "read the configured CW power level",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		w, err := dev.SetpointPower()
		if err != nil {
			return err
		}
		fmt.Printf("%g W\n", w)
		return nil
	},
}

var powerSetCmd = &cobra.Command{
	Use:   "set <watts>",
	Short: "set the CW power level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid power %q: %w", args[0], err)
		}
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		return dev.SetPower(w)
	},
}
