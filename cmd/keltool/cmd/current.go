package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(currentCmd)
	currentCmd.AddCommand(currentGetCmd, currentSetpointCmd, currentSetCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "current commands",
}

var currentGetCmd = &cobra.Command{
	Use:   "get",
	Short: "measure the input current",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		a, err := dev.MeasureCurrent()
		if err != nil {
			return err
		}
		fmt.Printf("%g A\n", a)
		return nil
	},
}

var currentSetpointCmd = &cobra.Command{
	Use:   "setpoint",
	Short: "read the configured CC current level",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		a, err := dev.SetpointCurrent()
		if err != nil {
			return err
		}
		fmt.Printf("%g A\n", a)
		return nil
	},
}

var currentSetCmd = &cobra.Command{
	Use:   "set <amps>",
	Short: "set the CC current level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid current %q: %w", args[0], err)
		}
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		return dev.SetCurrent(a)
	},
}
