package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(voltageCmd)
	voltageCmd.AddCommand(voltageGetCmd, voltageSetpointCmd, voltageSetCmd)
}

var voltageCmd = &cobra.Command{
	Use:   "voltage",
	Short: "voltage commands",
}

var voltageGetCmd = &cobra.Command{
	Use:   "get",
	Short: "measure the input voltage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		v, err := dev.MeasureVoltage()
		if err != nil {
			return err
		}
		fmt.Printf("%g V\n", v)
		return nil
	},
}

var voltageSetpointCmd = &cobra.Command{
	Use:   "setpoint",
	Short: "read the configured CV voltage level",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		v, err := dev.SetpointVoltage()
		if err != nil {
			return err
		}
		fmt.Printf("%g V\n", v)
		return nil
	},
}

var voltageSetCmd = &cobra.Command{
	Use:   "set <volts>",
	Short: "set the CV voltage level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid voltage %q: %w", args[0], err)
		}
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		return dev.SetVoltage(v)
	},
}
