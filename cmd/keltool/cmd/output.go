package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(outputCmd)
	outputCmd.AddCommand(outputGetCmd, outputOnCmd, outputOffCmd)
}

var outputCmd = &cobra.Command{
	Use:   "output",
	Short: "load input on/off control",
}

var outputGetCmd = &cobra.Command{
	Use:   "get",
	Short: "report whether the load input is enabled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		on, err := dev.OutputEnabled()
		if err != nil {
			return err
		}
		if on {
			fmt.Println("ON")
		} else {
			fmt.Println("OFF")
		}
		return nil
	},
}

var outputOnCmd = &cobra.Command{
	Use:   "on",
	Short: "enable the load input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setOutput(cmd, true)
	},
}

var outputOffCmd = &cobra.Command{
	Use:   "off",
	Short: "disable the load input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setOutput(cmd, false)
	},
}

func setOutput(cmd *cobra.Command, on bool) error {
	dev, err := openDevice(cmd)
	if err != nil {
		return err
	}
	defer dev.Close()
	return dev.SetOutput(on)
}
