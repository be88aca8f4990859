package cmd

import (
	"fmt"
	"strconv"

	"github.com/MaticianInc/kel103"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dynCVCmd, dynCCCmd, dynGetCmd)
}

var dynCVCmd = &cobra.Command{
	Use:   "dyncv <volts1> <volts2> <hz> <duty%>",
	Short: "configure a dynamic constant-voltage profile",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := parseFloats(args)
		if err != nil {
			return err
		}
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		return dev.SetDynamicCV(kel103.DynamicCVProfile{
			Voltage1:  vals[0],
			Voltage2:  vals[1],
			Frequency: vals[2],
			DutyCycle: vals[3],
		})
	},
}

var dynCCCmd = &cobra.Command{
	Use:   "dyncc <slope1> <slope2> <amps1> <amps2> <hz> <duty%>",
	Short: "configure a dynamic constant-current profile (slopes in A/uS)",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := parseFloats(args)
		if err != nil {
			return err
		}
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		return dev.SetDynamicCC(kel103.DynamicCCProfile{
			Slope1:    vals[0],
			Slope2:    vals[1],
			Current1:  vals[2],
			Current2:  vals[3],
			Frequency: vals[4],
			DutyCycle: vals[5],
		})
	},
}

var dynGetCmd = &cobra.Command{
	Use:   "dynget",
	Short: "print the current dynamic mode settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		s, err := dev.DynamicMode()
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}
