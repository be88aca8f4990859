package cmd

import (
	"github.com/MaticianInc/kel103"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(modeCmd)
	modeCmd.AddCommand(
		modeCommand("cc", "constant current mode", (*kel103.Device).SetConstantCurrent),
		modeCommand("cv", "constant voltage mode", (*kel103.Device).SetConstantVoltage),
		modeCommand("cw", "constant power mode", (*kel103.Device).SetConstantPower),
		modeCommand("cr", "constant resistance mode", (*kel103.Device).SetConstantResistance),
	)
}

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "switch regulation mode (not verified, the instrument has no mode query)",
}

func modeCommand(use, short string, set func(*kel103.Device) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := openDevice(cmd)
			if err != nil {
				return err
			}
			defer dev.Close()
			return set(dev)
		},
	}
}
