package cmd

import (
	"context"
	"log"
	"os"

	"github.com/MaticianInc/kel103"
	"github.com/avast/retry-go"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "keltool",
	Short:        "Korad KEL103 electronic load control",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

const (
	flagPort     = "port"
	flagBaudrate = "baudrate"
)

func init() {
	log.SetFlags(log.Lshortfile | log.LstdFlags)

	pf := rootCmd.PersistentFlags()
	pf.StringP(flagPort, "p", "/dev/ttyACM0", "com-port")
	pf.IntP(flagBaudrate, "b", 9600, "baudrate")
}

func openDevice(cmd *cobra.Command) (*kel103.Device, error) {
	port, err := cmd.Flags().GetString(flagPort)
	if err != nil {
		return nil, err
	}
	baudrate, err := cmd.Flags().GetInt(flagBaudrate)
	if err != nil {
		return nil, err
	}
	var dev *kel103.Device
	err = retry.Do(func() error {
		d, err := kel103.Open(port, baudrate)
		if err != nil {
			return err
		}
		dev = d
		return nil
	},
		retry.Context(cmd.Context()),
		retry.Attempts(2),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("retry #%d: %v", n, err)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return dev, nil
}
