package main

import (
	"os"

	"github.com/allegiancegroup/canto-field/cmd/canto-field/assets"
	"github.com/allegiancegroup/canto-field/cmd/canto-field/cachecmd"
	"github.com/allegiancegroup/canto-field/cmd/canto-field/serve"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "canto-field",
		Short: "Canto asset field sidecar",
	}
)

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "canto-field.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serve.GetCommands()...)
	rootCmd.AddCommand(assets.GetCommands()...)
	rootCmd.AddCommand(cachecmd.GetCommands()...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
