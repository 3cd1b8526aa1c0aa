package main

import (
	"github.com/allegiancegroup/canto-field/pkg/logging"
	"github.com/spf13/cobra"
)

const version = "2.1.0"

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the sidecar version",
		Run: func(cmd *cobra.Command, args []string) {
			logging.Log.Infof("canto-field %s", version)
		}})
}
