package cachecmd

import (
	"context"

	"github.com/allegiancegroup/canto-field/pkg/app"
	"github.com/allegiancegroup/canto-field/pkg/logging"
	"github.com/spf13/cobra"
)

func GetCommands() []*cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the asset cache",
	}

	flushCmd := &cobra.Command{
		Use:   "flush",
		Short: "Drop all cached asset records",
		Long:  `Drop every cached asset and filename lookup, forcing fresh API resolutions`,
		Run: func(cmd *cobra.Command, args []string) {
			flush(cmd, args)
		}}

	cacheCmd.AddCommand(flushCmd)

	return []*cobra.Command{cacheCmd}
}

func flush(cmd *cobra.Command, args []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		logging.Log.Fatal(err)
	}

	application, err := app.Build(configPath)
	if err != nil {
		logging.Log.Fatal(err)
	}

	application.Resolver.ClearCache(context.Background())
}
