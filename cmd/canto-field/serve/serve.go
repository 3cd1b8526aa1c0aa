package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/allegiancegroup/canto-field/pkg/app"
	"github.com/allegiancegroup/canto-field/pkg/logging"
	"github.com/allegiancegroup/canto-field/pkg/server"
	"github.com/spf13/cobra"
)

func GetCommands() []*cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sidecar HTTP server",
		Long:  `Serve the asset picker AJAX actions and the thumbnail proxy`,
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args)
		}}

	return []*cobra.Command{serveCmd}
}

func run(cmd *cobra.Command, args []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		logging.Log.Fatal(err)
	}

	application, err := app.Build(configPath)
	if err != nil {
		logging.Log.Fatal(err)
	}

	if !application.Config.IsConfigured() {
		for _, message := range application.Config.ConfigErrors() {
			logging.Log.Warn(message)
		}
	}

	srv := server.New(application.Config, application.Client, application.Resolver)

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			logging.Log.Fatal(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logging.Log.Info("shutting down")
}
