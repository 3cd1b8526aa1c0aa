package assets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/allegiancegroup/canto-field/pkg/app"
	"github.com/allegiancegroup/canto-field/pkg/canto"
	"github.com/allegiancegroup/canto-field/pkg/data"
	"github.com/allegiancegroup/canto-field/pkg/logging"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

func get(cmd *cobra.Command, args []string) {
	application := build(cmd)

	asset, err := application.Resolver.ResolveByID(context.Background(), args[0])
	if err != nil {
		logging.Log.Fatal(err)
	}
	printAsset(asset)
}

func find(cmd *cobra.Command, args []string) {
	application := build(cmd)

	asset, err := application.Resolver.ResolveByFilename(context.Background(), args[0])
	if err != nil {
		logging.Log.Fatal(err)
	}
	printAsset(asset)
}

func search(cmd *cobra.Command, args []string) {
	application := build(cmd)

	keyword := ""
	if len(args) > 0 {
		keyword = args[0]
	}

	result, err := application.Client.Search(context.Background(), data.SearchQuery{
		Keyword:   keyword,
		FileTypes: canto.DefaultFileTypes,
	})
	if err != nil {
		logging.Log.Fatal(err)
	}

	logging.Log.Infof("found %d assets", result.Found)
	for i := range result.Results {
		if asset := canto.Normalize(&result.Results[i], application.Config); asset != nil {
			logging.Log.Infof("%s  %s  %s", asset.ID, asset.Scheme, asset.Filename)
		}
	}
}

func open(cmd *cobra.Command, args []string) {
	application := build(cmd)

	asset, err := application.Resolver.Resolve(context.Background(), args[0])
	if err != nil {
		logging.Log.Fatal(err)
	}

	target := asset.URL
	if target == "" {
		target = asset.Thumbnail
	}

	if err := browser.OpenURL(target); err != nil {
		logging.Log.Fatal("could not call browser")
	}
}

func build(cmd *cobra.Command) *app.App {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		logging.Log.Fatal(err)
	}

	application, err := app.Build(configPath)
	if err != nil {
		logging.Log.Fatal(err)
	}
	return application
}

func printAsset(asset *data.Asset) {
	b, err := json.MarshalIndent(asset, "", "  ")
	if err != nil {
		logging.Log.Fatal(err)
	}
	fmt.Println(string(b))
}
