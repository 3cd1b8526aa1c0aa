package assets

import "github.com/spf13/cobra"

func GetCommands() []*cobra.Command {
	assetCmd := &cobra.Command{
		Use:   "asset",
		Short: "Look up Canto assets",
		Long:  `Resolve and inspect Canto assets from the command line`,
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch an asset by id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get(cmd, args)
		}}

	findCmd := &cobra.Command{
		Use:   "find <filename>",
		Short: "Resolve a stored filename to an asset",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			find(cmd, args)
		}}

	searchCmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search the Canto library",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			search(cmd, args)
		}}

	openCmd := &cobra.Command{
		Use:   "open <id|filename>",
		Short: "Open an asset preview in the browser",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			open(cmd, args)
		}}

	assetCmd.AddCommand(getCmd, findCmd, searchCmd, openCmd)

	return []*cobra.Command{assetCmd}
}
