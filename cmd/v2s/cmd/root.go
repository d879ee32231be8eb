package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"voice2site/cmd/v2s/cmd/generate"
	"voice2site/cmd/v2s/cmd/serve"
	"voice2site/cmd/v2s/cmd/version"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "v2s",
	Short: "Generate a single-page business website from a voice recording or a description",
	Long: `Generate a single-page business website from a voice recording or a description.
- A WAV recording is transcribed, then a language model extracts the business name,
  type, style and services, and a themed HTML page is rendered from them
- Run "v2s serve" for the HTTP API or "v2s generate" for a one-off page`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default is ./voice2site.yaml when present)")
}
