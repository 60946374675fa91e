// cmd/build.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Bitlatte/splash/internal/build"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the landing page into the output directory",
	Long: `The build command reads the site configuration, loads section content
from './content/' (falling back to the built-in content), copies static assets
from './static/' and writes index.html and users.html for the default
language and for every configured language into the output directory
(default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		builder, err := build.New(appConfig, log)
		if err != nil {
			return err
		}
		return builder.Build(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
