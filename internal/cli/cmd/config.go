package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/deskutil/internal/cli/styles"
	"github.com/bnema/deskutil/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	Long:  `Show the config file location, the resolved settings, or the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		_, err := os.Stat(app.ConfigFile)
		renderer := styles.NewConfigRenderer(app.Theme)
		fmt.Println(renderer.RenderPath(app.ConfigFile, !errors.Is(err, fs.ErrNotExist)))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved settings",
	Long:  `Print the configuration after defaults, the config file and DESKUTIL_* variables are merged.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		renderer := styles.NewConfigRenderer(app.Theme)
		if app.ConfigErr != nil {
			fmt.Println(renderer.RenderError(app.ConfigErr))
		}

		doc, err := config.Document(app.Config)
		if err != nil {
			return err
		}
		fmt.Println(renderer.RenderSettings(app.ConfigFile, string(doc)))
		return nil
	},
}

var schemaWrite bool

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the config JSON schema",
	Long: `Print the JSON schema of config.toml, or write it next to the config file
with --write so editors can validate it.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}

		if schemaWrite {
			path, err := config.WriteSchemaFile(app.ConfigFile)
			if err != nil {
				return err
			}
			fmt.Println(styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
			return nil
		}

		schema, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(schema, '\n'))
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&schemaWrite, "write", false, "write config.schema.json next to the config file")
}
