package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/resume-adapter/pkg/config"
	"github.com/nikogura/resume-adapter/pkg/renderer"
	"github.com/nikogura/resume-adapter/pkg/schema"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration",
	Long: `Create a default configuration file, schema table, and templates under
$HOME/.resume-adapter (or next to the path given with --config).

Edit the config afterwards to set your API key, or export OPENAI_API_KEY.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	configPath := getConfigFile()
	if configPath == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		configPath = filepath.Join(homeDir, ".resume-adapter", "config.json")
	}

	err = config.InitConfig(configPath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)

	err = schema.WriteDefault(filepath.Join(dir, "schemas.yaml"))
	if err != nil {
		return err
	}

	err = renderer.WriteDefaultTemplates(filepath.Join(dir, "templates"))
	if err != nil {
		return err
	}

	fmt.Printf("Created config: %s\n", configPath)
	fmt.Printf("Created schemas: %s\n", filepath.Join(dir, "schemas.yaml"))
	fmt.Printf("Created templates: %s\n", filepath.Join(dir, "templates"))

	return err
}
