package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/resume-adapter/pkg/config"
	"github.com/nikogura/resume-adapter/pkg/schema"
)

//nolint:gochecknoglobals // Cobra boilerplate
var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List available template names",
	RunE:  runSchemas,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(schemasCmd)
}

func runSchemas(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	var table schema.Table
	table, err = schema.Load(cfg.SchemasLocation)
	if err != nil {
		return err
	}

	for _, name := range table.Names() {
		fmt.Println(name)
	}

	return err
}
