// Package main provides the CLI entrypoint for schema-composer.
//
// schema-composer is a batch schema-transformation tool that:
//   - Reclassifies flat, repeated field groups into shared component references
//   - Keeps identity-like fields direct (they carry typed identifiers)
//   - Rewrites scalar identifier fields into typed-identifier references
//   - Supports a dry-run preview that performs no writes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"schema-composer/internal/config"
	"schema-composer/internal/driver"
	"schema-composer/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		schemaRoot string
	)

	cmd := &cobra.Command{
		Use:   "schema-composer",
		Short: "Compose flat schema documents into shared component references",
		Long: `schema-composer rewrites JSON Schema documents so that configured
field groups collapse behind shared component references, while
identity-like fields stay direct. It also rewrites scalar identifier
fields into typed-identifier references.

All transformations are idempotent and byte-stable: re-running against
unchanged inputs produces identical files, so results stay diffable.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "schema-composer.yaml", "configuration file")
	cmd.PersistentFlags().StringVarP(&schemaRoot, "schema-root", "r", ".", "schema repository root directory")

	cmd.AddCommand(composeCmd(&configPath, &schemaRoot))
	cmd.AddCommand(typedRefsCmd(&configPath, &schemaRoot))
	cmd.AddCommand(listCmd(&schemaRoot))

	return cmd
}

func composeCmd(configPath, schemaRoot *string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Absorb grouped fields behind component references",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, *configPath, *schemaRoot, dryRun, (*driver.Driver).Compose)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing any document")

	return cmd
}

func typedRefsCmd(configPath, schemaRoot *string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "typed-refs",
		Short: "Replace scalar identifier fields with typed references",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, *configPath, *schemaRoot, dryRun, (*driver.Driver).RewriteTypedRefs)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing any document")

	return cmd
}

func runPipeline(cmd *cobra.Command, configPath, schemaRoot string, dryRun bool, run func(*driver.Driver, driver.Mode) *driver.Report) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	st, err := store.NewDir(schemaRoot)
	if err != nil {
		return err
	}

	drv, err := driver.New(st, cfg)
	if err != nil {
		return err
	}

	mode := driver.ModeApply
	if dryRun {
		mode = driver.ModePreview
	}

	report := run(drv, mode)
	report.Render(cmd.OutOrStdout())

	if report.Failed() {
		return fmt.Errorf("%d document(s) failed", len(report.Diags.Errors))
	}

	return nil
}

func listCmd(schemaRoot *string) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schema documents under the repository root",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.NewDir(*schemaRoot)
			if err != nil {
				return err
			}

			names, err := st.List(pattern)
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "**/*.schema.json", "doublestar glob matched against the root")

	return cmd
}
