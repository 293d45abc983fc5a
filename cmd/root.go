// Package cmd provides the root command and CLI setup for classidx.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"classidx.dev/pkg/classidx/internal/adapter"
	"classidx.dev/pkg/classidx/internal/controller"
	"classidx.dev/pkg/classidx/internal/domain"
	m "classidx.dev/pkg/classidx/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var declarationParser adapter.DeclarationParser
var workerRunner adapter.WorkerRunnerAdapter
var scanCacheStore adapter.ScanCacheStore

// workflowFactory builds the pipeline for one command invocation.
var workflowFactory = newWorkflow

// outputDirFlag is a root-level flag shared by commands that read/write artifacts.
var outputDirFlag string

// formatFlag selects the artifact encoding.
var formatFlag string

// verboseFlag forces debug logging.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	declarationParser = adapter.NewTreeSitterDeclarationParser()
	workerRunner = adapter.NewLocalWorkerRunnerAdapter()
	scanCacheStore = adapter.NewGobScanCacheStore(fsAdapter)
}

const rootsHelp = `Source roots are scanned in the order given; when two roots declare the
same symbol the first one wins. Without arguments the roots configured
under "roots" in classidx.yaml are used.`

const rootLongDescription = `classidx builds a validated class index for PHP code bases.

Every discovered class, interface, trait and enum is loaded in a disposable
PHP worker; symbols whose file fails to load are excluded from the class map
and reported with the captured error instead of breaking the autoloader.

` + rootsHelp

const buildLongDescription = `Scan source roots, validate every symbol in isolated workers and write
the class index, the hierarchy index and the scan cache.

` + rootsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classidx",
		Short: "Validated class index builder for PHP",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for the class index artifacts",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&formatFlag, formatFlagName, viper.GetString(formatFlagName), "artifact format: json, yaml or php")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newCommandUI picks the TUI only when the command writes to a terminal.
func newCommandUI(cmd *cobra.Command) controller.UI {
	tty := cmd.OutOrStdout() == os.Stdout && controller.IsTTY(os.Stdout)
	return controller.NewUI(cmd, tty)
}

func newWorkflow(cmd *cobra.Command, settings buildSettings) domain.Workflow {
	artifacts := adapter.NewFileArtifactStore(fsAdapter, settings.Format)
	jobs := adapter.NewPHPWorkerJobBuilder(fsAdapter, settings.Worker)

	return domain.NewWorkflow(
		artifacts,
		scanCacheStore,
		newCommandUI(cmd),
		domain.NewDirectoryScanner(fsAdapter, declarationParser),
		domain.NewIsolatedValidator(fsAdapter, workerRunner, jobs, settings.Validator),
		domain.NewHierarchyExtractor(fsAdapter, workerRunner, jobs),
		domain.NewIndexWriter(fsAdapter, artifacts, scanCacheStore, settings.Paths),
		settings.Paths,
	)
}

// artifactPaths places the artifacts of format inside dir. A relative cache
// file is resolved against dir; an empty one disables the scan cache.
func artifactPaths(dir m.Path, format adapter.ArtifactFormat, cacheFile string) domain.ArtifactPaths {
	ext := format.Extension()

	paths := domain.ArtifactPaths{
		ClassIndex: m.Path(filepath.Join(string(dir), classIndexBaseName+ext)),
		Hierarchy:  m.Path(filepath.Join(string(dir), hierarchyBaseName+ext)),
	}

	switch {
	case cacheFile == "":
	case filepath.IsAbs(cacheFile):
		paths.Cache = m.Path(cacheFile)
	default:
		paths.Cache = m.Path(filepath.Join(string(dir), cacheFile))
	}

	return paths
}
