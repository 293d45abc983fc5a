package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"classidx.dev/pkg/classidx/internal/adapter"
	"classidx.dev/pkg/classidx/internal/domain"
	m "classidx.dev/pkg/classidx/internal/model"
)

// errNestedBuild is returned when classidx is started by one of its own workers.
var errNestedBuild = errors.New("refusing to build from inside a running class index build")

// errNoRoots is returned when neither arguments nor config name a source root.
var errNoRoots = errors.New("no source roots: pass directories or configure roots in " + configFileName)

var noCacheFlag bool
var diffFlag bool
var excludePatterns []string
var parallelFlag int
var batchSizeFlag int
var maxPassesFlag int
var bootstrapFlag string
var phpFlag string

// buildSettings is the resolved configuration of one build.
type buildSettings struct {
	Args      domain.BuildArgs
	Format    adapter.ArtifactFormat
	Paths     domain.ArtifactPaths
	Validator domain.ValidatorConfig
	Worker    adapter.PHPWorkerConfig
}

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [roots...]",
		Short: "Build and validate the class index",
		Long:  buildLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv(adapter.RunningEnvVar) != "" {
				return errNestedBuild
			}

			settings, err := resolveBuildSettings(args)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = workflowFactory(cmd, settings).Build(ctx, settings.Args)

			return err
		},
	}

	configureBuildFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// configureBuildFlags registers the build flags. buildCmd is created before
// the viper defaults exist, so flag defaults use the constants directly.
func configureBuildFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&noCacheFlag, noCacheFlagName, defaultNoCache, "ignore the scan cache and parse every file again")
	bindFlagToConfig(cmd.Flags().Lookup(noCacheFlagName), noCacheFlagName)

	cmd.Flags().BoolVar(&diffFlag, diffFlagName, defaultDiff, "show class map changes against the previous class index")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), diffFlagName)

	cmd.Flags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", []string{adapter.DefaultExcludePattern}, "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", defaultValidateWorkers, "number of concurrent validation workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), validateParallelKey)

	cmd.Flags().IntVar(&batchSizeFlag, batchSizeFlagName, defaultBatchSize, "symbols per validation batch (0 = one batch)")
	bindFlagToConfig(cmd.Flags().Lookup(batchSizeFlagName), validateBatchSizeKey)

	cmd.Flags().IntVar(&maxPassesFlag, maxPassesFlagName, defaultMaxPasses, "maximum validation passes (0 = symbols + 1)")
	bindFlagToConfig(cmd.Flags().Lookup(maxPassesFlagName), validateMaxPassesKey)

	cmd.Flags().Duration(workerTimeoutFlagName, defaultWorkerTimeout, "kill a worker running longer than this (0 = no limit)")
	bindFlagToConfig(cmd.Flags().Lookup(workerTimeoutFlagName), workerTimeoutKey)

	cmd.Flags().StringVar(&bootstrapFlag, bootstrapFlagName, "", "PHP file required by workers before loading symbols")
	bindFlagToConfig(cmd.Flags().Lookup(bootstrapFlagName), workerBootstrapKey)

	cmd.Flags().StringVar(&phpFlag, phpFlagName, adapter.DefaultPHPBinary, "PHP interpreter used for workers")
	bindFlagToConfig(cmd.Flags().Lookup(phpFlagName), workerBinaryKey)
}

func resolveBuildSettings(args []string) (buildSettings, error) {
	format, err := adapter.ParseArtifactFormat(viper.GetString(formatFlagName))
	if err != nil {
		return buildSettings{}, err
	}

	roots, err := resolveRoots(args, joinPatterns(viper.GetStringSlice(excludeConfigKey)))
	if err != nil {
		return buildSettings{}, err
	}

	timeout := viper.GetDuration(workerTimeoutKey)
	if timeout < 0 {
		return buildSettings{}, fmt.Errorf("invalid %s: %s", workerTimeoutFlagName, timeout)
	}

	return buildSettings{
		Args: domain.BuildArgs{
			Roots:    roots,
			UseCache: !viper.GetBool(noCacheFlagName),
			Diff:     viper.GetBool(diffFlagName),
		},
		Format: format,
		Paths:  artifactPaths(m.Path(viper.GetString(outputFlagName)), format, viper.GetString(cacheFileKey)),
		Validator: domain.ValidatorConfig{
			Parallel:  viper.GetInt(validateParallelKey),
			BatchSize: viper.GetInt(validateBatchSizeKey),
			MaxPasses: viper.GetInt(validateMaxPassesKey),
		},
		Worker: adapter.PHPWorkerConfig{
			Binary:    viper.GetString(workerBinaryKey),
			Args:      viper.GetStringSlice(workerArgsKey),
			Bootstrap: m.Path(viper.GetString(workerBootstrapKey)),
			Timeout:   timeout,
		},
	}, nil
}

// resolveRoots prefers command line roots over configured ones. exclude
// applies to every root that has no exclusion of its own.
func resolveRoots(args []string, exclude string) ([]m.SourceRoot, error) {
	var roots []m.SourceRoot

	if len(args) > 0 {
		for _, arg := range args {
			roots = append(roots, m.SourceRoot{Dir: m.Path(arg)})
		}
	} else {
		configured, err := configuredRoots()
		if err != nil {
			return nil, err
		}

		roots = configured
	}

	if len(roots) == 0 {
		return nil, errNoRoots
	}

	for i := range roots {
		if roots[i].Exclude == "" {
			roots[i].Exclude = exclude
		}
	}

	return roots, nil
}
