package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"classidx.dev/pkg/classidx/internal/adapter"
	"classidx.dev/pkg/classidx/internal/controller"
	m "classidx.dev/pkg/classidx/internal/model"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [classmap]",
		Short: "Show a previously built class index",
		Long: `Print the symbol count of a class index written by "classidx build" and
list every excluded symbol with the first line of its error. Without arguments the index in the output directory is read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := adapter.ParseArtifactFormat(viper.GetString(formatFlagName))
			if err != nil {
				return err
			}

			path := artifactPaths(m.Path(viper.GetString(outputFlagName)), format, "").ClassIndex
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			cmd.SilenceUsage = true

			index, err := adapter.NewFileArtifactStore(fsAdapter, format).LoadClassIndex(cmd.Context(), path)
			if err != nil {
				return err
			}

			controller.NewUI(cmd, false).DisplayClassIndex(cmd.Context(), path, index)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
