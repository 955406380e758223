package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/datalens-cli/internal/logging"
	"github.com/KaramelBytes/datalens-cli/internal/utils"
)

var (
	anaFlags      profileFlags
	anaOutputPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Profile a CSV/TSV/XLSX file and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		in, opt, format, err := anaFlags.resolve(cmd)
		if err != nil {
			return err
		}
		doc, err := profileFile(cmd.Context(), path, in, opt)
		if err != nil {
			return err
		}
		b, err := encode(doc, format)
		if err != nil {
			return err
		}
		if anaOutputPath != "" {
			if err := utils.SafeWriteFile(anaOutputPath, b); err != nil {
				return err
			}
			logging.WithFields(cmd.Context(), "file", path).Info("profile written", "output", anaOutputPath)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote profile to %s\n", anaOutputPath)
			return nil
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	anaFlags.register(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "write the profile to this file instead of stdout")
}
