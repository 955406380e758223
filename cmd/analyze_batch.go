package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/datalens-cli/internal/logging"
	"github.com/KaramelBytes/datalens-cli/internal/utils"
)

var (
	abFlags  profileFlags
	abOutDir string
	abQuiet  bool
)

var analyzeBatchCmd = &cobra.Command{
	Use:   "analyze-batch <files...>",
	Short: "Profile multiple CSV/TSV/XLSX files, writing one profile per input",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := utils.ExpandPaths(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		in, opt, format, err := abFlags.resolve(cmd)
		if err != nil {
			return err
		}
		outDir := abOutDir
		if outDir == "" && cfg != nil {
			outDir = cfg.OutputDir
		}

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		taken := make(map[string]bool, len(files))
		var failed int
		total := len(files)
		for i, path := range files {
			log := logging.WithFields(ctx, "file", path, "index", i+1, "total", total)
			if !abQuiet {
				fmt.Fprintf(out, "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			doc, err := profileFile(ctx, path, in, opt)
			var b []byte
			if err == nil {
				b, err = encode(doc, format)
			}
			if err != nil {
				failed++
				log.Error("profiling failed", "error", err)
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", filepath.Base(path), err)
				continue
			}

			dir := outDir
			if dir == "" {
				dir = filepath.Dir(path)
			}
			base := filepath.Base(path)
			stem := strings.TrimSuffix(base, filepath.Ext(base))
			target := filepath.Join(dir, stem+".profile."+format)
			unique := utils.UniquePath(target, taken)
			if unique != target && !abQuiet {
				fmt.Fprintf(out, "⚠ Detected existing profile, writing to %s to avoid overwrite.\n", filepath.Base(unique))
			}
			if err := utils.SafeWriteFile(unique, b); err != nil {
				return err
			}
			taken[unique] = true
			log.Info("profile written", "output", unique, "rows", doc.Profile.Shape.Rows)
			if !abQuiet {
				fmt.Fprintf(out, "✓ Wrote %s\n", unique)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, total)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeBatchCmd)
	abFlags.register(analyzeBatchCmd)
	analyzeBatchCmd.Flags().StringVar(&abOutDir, "out-dir", "", "directory for profile files (default: config output_dir, else next to each input)")
	analyzeBatchCmd.Flags().BoolVar(&abQuiet, "quiet", false, "suppress progress and non-essential output")
}
