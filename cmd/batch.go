package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tabvox/tabvox/constants"
	"github.com/tabvox/tabvox/convert"
	"github.com/tabvox/tabvox/util"
	"github.com/tabvox/tabvox/worker"
)

var (
	batchMax     int
	batchWorkers int
)

func init() {
	rootCmd.AddCommand(batchCmd)
	registerSettingsFlags(batchCmd)
	batchCmd.Flags().IntVar(&batchMax, "max", 0, "max number of files to convert (0 = all)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "number of parallel conversions")
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Converts every tab file under a directory",
	Long:  `Converts every .txt and .tab file under a directory in parallel`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBatch(args[0])
	},
}

func runBatch(dir string) {
	outDir := constants.GetOutDir()
	util.RecreateOutputDir(outDir)

	paths := util.GatherAllTabPaths(dir, batchMax)
	if len(paths) == 0 {
		log.Fatal().Str("dir", dir).Msg("no .txt or .tab files found")
	}

	jobID := uuid.New().String()
	settings := settingsFromFlags()
	log.Info().Str("job", jobID).Int("files", len(paths)).Msg("starting batch")

	pool := worker.NewPool(batchWorkers, func(ctx context.Context, path string) (int, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, err
		}
		out, err := convert.Convert(string(data), settings)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".speech.txt"
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(out+"\n"), 0666); err != nil {
			return 0, err
		}
		return len(out), nil
	})

	jobs := pool.Run(context.Background(), paths)

	var sizes []int
	var failed int
	for _, job := range jobs {
		if job.Err != nil {
			failed++
			continue
		}
		sizes = append(sizes, job.Result)
	}
	log.Info().
		Str("job", jobID).
		Int("converted", len(jobs)-failed).
		Int("failed", failed).
		Uint64("bytes", util.Sum(sizes)).
		Str("out", outDir).
		Msg("batch finished")
}
