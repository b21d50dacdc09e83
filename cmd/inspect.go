package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tabvox/tabvox/detect"
	"github.com/tabvox/tabvox/model"
	"github.com/tabvox/tabvox/tab"
	"github.com/tabvox/tabvox/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Shows how each line of a tab file is classified",
	Long:  `Shows how each line of a tab file is classified`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

func inspect(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("could not read file")
	}
	text := string(data)

	fmt.Printf("format: %v\n\n", detect.DetectFormat(text))

	counts := make(map[model.AnnotationCategory]int)
	for i, line := range detect.SplitLines(text) {
		var kind string
		switch {
		case strings.TrimSpace(line) == "":
			kind = "blank"
		case detect.IsLabeledTabLine(line):
			kind = "tab (labeled)"
		case detect.IsStandardTabLine(line):
			kind = "tab"
		case detect.IsChordLine(line):
			kind = "chord"
		case detect.IsTechniqueLegendLine(line):
			kind = "legend"
		default:
			cat := tab.Categorize(strings.TrimSpace(line))
			counts[cat]++
			kind = "annotation/" + string(cat)
		}
		fmt.Printf("%4d  %-22s %s\n", i+1, kind, line)
	}

	if len(counts) > 0 {
		fmt.Println()
		for _, cat := range util.GetKeysSorted(counts) {
			fmt.Printf("%v: %v\n", cat, counts[cat])
		}
	}
}
