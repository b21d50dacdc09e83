package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tabvox/tabvox/convert"
)

func init() {
	rootCmd.AddCommand(convertCmd)
	registerSettingsFlags(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Converts one tab file (or stdin) to accessible text",
	Long:  `Converts one tab file (or stdin) to accessible text`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runConvert(args)
	},
}

func runConvert(args []string) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("could not read input")
	}

	out, err := convert.Convert(string(data), settingsFromFlags())
	if err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
	fmt.Println(out)
}
