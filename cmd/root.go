package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tabvox",
	Short: "Guitar tablature to screen-reader text",
	Long:  `Converts chord charts and guitar tablature into sequential text a screen reader can speak.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(func() {
		godotenv.Load()
	})
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
