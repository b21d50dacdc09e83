package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tabvox/tabvox/convert"
)

const (
	watchPollInterval = 250 * time.Millisecond
	watchSettle       = 500 * time.Millisecond
)

func init() {
	rootCmd.AddCommand(watchCmd)
	registerSettingsFlags(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-converts a tab file whenever it changes",
	Long:  `Re-converts a tab file whenever it changes`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWatch(args[0])
	},
}

func runWatch(path string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := settingsFromFlags()
	reconvert := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("could not read file")
			return
		}
		out, err := convert.Convert(string(data), settings)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("conversion failed")
			return
		}
		fmt.Println(out)
		fmt.Println("---")
	}

	st, err := os.Stat(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("could not stat file")
	}
	lastMod := st.ModTime()
	reconvert()

	// editors often write in bursts; coalesce before reconverting
	debounced := debounce.New(watchSettle)
	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st, err := os.Stat(path)
			if err != nil {
				log.Warn().Err(err).Str("file", path).Msg("could not stat file")
				continue
			}
			if st.ModTime().After(lastMod) {
				lastMod = st.ModTime()
				debounced(reconvert)
			}
		}
	}
}
