package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tabvox/tabvox/model"
)

var (
	compactFlag       bool
	noTimingFlag      bool
	stringNumbersFlag bool
	noTechniqueFlag   bool
)

func registerSettingsFlags(c *cobra.Command) {
	c.Flags().BoolVar(&compactFlag, "compact", false, "terse output instead of full sentences")
	c.Flags().BoolVar(&noTimingFlag, "no-timing", false, "skip the tab information block")
	c.Flags().BoolVar(&stringNumbersFlag, "string-numbers", false, "refer to strings by number instead of name")
	c.Flags().BoolVar(&noTechniqueFlag, "no-technique-details", false, "drop technique descriptions")
}

func settingsFromFlags() model.Settings {
	s := model.DefaultSettings()
	s.VerboseMode = !compactFlag
	s.IncludeTiming = !noTimingFlag
	s.UseStringNames = !stringNumbersFlag
	s.IncludeTechniqueDetails = !noTechniqueFlag
	return s
}
