package model

// Settings controls how parsed music is rendered. All fields default to true.
type Settings struct {
	IncludeTiming           bool
	VerboseMode             bool
	UseStringNames          bool
	IncludeTechniqueDetails bool
}

func DefaultSettings() Settings {
	return Settings{
		IncludeTiming:           true,
		VerboseMode:             true,
		UseStringNames:          true,
		IncludeTechniqueDetails: true,
	}
}
