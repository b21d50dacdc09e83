package model

type ConvertRequestBody struct {
	Text     string        `json:"text"`
	Settings *SettingsBody `json:"settings"`
}

// SettingsBody uses pointer booleans so the server can tell an omitted key
// from an explicit false. Omitted keys default to true.
type SettingsBody struct {
	IncludeTiming           *bool `json:"include_timing"`
	VerboseMode             *bool `json:"verbose_mode"`
	UseStringNames          *bool `json:"use_string_names"`
	IncludeTechniqueDetails *bool `json:"include_technique_details"`
}

func (s *SettingsBody) Resolve() Settings {
	res := DefaultSettings()
	if s == nil {
		return res
	}
	if s.IncludeTiming != nil {
		res.IncludeTiming = *s.IncludeTiming
	}
	if s.VerboseMode != nil {
		res.VerboseMode = *s.VerboseMode
	}
	if s.UseStringNames != nil {
		res.UseStringNames = *s.UseStringNames
	}
	if s.IncludeTechniqueDetails != nil {
		res.IncludeTechniqueDetails = *s.IncludeTechniqueDetails
	}
	return res
}

type ConvertResponse struct {
	Format string `json:"format"`
	Output string `json:"output"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
