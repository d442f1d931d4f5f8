package composition

// Gradient kinds used by background presets.
const (
	GradientSolid  = "solid"
	GradientLinear = "linear"
	GradientRadial = "radial"
)

// BackgroundPreset describes one entry in the fixed background table.
type BackgroundPreset struct {
	Name string `json:"name"`

	// Kind is GradientSolid, GradientLinear or GradientRadial.
	Kind string `json:"type"`

	// Colors are hex stops ("#RRGGBB"). Solid presets use the first color;
	// gradients distribute the stops evenly.
	Colors []string `json:"colors"`

	// Angle is the linear gradient direction in degrees. Unused otherwise.
	Angle float64 `json:"angle,omitempty"`
}

// DefaultBackgroundPresetID is the preset used when none (or an unknown one)
// is selected.
const DefaultBackgroundPresetID = "sky"

// BackgroundPresets is the fixed table of built-in canvas backgrounds.
var BackgroundPresets = map[string]BackgroundPreset{
	"sky":      {Name: "Sky", Kind: GradientLinear, Colors: []string{"#4A90D9", "#1E3A5F"}, Angle: 135},
	"sunset":   {Name: "Sunset", Kind: GradientRadial, Colors: []string{"#FF6B6B", "#4A154B"}},
	"ocean":    {Name: "Ocean", Kind: GradientLinear, Colors: []string{"#00A99D", "#1A4068"}, Angle: 135},
	"forest":   {Name: "Forest", Kind: GradientLinear, Colors: []string{"#2D5016", "#0F2027"}, Angle: 180},
	"lavender": {Name: "Lavender", Kind: GradientLinear, Colors: []string{"#667EEA", "#764BA2"}, Angle: 135},
	"midnight": {Name: "Midnight", Kind: GradientLinear, Colors: []string{"#0F2027", "#203A43"}, Angle: 180},
	"slate":    {Name: "Slate", Kind: GradientSolid, Colors: []string{"#374151"}},
	"snow":     {Name: "Snow", Kind: GradientSolid, Colors: []string{"#F9FAFB"}},
}

// PlatformPreset is a named fixed output size, typically a social-media
// target.
type PlatformPreset struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// PlatformPresets is the fixed table of named output sizes.
var PlatformPresets = map[string]PlatformPreset{
	"twitter":   {Name: "Twitter", Width: 1200, Height: 675},
	"facebook":  {Name: "Facebook", Width: 1200, Height: 630},
	"instagram": {Name: "Instagram", Width: 1080, Height: 1080},
	"linkedin":  {Name: "LinkedIn", Width: 1200, Height: 627},
	"youtube":   {Name: "YouTube", Width: 1280, Height: 720},
	"pinterest": {Name: "Pinterest", Width: 1000, Height: 1500},
	"reddit":    {Name: "Reddit", Width: 1200, Height: 628},
	"snapchat":  {Name: "Snapchat", Width: 1080, Height: 1920},
}

// RatioPreset is a named aspect ratio for UI pickers. Ratio is nil for the
// content-driven "auto" entry.
type RatioPreset struct {
	Name  string  `json:"name"`
	Ratio *[2]int `json:"ratio,omitempty"`
}

// RatioPresets is the fixed table of named aspect ratios.
var RatioPresets = map[string]RatioPreset{
	"auto": {Name: "Auto"},
	"1:1":  {Name: "1:1", Ratio: &[2]int{1, 1}},
	"4:3":  {Name: "4:3", Ratio: &[2]int{4, 3}},
	"3:2":  {Name: "3:2", Ratio: &[2]int{3, 2}},
	"16:9": {Name: "16:9", Ratio: &[2]int{16, 9}},
	"21:9": {Name: "21:9", Ratio: &[2]int{21, 9}},
}
