package composition

import "encoding/json"

// Inset modes.
const (
	InsetModeManual  = "manual"
	InsetModeBalance = "balance"
)

// Background types.
const (
	BackgroundTypePreset = "preset"
	BackgroundTypeImage  = "image"
)

// Output modes.
const (
	OutputModeAutoRatio  = "autoRatio"
	OutputModeFixedRatio = "fixedRatio"
	OutputModeFixedSize  = "fixedSize"
	OutputModePlatform   = "platform"
)

// InsetValues holds per-edge inset pixels in the compact persisted form.
type InsetValues struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// ShadowLayer is a single CSS-style shadow layer. Blur is the blur extent in
// pixels, Spread expands (positive) or contracts (negative) the shadow's
// source shape, OffsetY moves it vertically, and Opacity is the layer's base
// opacity before the shadow strength is applied.
type ShadowLayer struct {
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
	OffsetY float64 `json:"offset_y"`
	Opacity float64 `json:"opacity"`
}

// UnmarshalJSON fills unspecified layer fields with the primary-layer
// defaults so partially specified layers round-trip sensibly.
func (l *ShadowLayer) UnmarshalJSON(data []byte) error {
	*l = ShadowLayer{Blur: 28, Spread: -8, OffsetY: 18, Opacity: 0.18}
	var raw struct {
		Blur    *float64 `json:"blur"`
		Spread  *float64 `json:"spread"`
		OffsetY *float64 `json:"offset_y"`
		Opacity *float64 `json:"opacity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Blur != nil {
		l.Blur = *raw.Blur
	}
	if raw.Spread != nil {
		l.Spread = *raw.Spread
	}
	if raw.OffsetY != nil {
		l.OffsetY = *raw.OffsetY
	}
	if raw.Opacity != nil {
		l.Opacity = *raw.Opacity
	}
	return nil
}

// ShadowConfig is the shadow strength plus an ordered list of layers,
// rendered back-to-front (first layer drawn first).
type ShadowConfig struct {
	Strength float64       `json:"strength"`
	Layers   []ShadowLayer `json:"layers"`
}

// InsetConfig controls how the input image is cropped before compositing.
type InsetConfig struct {
	// Mode is InsetModeBalance (content-aware) or InsetModeManual.
	Mode string `json:"mode"`

	// Strength scales balanced insets, 0..1.
	Strength float64 `json:"strength"`

	// ManualPx is the uniform inset used in manual mode.
	ManualPx int `json:"manual_px"`

	// BalancedInsetsPx caches the last computed balanced insets so presets
	// round-trip the values that were actually applied.
	BalancedInsetsPx InsetValues `json:"balanced_insets_px"`
}

// BackgroundConfig selects the canvas background.
type BackgroundConfig struct {
	Type      string `json:"type"`
	PresetID  string `json:"preset_id"`
	ImagePath string `json:"image_path,omitempty"`
}

// OutputConfig selects how the output canvas size is derived.
type OutputConfig struct {
	Mode     string `json:"mode"`
	Ratio    [2]int `json:"ratio"`
	SizePx   [2]int `json:"size_px"`
	Platform string `json:"platform,omitempty"`
}

// CompositionState is the complete set of values a render consumes. It is
// created with defaults, mutated field-by-field by the caller, and read-only
// during a render.
type CompositionState struct {
	PaddingPx  int              `json:"padding_px"`
	Inset      InsetConfig      `json:"inset"`
	RadiusPx   int              `json:"radius_px"`
	Shadow     ShadowConfig     `json:"shadow"`
	Background BackgroundConfig `json:"background"`
	Output     OutputConfig     `json:"output"`
}

// DefaultShadowLayers returns a fresh copy of the default two-layer shadow:
// a wide soft ambient layer under a tighter contact layer.
func DefaultShadowLayers() []ShadowLayer {
	return []ShadowLayer{
		{Blur: 28, Spread: -8, OffsetY: 18, Opacity: 0.18},
		{Blur: 10, Spread: -4, OffsetY: 6, Opacity: 0.12},
	}
}

// DefaultState returns the composition defaults. Every call returns an
// independent value; nothing is shared between states.
func DefaultState() CompositionState {
	return CompositionState{
		PaddingPx: 120,
		Inset: InsetConfig{
			Mode:     InsetModeBalance,
			Strength: 0.65,
			ManualPx: 24,
		},
		RadiusPx: 18,
		Shadow: ShadowConfig{
			Strength: 0.55,
			Layers:   DefaultShadowLayers(),
		},
		Background: BackgroundConfig{
			Type:     BackgroundTypePreset,
			PresetID: "sky",
		},
		Output: OutputConfig{
			Mode:   OutputModeAutoRatio,
			Ratio:  [2]int{16, 9},
			SizePx: [2]int{1920, 1080},
		},
	}
}

// Clone returns a deep copy of the state (the layer slice is the only
// reference-carrying field).
func (s CompositionState) Clone() CompositionState {
	out := s
	out.Shadow.Layers = append([]ShadowLayer(nil), s.Shadow.Layers...)
	return out
}

// UnmarshalJSON decodes a persisted state, filling every unspecified field
// with its default. Unknown fields are ignored so newer presets load in
// older builds.
func (s *CompositionState) UnmarshalJSON(data []byte) error {
	*s = DefaultState()

	var raw struct {
		PaddingPx *int `json:"padding_px"`
		RadiusPx  *int `json:"radius_px"`
		Inset     *struct {
			Mode     *string      `json:"mode"`
			Strength *float64     `json:"strength"`
			ManualPx *int         `json:"manual_px"`
			Balanced *InsetValues `json:"balanced_insets_px"`
		} `json:"inset"`
		Shadow *struct {
			Strength *float64      `json:"strength"`
			Layers   []ShadowLayer `json:"layers"`
		} `json:"shadow"`
		Background *struct {
			Type      *string `json:"type"`
			PresetID  *string `json:"preset_id"`
			ImagePath *string `json:"image_path"`
		} `json:"background"`
		Output *struct {
			Mode     *string `json:"mode"`
			Ratio    *[2]int `json:"ratio"`
			SizePx   *[2]int `json:"size_px"`
			Platform *string `json:"platform"`
		} `json:"output"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.PaddingPx != nil {
		s.PaddingPx = *raw.PaddingPx
	}
	if raw.RadiusPx != nil {
		s.RadiusPx = *raw.RadiusPx
	}
	if in := raw.Inset; in != nil {
		if in.Mode != nil {
			s.Inset.Mode = *in.Mode
		}
		if in.Strength != nil {
			s.Inset.Strength = *in.Strength
		}
		if in.ManualPx != nil {
			s.Inset.ManualPx = *in.ManualPx
		}
		if in.Balanced != nil {
			s.Inset.BalancedInsetsPx = *in.Balanced
		}
	}
	if sh := raw.Shadow; sh != nil {
		if sh.Strength != nil {
			s.Shadow.Strength = *sh.Strength
		}
		if len(sh.Layers) > 0 {
			s.Shadow.Layers = sh.Layers
		}
	}
	if bg := raw.Background; bg != nil {
		if bg.Type != nil {
			s.Background.Type = *bg.Type
		}
		if bg.PresetID != nil {
			s.Background.PresetID = *bg.PresetID
		}
		if bg.ImagePath != nil {
			s.Background.ImagePath = *bg.ImagePath
		}
	}
	if out := raw.Output; out != nil {
		if out.Mode != nil {
			s.Output.Mode = *out.Mode
		}
		if out.Ratio != nil {
			s.Output.Ratio = *out.Ratio
		}
		if out.SizePx != nil {
			s.Output.SizePx = *out.SizePx
		}
		if out.Platform != nil {
			s.Output.Platform = *out.Platform
		}
	}
	return nil
}

// StateUpdate is a partial state change: nil fields are left untouched,
// non-nil fields replace their section wholesale. Replaces dynamic
// field-by-name mutation with an explicit, exhaustively applied update.
type StateUpdate struct {
	PaddingPx  *int
	RadiusPx   *int
	Inset      *InsetConfig
	Shadow     *ShadowConfig
	Background *BackgroundConfig
	Output     *OutputConfig
}

// Apply writes every set field of the update into the state.
func (u StateUpdate) Apply(s *CompositionState) {
	if u.PaddingPx != nil {
		s.PaddingPx = *u.PaddingPx
	}
	if u.RadiusPx != nil {
		s.RadiusPx = *u.RadiusPx
	}
	if u.Inset != nil {
		s.Inset = *u.Inset
	}
	if u.Shadow != nil {
		s.Shadow = ShadowConfig{
			Strength: u.Shadow.Strength,
			Layers:   append([]ShadowLayer(nil), u.Shadow.Layers...),
		}
	}
	if u.Background != nil {
		s.Background = *u.Background
	}
	if u.Output != nil {
		s.Output = *u.Output
	}
}
