package composition

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	if s.PaddingPx != 120 {
		t.Errorf("PaddingPx = %d, want 120", s.PaddingPx)
	}
	if s.RadiusPx != 18 {
		t.Errorf("RadiusPx = %d, want 18", s.RadiusPx)
	}
	if s.Inset.Mode != InsetModeBalance || s.Inset.Strength != 0.65 || s.Inset.ManualPx != 24 {
		t.Errorf("Inset = %+v, want balance/0.65/24", s.Inset)
	}
	if s.Shadow.Strength != 0.55 {
		t.Errorf("Shadow.Strength = %v, want 0.55", s.Shadow.Strength)
	}
	if !reflect.DeepEqual(s.Shadow.Layers, DefaultShadowLayers()) {
		t.Errorf("Shadow.Layers = %+v, want defaults", s.Shadow.Layers)
	}
	if s.Background.Type != BackgroundTypePreset || s.Background.PresetID != "sky" {
		t.Errorf("Background = %+v, want preset/sky", s.Background)
	}
	if s.Output.Mode != OutputModeAutoRatio || s.Output.Ratio != [2]int{16, 9} || s.Output.SizePx != [2]int{1920, 1080} {
		t.Errorf("Output = %+v, want autoRatio/16:9/1920x1080", s.Output)
	}
}

func TestDefaultState_Independent(t *testing.T) {
	a := DefaultState()
	b := DefaultState()

	a.Shadow.Layers[0].Blur = 999
	if b.Shadow.Layers[0].Blur == 999 {
		t.Error("default states share a layer slice")
	}
}

func TestStateClone_IndependentLayers(t *testing.T) {
	s := DefaultState()
	c := s.Clone()

	c.Shadow.Layers[0].Opacity = 1
	if s.Shadow.Layers[0].Opacity == 1 {
		t.Error("clone shares the layer slice with the original")
	}
}

func TestStateUnmarshal_EmptyObjectGivesDefaults(t *testing.T) {
	var s CompositionState
	if err := json.Unmarshal([]byte(`{}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(s, DefaultState()) {
		t.Errorf("state = %+v, want defaults", s)
	}
}

func TestStateUnmarshal_UnknownFieldsIgnored(t *testing.T) {
	var s CompositionState
	if err := json.Unmarshal([]byte(`{"padding_px": 40, "future_field": {"x": 1}}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.PaddingPx != 40 {
		t.Errorf("PaddingPx = %d, want 40", s.PaddingPx)
	}
}

func TestStateUnmarshal_PartialNestedOverride(t *testing.T) {
	var s CompositionState
	data := []byte(`{"inset": {"mode": "manual"}, "output": {"platform": "twitter"}}`)
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if s.Inset.Mode != InsetModeManual {
		t.Errorf("Inset.Mode = %q, want manual", s.Inset.Mode)
	}
	// Sibling fields in an overridden section keep their defaults.
	if s.Inset.Strength != 0.65 || s.Inset.ManualPx != 24 {
		t.Errorf("Inset = %+v, want default strength/manual_px", s.Inset)
	}
	if s.Output.Platform != "twitter" {
		t.Errorf("Output.Platform = %q, want twitter", s.Output.Platform)
	}
	if s.Output.Mode != OutputModeAutoRatio {
		t.Errorf("Output.Mode = %q, want autoRatio default", s.Output.Mode)
	}
}

func TestStateUnmarshal_EmptyLayersKeepDefaults(t *testing.T) {
	var s CompositionState
	if err := json.Unmarshal([]byte(`{"shadow": {"strength": 0.9, "layers": []}}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Shadow.Strength != 0.9 {
		t.Errorf("Shadow.Strength = %v, want 0.9", s.Shadow.Strength)
	}
	if !reflect.DeepEqual(s.Shadow.Layers, DefaultShadowLayers()) {
		t.Errorf("Shadow.Layers = %+v, want defaults kept for empty list", s.Shadow.Layers)
	}
}

func TestShadowLayerUnmarshal_PartialLayer(t *testing.T) {
	var l ShadowLayer
	if err := json.Unmarshal([]byte(`{"blur": 12}`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := ShadowLayer{Blur: 12, Spread: -8, OffsetY: 18, Opacity: 0.18}
	if l != want {
		t.Errorf("layer = %+v, want %+v", l, want)
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := DefaultState()
	s.PaddingPx = 64
	s.RadiusPx = 6
	s.Inset.Mode = InsetModeManual
	s.Inset.BalancedInsetsPx = InsetValues{L: 1, R: 2, T: 3, B: 4}
	s.Shadow.Layers = []ShadowLayer{{Blur: 5, Spread: 1, OffsetY: 2, Opacity: 0.5}}
	s.Background = BackgroundConfig{Type: BackgroundTypeImage, ImagePath: "/tmp/bg.png"}
	s.Output = OutputConfig{Mode: OutputModePlatform, Ratio: [2]int{4, 3}, SizePx: [2]int{800, 600}, Platform: "youtube"}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back CompositionState
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back, s) {
		t.Errorf("round trip: got %+v, want %+v", back, s)
	}
}

func TestStateUpdate_Apply(t *testing.T) {
	s := DefaultState()
	padding := 30
	layers := []ShadowLayer{{Blur: 7, Opacity: 0.3}}
	u := StateUpdate{
		PaddingPx: &padding,
		Shadow:    &ShadowConfig{Strength: 1, Layers: layers},
	}

	u.Apply(&s)

	if s.PaddingPx != 30 {
		t.Errorf("PaddingPx = %d, want 30", s.PaddingPx)
	}
	if s.RadiusPx != 18 {
		t.Errorf("RadiusPx = %d, want untouched default 18", s.RadiusPx)
	}
	if s.Shadow.Strength != 1 || len(s.Shadow.Layers) != 1 {
		t.Errorf("Shadow = %+v, want strength 1 with one layer", s.Shadow)
	}

	// The applied layer slice is copied, not aliased.
	layers[0].Blur = 99
	if s.Shadow.Layers[0].Blur == 99 {
		t.Error("update aliases the caller's layer slice")
	}
}

func TestBackgroundPresets_Table(t *testing.T) {
	if _, ok := BackgroundPresets[DefaultBackgroundPresetID]; !ok {
		t.Fatalf("default preset %q missing from table", DefaultBackgroundPresetID)
	}
	for id, p := range BackgroundPresets {
		if len(p.Colors) == 0 {
			t.Errorf("preset %q has no colors", id)
		}
		switch p.Kind {
		case GradientSolid, GradientLinear, GradientRadial:
		default:
			t.Errorf("preset %q has unknown kind %q", id, p.Kind)
		}
	}
}

func TestPlatformPresets_Table(t *testing.T) {
	want := map[string][2]int{
		"instagram": {1080, 1080},
		"twitter":   {1200, 675},
		"youtube":   {1280, 720},
	}
	for id, size := range want {
		p, ok := PlatformPresets[id]
		if !ok {
			t.Errorf("platform %q missing", id)
			continue
		}
		if p.Width != size[0] || p.Height != size[1] {
			t.Errorf("platform %q = %dx%d, want %dx%d", id, p.Width, p.Height, size[0], size[1])
		}
	}
}
