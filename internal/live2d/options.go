package live2d

// Options mirrors the argument of oh-my-live2d's loadOml2d.
type Options struct {
	PrimaryColor string  `json:"primaryColor,omitempty"`
	Models       []Model `json:"models"`
	Tips         *Tips   `json:"tips,omitempty"`

	// Not part of loadOml2d's options; used by the loader partial.
	ScriptURL  string `json:"-"`
	WordTheDay bool   `json:"-"`
}

// Model is one avatar the widget can switch between.
type Model struct {
	Path       string      `json:"path"`
	Scale      float64     `json:"scale,omitempty"`
	Position   []float64   `json:"position,omitempty"`
	Volume     *float64    `json:"volume,omitempty"`
	StageStyle *StageStyle `json:"stageStyle,omitempty"`
}

// StageStyle sizes the canvas in px.
type StageStyle struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// Tips configures the speech bubble.
type Tips struct {
	IdleTips *IdleTips `json:"idleTips,omitempty"`
}

// IdleTips are shown while the visitor is inactive.
type IdleTips struct {
	Message []string `json:"message,omitempty"`
}
