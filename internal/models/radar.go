package models

// Radar status values
const (
	RadarStatusActive = "active"
	RadarStatusPaused = "paused"
)

// Radar is a user-configured recurring research query monitored by a
// server-side background job.
type Radar struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Sources     []string     `json:"sources,omitempty"`
	Frequency   string       `json:"frequency,omitempty"`
	OutputMedia []string     `json:"outputMedia,omitempty"`
	ArxivConfig *ArxivConfig `json:"arxivConfig,omitempty"`
	Status      string       `json:"status,omitempty"`
	// LastUpdated is an opaque change sentinel. It is only ever compared for
	// equality against an earlier snapshot, never parsed. A radar that has
	// never been swept carries the literal "Never".
	LastUpdated string `json:"lastUpdated"`
}

// ArxivConfig is the optional structured query configuration for a radar.
type ArxivConfig struct {
	Categories []string `json:"categories,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}
