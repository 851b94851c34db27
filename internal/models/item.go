package models

// AssetType classifies the media of a captured item.
type AssetType string

const (
	AssetMarkdown AssetType = "markdown"
	AssetAudio    AssetType = "audio"
	AssetPDF      AssetType = "pdf"
	AssetUnknown  AssetType = "unknown"
)

// CapturedItem is one unit of content (paper digest, podcast, report)
// produced server-side by a radar sweep. Read-only from this service's
// perspective. Legacy items may predate the assetType field entirely.
type CapturedItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	URL       string    `json:"url,omitempty"`
	AssetURL  string    `json:"assetUrl,omitempty"`
	Timestamp string    `json:"timestamp,omitempty"`
	AssetType AssetType `json:"assetType,omitempty"`
	// Parent marks the item as a derived summary of another item rather
	// than a primary capture.
	Parent string `json:"parent,omitempty"`
}
