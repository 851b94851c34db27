package models

// ProjectedDocument is the client-facing, display-ready representation of a
// captured item. Derived, never persisted upstream. Name is deterministic
// for a given item; uniqueness across distinct items is a display
// convenience, not an identity.
type ProjectedDocument struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	AssetType    AssetType `json:"assetType"`
	Summary      string    `json:"summary,omitempty"`
	Title        string    `json:"title,omitempty"`
	IsRadarAsset bool      `json:"isRadarAsset"`
}
