package workspace

import (
	"fmt"
	"net/url"

	"github.com/aletheia-labs/radar-workspace/internal/models"
	"github.com/aletheia-labs/radar-workspace/pkg/utils"
)

// UnavailableURL marks a projected document with no reachable content.
// Items with neither an asset URL, a generic URL nor a summary still project
// instead of failing.
const UnavailableURL = "unavailable"

// Project maps raw captured items to display-ready documents. It is a pure
// function: the same item always yields the same document, including its
// name. Two distinct items may share a name; readability, not identity, is
// what the name provides.
func Project(items []models.CapturedItem) []models.ProjectedDocument {
	docs := make([]models.ProjectedDocument, 0, len(items))
	for _, item := range items {
		docs = append(docs, projectItem(item))
	}
	return docs
}

func projectItem(item models.CapturedItem) models.ProjectedDocument {
	assetType, typeLabel, extension := classify(item)

	name := fmt.Sprintf("%s-%s-%s.%s",
		utils.DateStamp(item.Timestamp),
		utils.SanitizeTitleComponent(item.Title),
		typeLabel,
		extension,
	)

	return models.ProjectedDocument{
		ID:           item.ID,
		Name:         name,
		URL:          resolveURL(item, assetType),
		AssetType:    assetType,
		Summary:      item.Summary,
		Title:        item.Title,
		IsRadarAsset: true,
	}
}

// classify derives the display type from the item. An audio asset URL wins
// over the declared asset type; everything non-audio renders as a markdown
// digest, which also covers legacy items that predate the assetType field.
func classify(item models.CapturedItem) (models.AssetType, string, string) {
	if item.AssetType == models.AssetAudio || utils.IsAudioAssetURL(item.AssetURL) {
		return models.AssetAudio, "podcast", "mp3"
	}
	return models.AssetMarkdown, "digest", "md"
}

// resolveURL prefers the explicit asset URL, then the generic URL. A
// markdown document with only a summary gets an inline data URL so it stays
// downloadable without a server round trip.
func resolveURL(item models.CapturedItem, assetType models.AssetType) string {
	if item.AssetURL != "" {
		return item.AssetURL
	}
	if item.URL != "" {
		return item.URL
	}
	if assetType == models.AssetMarkdown && item.Summary != "" {
		content := fmt.Sprintf("# %s\n\n%s", item.Title, item.Summary)
		return "data:text/markdown;charset=utf-8," + url.PathEscape(content)
	}
	return UnavailableURL
}

// MergeDocuments merges a freshly projected list into the previously held
// list for the same provenance category, de-duplicating by id so repeated
// fetches never duplicate entries. Existing documents win and keep their
// position.
func MergeDocuments(existing, fresh []models.ProjectedDocument) []models.ProjectedDocument {
	merged := make([]models.ProjectedDocument, 0, len(existing)+len(fresh))
	seen := make(map[string]struct{}, len(existing))

	for _, d := range existing {
		merged = append(merged, d)
		seen[d.ID] = struct{}{}
	}
	for _, d := range fresh {
		if _, ok := seen[d.ID]; ok {
			continue
		}
		merged = append(merged, d)
		seen[d.ID] = struct{}{}
	}
	return merged
}

// CombineCategories concatenates radar-sourced documents with
// session-scoped ones. Categories are never coalesced: each category's
// source already guarantees unique ids, and a name collision across
// categories is not an identity.
func CombineCategories(radarDocs, sessionDocs []models.ProjectedDocument) []models.ProjectedDocument {
	combined := make([]models.ProjectedDocument, 0, len(radarDocs)+len(sessionDocs))
	combined = append(combined, radarDocs...)
	combined = append(combined, sessionDocs...)
	return combined
}
