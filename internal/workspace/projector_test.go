package workspace

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aletheia-labs/radar-workspace/internal/models"
)

func TestProjectMarkdownItem(t *testing.T) {
	items := []models.CapturedItem{{
		ID:        "item-1",
		Title:     "Sparse Attention: A Survey!",
		Summary:   "A survey of sparse attention methods.",
		URL:       "https://example.com/paper",
		Timestamp: "2026-02-01T09:30:00Z",
	}}

	docs := Project(items)

	require.Len(t, docs, 1)
	assert.Equal(t, "item-1", docs[0].ID)
	assert.Equal(t, "20260201-sparse_attention__a_survey_-digest.md", docs[0].Name)
	assert.Equal(t, models.AssetMarkdown, docs[0].AssetType)
	assert.Equal(t, "https://example.com/paper", docs[0].URL)
	assert.True(t, docs[0].IsRadarAsset)
}

func TestProjectIsDeterministic(t *testing.T) {
	item := models.CapturedItem{ID: "x", Title: "Same Item", Timestamp: "2026-02-01"}

	a := Project([]models.CapturedItem{item})
	b := Project([]models.CapturedItem{item})

	assert.Equal(t, a, b)
}

func TestProjectAudioByAssetType(t *testing.T) {
	docs := Project([]models.CapturedItem{{
		ID:        "pod-1",
		Title:     "Weekly Roundup",
		AssetType: models.AssetAudio,
		AssetURL:  "https://cdn.example.com/roundup",
		Timestamp: "2026-02-01",
	}})

	require.Len(t, docs, 1)
	assert.Equal(t, "20260201-weekly_roundup-podcast.mp3", docs[0].Name)
	assert.Equal(t, models.AssetAudio, docs[0].AssetType)
}

func TestProjectAudioByURLSuffixOverridesDeclaredType(t *testing.T) {
	// Server tagging is unreliable for legacy items; the .mp3 suffix wins.
	docs := Project([]models.CapturedItem{{
		ID:        "pod-2",
		Title:     "Mislabeled Episode",
		AssetType: models.AssetMarkdown,
		AssetURL:  "https://cdn.example.com/episode.MP3",
		Timestamp: "2026-02-01",
	}})

	require.Len(t, docs, 1)
	assert.Equal(t, models.AssetAudio, docs[0].AssetType)
	assert.True(t, strings.HasSuffix(docs[0].Name, "-podcast.mp3"))
}

func TestProjectLegacyItemWithoutAssetTypeIsDigest(t *testing.T) {
	docs := Project([]models.CapturedItem{{
		ID:    "legacy-1",
		Title: "Old Capture",
		URL:   "https://example.com/old",
	}})

	require.Len(t, docs, 1)
	assert.Equal(t, models.AssetMarkdown, docs[0].AssetType)
	assert.True(t, strings.HasSuffix(docs[0].Name, "-digest.md"))
}

func TestProjectMissingTimestampUsesPlaceholder(t *testing.T) {
	docs := Project([]models.CapturedItem{{ID: "nt", Title: "No Time", URL: "u"}})

	require.Len(t, docs, 1)
	assert.True(t, strings.HasPrefix(docs[0].Name, "19700101-"))
}

func TestProjectAssetURLPreferredOverURL(t *testing.T) {
	docs := Project([]models.CapturedItem{{
		ID:       "p",
		Title:    "Prefers Asset",
		URL:      "https://example.com/page",
		AssetURL: "https://cdn.example.com/rendered.md",
	}})

	assert.Equal(t, "https://cdn.example.com/rendered.md", docs[0].URL)
}

func TestProjectSummaryOnlyMarkdownGetsDataURL(t *testing.T) {
	docs := Project([]models.CapturedItem{{
		ID:      "s",
		Title:   "Summary Only",
		Summary: "Key finding: it works.",
	}})

	require.Len(t, docs, 1)
	require.True(t, strings.HasPrefix(docs[0].URL, "data:text/markdown;charset=utf-8,"))

	encoded := strings.TrimPrefix(docs[0].URL, "data:text/markdown;charset=utf-8,")
	decoded, err := url.PathUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, "# Summary Only\n\nKey finding: it works.", decoded)
}

func TestProjectNoSourceAtAllIsUnavailable(t *testing.T) {
	docs := Project([]models.CapturedItem{{ID: "empty", Title: "Nothing Here"}})

	require.Len(t, docs, 1)
	assert.Equal(t, UnavailableURL, docs[0].URL)
}

func TestProjectAudioWithoutSummaryNeverGetsDataURL(t *testing.T) {
	docs := Project([]models.CapturedItem{{
		ID:        "a",
		Title:     "Silent Podcast",
		AssetType: models.AssetAudio,
		Summary:   "transcript snippet",
	}})

	require.Len(t, docs, 1)
	assert.Equal(t, UnavailableURL, docs[0].URL)
}

func TestMergeDocumentsExistingWins(t *testing.T) {
	existing := []models.ProjectedDocument{
		{ID: "1", Name: "kept.md"},
		{ID: "2", Name: "also-kept.md"},
	}
	fresh := []models.ProjectedDocument{
		{ID: "2", Name: "must-lose.md"},
		{ID: "3", Name: "new.md"},
	}

	merged := MergeDocuments(existing, fresh)

	require.Len(t, merged, 3)
	assert.Equal(t, "also-kept.md", merged[1].Name)
	assert.Equal(t, "3", merged[2].ID)
}

func TestCombineCategoriesKeepsBothSides(t *testing.T) {
	radar := []models.ProjectedDocument{{ID: "r1"}, {ID: "shared"}}
	session := []models.ProjectedDocument{{ID: "shared"}, {ID: "s1"}}

	combined := CombineCategories(radar, session)

	// Categories are concatenated, never de-duplicated across each other.
	assert.Len(t, combined, 4)
}
