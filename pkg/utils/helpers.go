package utils

import "strings"

// PlaceholderDateStamp is used when an item carries no usable timestamp.
const PlaceholderDateStamp = "19700101"

const maxTitleComponentLen = 30

// SanitizeTitleComponent lowercases a title, replaces every character
// outside [a-z0-9] with an underscore and truncates the result to 30
// characters, producing a filename-safe component.
func SanitizeTitleComponent(title string) string {
	lowered := strings.ToLower(title)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	s := b.String()
	if len(s) > maxTitleComponentLen {
		s = s[:maxTitleComponentLen]
	}
	return s
}

// DateStamp truncates an ISO-style timestamp to its date portion with the
// separators removed ("2026-02-01T00:03Z" -> "20260201"). Anything that does
// not start with a YYYY-MM-DD shape falls back to PlaceholderDateStamp.
func DateStamp(timestamp string) string {
	if len(timestamp) < 10 || timestamp[4] != '-' || timestamp[7] != '-' {
		return PlaceholderDateStamp
	}
	stamp := timestamp[:4] + timestamp[5:7] + timestamp[8:10]
	for _, r := range stamp {
		if r < '0' || r > '9' {
			return PlaceholderDateStamp
		}
	}
	return stamp
}

// IsAudioAssetURL reports whether an asset URL points at an audio file.
// URL-suffix detection takes precedence over the declared asset type as a
// safety net against inconsistent server tagging.
func IsAudioAssetURL(assetURL string) bool {
	return strings.HasSuffix(strings.ToLower(assetURL), ".mp3")
}
