package rewriter

import "strings"

// StyleMarkers is the closed set of tokens whose presence makes help text
// styled. Markers are detected, never parsed or validated.
var StyleMarkers = []string{
	"<c>",
	"</>",
	"<s>",
	"<u>",
	"<k>",
	"<r>",
	"<g>",
	"<b>",
	"<y>",
	"<m>",
	"<cyan>",
	"<white>",
}

// ContainsStyleMarker reports whether text contains at least one style marker.
func ContainsStyleMarker(text string) bool {
	for _, m := range StyleMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
