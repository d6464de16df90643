package element

import "slices"

// voidTags are elements that have no closing tag and no content model.
// Matching is exact and case-sensitive.
var voidTags = map[string]struct{}{
	"area":    {},
	"base":    {},
	"br":      {},
	"col":     {},
	"command": {},
	"embed":   {},
	"hr":      {},
	"img":     {},
	"input":   {},
	"keygen":  {},
	"link":    {},
	"meta":    {},
	"param":   {},
	"source":  {},
	"track":   {},
	"wbr":     {},
}

// IsVoidTag reports whether tag is in the void-element table.
// It does not consult any Element.
func IsVoidTag(tag string) bool {
	_, ok := voidTags[tag]
	return ok
}

// VoidTags returns the void-element table as a sorted slice.
func VoidTags() []string {
	tags := make([]string, 0, len(voidTags))
	for tag := range voidTags {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}
