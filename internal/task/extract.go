package task

import (
	"regexp"
	"sort"
)

// Reference patterns, matched independently and unioned. The prefixed
// forms are permissive about ID length; whether a short or long numeric
// run names a real task is Asana's concern, not ours. The bare
// action-word form requires the canonical 16 digits so that "fixes 3
// tests" doesn't produce a reference.
var refPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)asana[:/](\d+)`),
	regexp.MustCompile(`#(\d+)`),
	regexp.MustCompile(`(?i)\b(?:fixes|closes|resolves|references|refs|re|see|addresses)\s+(?:asana:)?#?(\d{16})\b`),
}

// Extract returns the distinct task IDs referenced in a commit message,
// sorted. An empty slice is the normal result for a message with no
// references.
func Extract(message string) []string {
	idSet := make(map[string]bool)
	for _, re := range refPatterns {
		for _, match := range re.FindAllStringSubmatch(message, -1) {
			if len(match) > 1 {
				idSet[match[1]] = true
			}
		}
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
