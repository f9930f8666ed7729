package courses

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/coursenotes/internal/models"
)

// AvailableTags returns the union of all tags across the course's notes,
// alphabetically ordered for stable display.
func AvailableTags(course models.Course) []string {
	seen := make(map[string]struct{})
	for _, n := range course.Notes {
		for _, t := range n.Tags {
			seen[t] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// FilterNotes returns the notes matching both predicates, in the course's
// existing note order:
//   - keyword: empty, or a case-insensitive substring of the note's title,
//     content or summary;
//   - requiredTags: empty, or every tag present on the note.
func FilterNotes(course models.Course, keyword string, requiredTags []string) []models.Note {
	kw := strings.ToLower(strings.TrimSpace(keyword))

	result := make([]models.Note, 0, len(course.Notes))
	for _, n := range course.Notes {
		if kw != "" && !matchesKeyword(n, kw) {
			continue
		}
		if !hasAllTags(n, requiredTags) {
			continue
		}
		result = append(result, n)
	}
	return result
}

func matchesKeyword(n models.Note, kw string) bool {
	return strings.Contains(strings.ToLower(n.Title), kw) ||
		strings.Contains(strings.ToLower(n.Content), kw) ||
		strings.Contains(strings.ToLower(n.Summary), kw)
}

func hasAllTags(n models.Note, required []string) bool {
	for _, t := range required {
		if !n.HasTag(t) {
			return false
		}
	}
	return true
}
