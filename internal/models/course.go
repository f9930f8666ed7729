package models

// Note is a titled, tagged text record owned by one course. CreatedAt is an
// RFC 3339 timestamp string. FileName records only the name of an attached
// file; the file contents are never persisted.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Summary   string   `json:"summary"`
	FileName  string   `json:"fileName,omitempty"`
	CreatedAt string   `json:"createdAt"`
	Tags      []string `json:"tags"`
}

// HasTag reports whether tag is present in the note's tag list.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Course is a named grouping of notes owned by one account. Ownership is
// encoded by the storage key the course collection is saved under, not by a
// field on the course itself. Notes are kept sorted newest first.
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Notes       []Note `json:"notes"`
}
