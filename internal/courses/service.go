// Package courses implements the per-account course/note aggregate store
// and the pure filtering helpers over it. Each account's courses (with
// nested notes) are persisted as a single JSON blob; every mutation is a
// load, an in-memory change, and a full rewrite of that blob.
package courses

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/coursenotes/internal/common"
	"github.com/dmitrijs2005/coursenotes/internal/logging"
	"github.com/dmitrijs2005/coursenotes/internal/models"
	"github.com/dmitrijs2005/coursenotes/internal/storage"
	"github.com/dmitrijs2005/coursenotes/internal/summarizer"
	"github.com/google/uuid"
)

const coursesKeyPrefix = "courses_"

// timeNow is a test seam for timestamps and course ids.
var timeNow = time.Now

func coursesKey(accountID string) string {
	return coursesKeyPrefix + accountID
}

// Service is the aggregate store. It is stateless between calls: selection
// state and the "which account" question belong to the caller.
type Service struct {
	repo       storage.Repository
	summarizer summarizer.Summarizer
	log        logging.Logger
}

// NewService constructs a course Service.
func NewService(repo storage.Repository, sum summarizer.Summarizer, log logging.Logger) *Service {
	return &Service{repo: repo, summarizer: sum, log: log}
}

// Load returns the persisted course collection for the account. An absent or
// unparsable blob degrades to an empty collection.
func (s *Service) Load(ctx context.Context, accountID string) ([]models.Course, error) {
	raw, err := s.repo.Get(ctx, coursesKey(accountID))
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []models.Course{}, nil
	}

	var courses []models.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		s.log.Warn(ctx, "stored course collection is not parsable, treating as empty",
			"account_id", accountID, "error", err)
		return []models.Course{}, nil
	}
	return courses, nil
}

// Save serializes and persists the full collection, replacing prior state.
func (s *Service) Save(ctx context.Context, accountID string, courses []models.Course) error {
	raw, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("failed to serialize courses: %w", err)
	}
	return s.repo.Set(ctx, coursesKey(accountID), raw)
}

// AddCourse creates a course with a creation-timestamp-derived id and an
// empty note list, appends it and persists the collection. The trimmed name
// must be non-empty.
func (s *Service) AddCourse(ctx context.Context, accountID, name, description string) (*models.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: course name is required", common.ErrValidation)
	}

	courses, err := s.Load(ctx, accountID)
	if err != nil {
		return nil, err
	}

	course := models.Course{
		ID:          newCourseID(courses),
		Name:        name,
		Description: strings.TrimSpace(description),
		Notes:       []models.Note{},
	}

	if err := s.Save(ctx, accountID, append(courses, course)); err != nil {
		return nil, err
	}
	return &course, nil
}

// EditCourse replaces the name and description of the course with the given
// id, preserving its notes. An unknown id is a silent no-op.
func (s *Service) EditCourse(ctx context.Context, accountID, id, name, description string) error {
	courses, err := s.Load(ctx, accountID)
	if err != nil {
		return err
	}

	for i := range courses {
		if courses[i].ID != id {
			continue
		}
		courses[i].Name = strings.TrimSpace(name)
		courses[i].Description = strings.TrimSpace(description)
		return s.Save(ctx, accountID, courses)
	}
	return nil
}

// DeleteCourse removes the course with the given id along with all its
// notes. An unknown id is a silent no-op. Reselecting another course is the
// caller's responsibility.
func (s *Service) DeleteCourse(ctx context.Context, accountID, id string) error {
	courses, err := s.Load(ctx, accountID)
	if err != nil {
		return err
	}

	remaining := courses[:0:0]
	for _, c := range courses {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(courses) {
		return nil
	}
	return s.Save(ctx, accountID, remaining)
}

// AddNote creates a note in the given course. The summary is computed before
// the note is constructed; the summarizer never fails, so neither does this
// step. After insertion the course's notes are re-sorted newest first with a
// stable sort, so equal timestamps preserve insertion order. An unknown
// courseID is a silent no-op returning (nil, nil).
func (s *Service) AddNote(ctx context.Context, accountID, courseID, title, content string, tags []string, fileName string) (*models.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: note title and content are required", common.ErrValidation)
	}

	courses, err := s.Load(ctx, accountID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range courses {
		if courses[i].ID == courseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.log.Warn(ctx, "add note skipped, course not found", "course_id", courseID)
		return nil, nil
	}

	// The only suspension point: a remote round trip that always resolves.
	summary := s.summarizer.Summarize(ctx, content)

	note := models.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Summary:   summary,
		FileName:  fileName,
		CreatedAt: timeNow().UTC().Format(time.RFC3339Nano),
		Tags:      tags,
	}

	courses[idx].Notes = append(courses[idx].Notes, note)
	sortNotesDesc(courses[idx].Notes)

	if err := s.Save(ctx, accountID, courses); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes the note from the given course, preserving the relative
// order of the remaining notes. A missing course or note id is a silent
// no-op.
func (s *Service) DeleteNote(ctx context.Context, accountID, courseID, noteID string) error {
	courses, err := s.Load(ctx, accountID)
	if err != nil {
		return err
	}

	for i := range courses {
		if courses[i].ID != courseID {
			continue
		}
		notes := courses[i].Notes
		remaining := notes[:0:0]
		for _, n := range notes {
			if n.ID != noteID {
				remaining = append(remaining, n)
			}
		}
		if len(remaining) == len(notes) {
			return nil
		}
		courses[i].Notes = remaining
		return s.Save(ctx, accountID, courses)
	}
	return nil
}

// newCourseID derives an id from the creation timestamp (milliseconds),
// bumping it until it does not collide with an existing course id.
func newCourseID(existing []models.Course) string {
	used := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		used[c.ID] = struct{}{}
	}

	ms := timeNow().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if _, ok := used[id]; !ok {
			return id
		}
		ms++
	}
}

// sortNotesDesc orders notes newest first. The sort is stable, so notes with
// equal timestamps keep their insertion order. Timestamps that fail to parse
// fall back to lexicographic comparison, which matches chronological order
// for the RFC 3339 strings we write.
func sortNotesDesc(notes []models.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		ti, erri := time.Parse(time.RFC3339Nano, notes[i].CreatedAt)
		tj, errj := time.Parse(time.RFC3339Nano, notes[j].CreatedAt)
		if erri != nil || errj != nil {
			return notes[i].CreatedAt > notes[j].CreatedAt
		}
		return ti.After(tj)
	})
}
