package courses

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/coursenotes/internal/common"
	"github.com/dmitrijs2005/coursenotes/internal/logging"
	"github.com/dmitrijs2005/coursenotes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accountID = "acc-1"

// ---- fakes ----

type memRepo struct {
	m map[string][]byte
}

func newMemRepo() *memRepo {
	return &memRepo{m: make(map[string][]byte)}
}

func (r *memRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return r.m[key], nil
}

func (r *memRepo) Set(ctx context.Context, key string, value []byte) error {
	r.m[key] = append([]byte(nil), value...)
	return nil
}

func (r *memRepo) Delete(ctx context.Context, key string) error {
	delete(r.m, key)
	return nil
}

func (r *memRepo) List(ctx context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte, len(r.m))
	for k, v := range r.m {
		out[k] = append([]byte(nil), v...)
	}
	return out, nil
}

func (r *memRepo) Clear(ctx context.Context) error {
	r.m = make(map[string][]byte)
	return nil
}

type fakeSummarizer struct {
	ret      string
	calls    int
	lastText string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string) string {
	f.calls++
	f.lastText = text
	return f.ret
}

func newService(repo *memRepo, sum *fakeSummarizer) *Service {
	return NewService(repo, sum, logging.NewDefault())
}

// freezeClock pins timeNow to a fixed instant; each call to advance moves it.
func freezeClock(t *testing.T, at time.Time) func(d time.Duration) {
	t.Helper()
	orig := timeNow
	t.Cleanup(func() { timeNow = orig })

	current := at
	timeNow = func() time.Time { return current }
	return func(d time.Duration) { current = current.Add(d) }
}

// ---- TESTS ----

func TestLoadEmptyAndCorrupt(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	s := newService(repo, &fakeSummarizer{})

	list, err := s.Load(ctx, accountID)
	require.NoError(t, err)
	assert.Empty(t, list)

	repo.m[coursesKey(accountID)] = []byte("{broken")
	list, err = s.Load(ctx, accountID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddCourse(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	s := newService(repo, &fakeSummarizer{})

	course, err := s.AddCourse(ctx, accountID, "  CS101  ", " Intro ")
	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, "CS101", course.Name)
	assert.Equal(t, "Intro", course.Description)
	assert.Empty(t, course.Notes)

	// persisted: a fresh service over the same storage sees it
	list, err := newService(repo, &fakeSummarizer{}).Load(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, course.ID, list[0].ID)
}

func TestAddCourseRequiresName(t *testing.T) {
	ctx := context.Background()
	s := newService(newMemRepo(), &fakeSummarizer{})

	_, err := s.AddCourse(ctx, accountID, "   ", "desc")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestCourseIDsUniqueUnderFrozenClock(t *testing.T) {
	ctx := context.Background()
	s := newService(newMemRepo(), &fakeSummarizer{})
	freezeClock(t, time.UnixMilli(1700000000000))

	ids := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		c, err := s.AddCourse(ctx, accountID, "c", "")
		require.NoError(t, err)
		ids[c.ID] = struct{}{}
	}
	assert.Len(t, ids, 3)
}

func TestEditCourse(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	s := newService(repo, &fakeSummarizer{ret: "sum"})

	course, err := s.AddCourse(ctx, accountID, "Old", "old desc")
	require.NoError(t, err)
	note, err := s.AddNote(ctx, accountID, course.ID, "t", "c", nil, "")
	require.NoError(t, err)

	require.NoError(t, s.EditCourse(ctx, accountID, course.ID, "New", "new desc"))

	list, err := s.Load(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, course.ID, list[0].ID)
	assert.Equal(t, "New", list[0].Name)
	assert.Equal(t, "new desc", list[0].Description)
	// notes are preserved
	require.Len(t, list[0].Notes, 1)
	assert.Equal(t, note.ID, list[0].Notes[0].ID)
}

func TestEditCourseUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newService(newMemRepo(), &fakeSummarizer{})

	_, err := s.AddCourse(ctx, accountID, "Keep", "desc")
	require.NoError(t, err)

	require.NoError(t, s.EditCourse(ctx, accountID, "nope", "X", "Y"))

	list, err := s.Load(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Keep", list[0].Name)
}

func TestDeleteCourseCascades(t *testing.T) {
	ctx := context.Background()
	s := newService(newMemRepo(), &fakeSummarizer{ret: "sum"})

	course, err := s.AddCourse(ctx, accountID, "Doomed", "")
	require.NoError(t, err)
	_, err = s.AddNote(ctx, accountID, course.ID, "t", "c", nil, "")
	require.NoError(t, err)
	keep, err := s.AddCourse(ctx, accountID, "Keep", "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteCourse(ctx, accountID, course.ID))

	list, err := s.Load(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)

	// unknown id is a no-op
	require.NoError(t, s.DeleteCourse(ctx, accountID, "nope"))
}

func TestAddNote(t *testing.T) {
	ctx := context.Background()
	sum := &fakeSummarizer{ret: "a concise summary"}
	s := newService(newMemRepo(), sum)

	course, err := s.AddCourse(ctx, accountID, "CS101", "")
	require.NoError(t, err)

	note, err := s.AddNote(ctx, accountID, course.ID, " Lecture 1 ", " Big O notation ", []string{"algo"}, "slides.pdf")
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "Lecture 1", note.Title)
	assert.Equal(t, "Big O notation", note.Content)
	assert.Equal(t, "a concise summary", note.Summary)
	assert.Equal(t, "slides.pdf", note.FileName)
	assert.Equal(t, []string{"algo"}, note.Tags)

	_, err = time.Parse(time.RFC3339Nano, note.CreatedAt)
	assert.NoError(t, err)

	// summarizer saw the trimmed content
	assert.Equal(t, 1, sum.calls)
	assert.Equal(t, "Big O notation", sum.lastText)
}

func TestAddNoteValidation(t *testing.T) {
	ctx := context.Background()
	s := newService(newMemRepo(), &fakeSummarizer{})

	course, err := s.AddCourse(ctx, accountID, "CS101", "")
	require.NoError(t, err)

	_, err = s.AddNote(ctx, accountID, course.ID, "  ", "content", nil, "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.AddNote(ctx, accountID, course.ID, "title", "  ", nil, "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAddNoteUnknownCourseIsNoOp(t *testing.T) {
	ctx := context.Background()
	sum := &fakeSummarizer{ret: "sum"}
	s := newService(newMemRepo(), sum)

	note, err := s.AddNote(ctx, accountID, "nope", "t", "c", nil, "")
	require.NoError(t, err)
	assert.Nil(t, note)
	// no summary round trip for a note that cannot land anywhere
	assert.Zero(t, sum.calls)
}

func TestNotesSortedNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newService(newMemRepo(), &fakeSummarizer{ret: "sum"})
	advance := freezeClock(t, time.UnixMilli(1700000000000))

	course, err := s.AddCourse(ctx, accountID, "CS101", "")
	require.NoError(t, err)

	// inserted oldest first; listing must come back newest first
	for _, title := range []string{"first", "second", "third"} {
		advance(time.Minute)
		_, err = s.AddNote(ctx, accountID, course.ID, title, "c", nil, "")
		require.NoError(t, err)
	}

	list, err := s.Load(ctx, accountID)
	require.NoError(t, err)
	titles := noteTitles(list[0].Notes)
	assert.Equal(t, []string{"third", "second", "first"}, titles)
}

func TestEqualTimestampsPreserveInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := newService(newMemRepo(), &fakeSummarizer{ret: "sum"})
	freezeClock(t, time.UnixMilli(1700000000000))

	course, err := s.AddCourse(ctx, accountID, "CS101", "")
	require.NoError(t, err)

	for _, title := range []string{"a", "b", "c"} {
		_, err = s.AddNote(ctx, accountID, course.ID, title, "c", nil, "")
		require.NoError(t, err)
	}

	list, err := s.Load(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, noteTitles(list[0].Notes))
}

func TestDeleteNotePreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := newService(newMemRepo(), &fakeSummarizer{ret: "sum"})
	advance := freezeClock(t, time.UnixMilli(1700000000000))

	course, err := s.AddCourse(ctx, accountID, "CS101", "")
	require.NoError(t, err)

	notes := make(map[string]string) // title -> id
	for _, title := range []string{"a", "b", "c"} {
		advance(time.Minute)
		n, err := s.AddNote(ctx, accountID, course.ID, title, "c", nil, "")
		require.NoError(t, err)
		notes[title] = n.ID
	}

	require.NoError(t, s.DeleteNote(ctx, accountID, course.ID, notes["b"]))

	list, err := s.Load(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, noteTitles(list[0].Notes))

	// missing note or course ids are silent no-ops
	require.NoError(t, s.DeleteNote(ctx, accountID, course.ID, "nope"))
	require.NoError(t, s.DeleteNote(ctx, accountID, "nope", notes["a"]))
}

func TestSaveLoadRoundTripIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	s := newService(repo, &fakeSummarizer{ret: "sum"})

	course, err := s.AddCourse(ctx, accountID, "CS101", "desc")
	require.NoError(t, err)
	_, err = s.AddNote(ctx, accountID, course.ID, "t", "c", []string{"x", "y"}, "f.txt")
	require.NoError(t, err)

	first, err := s.Load(ctx, accountID)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, accountID, first))
	second, err := s.Load(ctx, accountID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func noteTitles(notes []models.Note) []string {
	titles := make([]string, 0, len(notes))
	for _, n := range notes {
		titles = append(titles, n.Title)
	}
	return titles
}
