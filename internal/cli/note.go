package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/coursenotes/internal/common"
	"github.com/dmitrijs2005/coursenotes/internal/courses"
)

// getMultiline and getTags are test seams for the interactive input helpers.
var getMultiline = GetMultiline
var getTags = GetTags

// parseNoteFilter splits "notes" arguments into a keyword and required tags:
// tokens starting with '#' are tags, everything else joins into the keyword.
func parseNoteFilter(args []string) (keyword string, tags []string) {
	var words []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "#") {
			if t := strings.TrimPrefix(arg, "#"); t != "" {
				tags = append(tags, t)
			}
			continue
		}
		words = append(words, arg)
	}
	return strings.Join(words, " "), tags
}

// ListNotes prints the selected course's notes, newest first, optionally
// filtered by a keyword and required tags.
func (a *App) ListNotes(ctx context.Context, args []string) error {
	course, err := a.requireSelectedCourse(ctx)
	if err != nil {
		return err
	}

	keyword, tags := parseNoteFilter(args)
	notes := courses.FilterNotes(*course, keyword, tags)
	if len(notes) == 0 {
		fmt.Println("No notes match.")
		return nil
	}

	for _, n := range notes {
		fmt.Printf("%s  %s (%s)\n", n.ID, n.Title, n.CreatedAt)
		if len(n.Tags) > 0 {
			fmt.Printf("    tags: %s\n", strings.Join(n.Tags, ", "))
		}
		fmt.Printf("    %s\n", n.Summary)
	}
	return nil
}

// AddNote prompts for title, content, tags and an optional attachment name,
// then creates the note in the selected course. The summary round trip
// happens inside the course service before the note lands in the store.
func (a *App) AddNote(ctx context.Context) error {
	course, err := a.requireSelectedCourse(ctx)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Note title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Note content", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" || content == "" {
		fmt.Println("Note title and content are required.")
		return common.ErrValidation
	}

	tags, err := getTags(a.reader, os.Stdout)
	if err != nil {
		return err
	}
	// only the name is recorded, file contents are not stored
	fileName, err := getSimpleText(a.reader, "Attachment file name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println("Generating summary...")
	note, err := a.courses.AddNote(ctx, a.account.ID, course.ID, title, content, tags, fileName)
	if err != nil {
		a.log.Error(ctx, "failed to add note", "error", err)
		return err
	}
	if note == nil {
		fmt.Println("Course no longer exists.")
		return nil
	}

	fmt.Printf("Added note %s\nSummary: %s\n", note.ID, note.Summary)
	return nil
}

// DeleteNote removes the note with the given id from the selected course.
func (a *App) DeleteNote(ctx context.Context, id string) error {
	course, err := a.requireSelectedCourse(ctx)
	if err != nil {
		return err
	}

	if err := a.courses.DeleteNote(ctx, a.account.ID, course.ID, id); err != nil {
		a.log.Error(ctx, "failed to delete note", "error", err)
		return err
	}
	fmt.Println("Done.")
	return nil
}

// ListTags prints the selected course's available tags alphabetically.
func (a *App) ListTags(ctx context.Context) error {
	course, err := a.requireSelectedCourse(ctx)
	if err != nil {
		return err
	}

	tags := courses.AvailableTags(*course)
	if len(tags) == 0 {
		fmt.Println("No tags yet.")
		return nil
	}
	fmt.Println(strings.Join(tags, ", "))
	return nil
}
