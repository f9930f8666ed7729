package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coursenotes/internal/common"
	"github.com/dmitrijs2005/coursenotes/internal/models"
)

var errNotLoggedIn = errors.New("not logged in")
var errNoCourseSelected = errors.New("no course selected")

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		fmt.Println("Please 'login' first.")
		return errNotLoggedIn
	}
	return nil
}

func (a *App) requireSelectedCourse(ctx context.Context) (*models.Course, error) {
	if err := a.requireLogin(); err != nil {
		return nil, err
	}
	if a.selectedCourseID == "" {
		fmt.Println("No course selected. Use 'use <id>' or 'addcourse' first.")
		return nil, errNoCourseSelected
	}

	list, err := a.courses.Load(ctx, a.account.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		if c.ID == a.selectedCourseID {
			return &c, nil
		}
	}

	// selection went stale (e.g. deleted elsewhere)
	a.selectedCourseID = ""
	fmt.Println("No course selected. Use 'use <id>' or 'addcourse' first.")
	return nil, errNoCourseSelected
}

// ListCourses prints the account's courses, marking the selected one.
func (a *App) ListCourses(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	list, err := a.courses.Load(ctx, a.account.ID)
	if err != nil {
		a.log.Error(ctx, "failed to load courses", "error", err)
		return err
	}
	if len(list) == 0 {
		fmt.Println("No courses yet. Use 'addcourse' to create one.")
		return nil
	}

	for _, c := range list {
		marker := " "
		if c.ID == a.selectedCourseID {
			marker = "*"
		}
		fmt.Printf("%s %s  %s (%d notes)\n", marker, c.ID, c.Name, len(c.Notes))
	}
	return nil
}

// AddCourse prompts for a name and description, creates the course and
// selects it.
func (a *App) AddCourse(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Course name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Println("Course name is required.")
		return common.ErrValidation
	}
	description, err := getSimpleText(a.reader, "Course description", os.Stdout)
	if err != nil {
		return err
	}

	course, err := a.courses.AddCourse(ctx, a.account.ID, name, description)
	if err != nil {
		a.log.Error(ctx, "failed to add course", "error", err)
		return err
	}

	a.selectedCourseID = course.ID
	fmt.Printf("Created course %s (%s)\n", course.Name, course.ID)
	return nil
}

// EditCourse replaces the selected course's name and description.
func (a *App) EditCourse(ctx context.Context) error {
	course, err := a.requireSelectedCourse(ctx)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("New name [%s]", course.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = course.Name
	}
	description, err := getSimpleText(a.reader, fmt.Sprintf("New description [%s]", course.Description), os.Stdout)
	if err != nil {
		return err
	}
	if description == "" {
		description = course.Description
	}

	if err := a.courses.EditCourse(ctx, a.account.ID, course.ID, name, description); err != nil {
		a.log.Error(ctx, "failed to edit course", "error", err)
		return err
	}
	fmt.Println("Course updated.")
	return nil
}

// DeleteCourse removes the selected course and all its notes, then selects
// the first remaining course, if any.
func (a *App) DeleteCourse(ctx context.Context) error {
	course, err := a.requireSelectedCourse(ctx)
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader,
		fmt.Sprintf("Delete course %q and all its notes? (y/N)", course.Name), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.courses.DeleteCourse(ctx, a.account.ID, course.ID); err != nil {
		a.log.Error(ctx, "failed to delete course", "error", err)
		return err
	}

	remaining, err := a.courses.Load(ctx, a.account.ID)
	if err != nil {
		return err
	}
	a.selectedCourseID = ""
	if len(remaining) > 0 {
		a.selectedCourseID = remaining[0].ID
	}

	fmt.Println("Course deleted.")
	return nil
}

// UseCourse selects the course with the given id.
func (a *App) UseCourse(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	list, err := a.courses.Load(ctx, a.account.ID)
	if err != nil {
		return err
	}
	for _, c := range list {
		if c.ID == id {
			a.selectedCourseID = id
			fmt.Printf("Selected course %s\n", c.Name)
			return nil
		}
	}

	fmt.Println("No such course:", id)
	return common.ErrNotFound
}
