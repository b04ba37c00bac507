package ux

import (
	"fmt"
	"io"
)

// LectureRow is one line of the course inventory.
type LectureRow struct {
	Name       string
	Title      string
	Built      bool // aggregated output exists for this lecture
	HasDir     bool // a source directory exists on disk
	Registered bool // an entry exists in the slides config
}

// RenderLectures prints the full inventory display for a course.
func RenderLectures(w io.Writer, courseName string, rows []LectureRow) {
	fmt.Fprintf(w, "%sCourse:%s  %s\n", Bold, Reset, courseName)
	if len(rows) == 0 {
		fmt.Fprintf(w, "\n  %s(no lectures yet)%s\n\n", Dim, Reset)
		return
	}

	fmt.Fprintf(w, "\n%sLectures:%s\n", Bold, Reset)
	for i, r := range rows {
		state := fmt.Sprintf("%spending%s", Dim, Reset)
		switch {
		case !r.HasDir:
			state = fmt.Sprintf("%smissing%s", Red, Reset)
		case !r.Registered:
			state = fmt.Sprintf("%suntracked%s", Yellow, Reset)
		case r.Built:
			state = fmt.Sprintf("%sbuilt%s", Green, Reset)
		}
		title := r.Title
		if title == "" {
			title = fmt.Sprintf("%s(no title)%s", Dim, Reset)
		}
		fmt.Fprintf(w, "  %s%2d%s  %-28s %-20s %s\n", Dim, i+1, Reset, r.Name, state, title)
	}
	fmt.Fprintln(w)
}
