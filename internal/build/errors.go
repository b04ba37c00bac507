package build

import (
	"fmt"
	"strings"

	"github.com/jorge-barreto/lectern/internal/toolchain"
)

// Kind classifies a build failure for presentation.
type Kind string

const (
	KindLectureNotFound Kind = "lecture-not-found"
	KindNPMNotFound     Kind = "npm-not-found"
	KindBuildFailed     Kind = "build-failed"
	KindTimeout         Kind = "timeout"
)

// Error is a classified build failure tied to one lecture.
type Error struct {
	Kind     Kind
	Lecture  string
	Message  string
	ExitCode int // -1 when the toolchain never produced one
}

func (e *Error) Error() string {
	if e.Lecture == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Lecture, e.Kind, e.Message)
}

// Classifier maps a failed toolchain result onto a build Error.
type Classifier interface {
	Classify(lecture string, res toolchain.Result) *Error
}

// MessageClassifier inspects the failure text for the signatures the
// JavaScript toolchain actually emits: ENOENT and "command not found"
// point at a missing tool, "timed out" at the run deadline, everything
// else is an ordinary build failure.
type MessageClassifier struct{}

func (MessageClassifier) Classify(lecture string, res toolchain.Result) *Error {
	msg := res.Failure()
	lower := strings.ToLower(msg)
	kind := KindBuildFailed
	switch {
	case strings.Contains(lower, "timed out") || strings.Contains(lower, "timeout"):
		kind = KindTimeout
	case strings.Contains(msg, "ENOENT") ||
		strings.Contains(lower, "not found") ||
		strings.Contains(lower, "no such file"):
		kind = KindNPMNotFound
	}
	return &Error{Kind: kind, Lecture: lecture, Message: msg, ExitCode: res.ExitCode}
}
