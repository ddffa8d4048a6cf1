package distro

import (
	"errors"
	"fmt"
)

// ErrClassification matches every *ClassifyError via errors.Is.
var ErrClassification = errors.New("classification failed")

// ErrorKind tells which classification rule rejected the input.
type ErrorKind int

const (
	MalformedURL ErrorKind = iota + 1
	UnknownFamily
	UnknownVersion
	UnexpectedFilename
	UnknownLabel
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedURL:
		return "malformed url"
	case UnknownFamily:
		return "unknown family"
	case UnknownVersion:
		return "unknown version"
	case UnexpectedFilename:
		return "unexpected filename"
	case UnknownLabel:
		return "unknown label"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ClassifyError is the fatal error returned when a URL, identity or filename
// is outside the known tables. Callers are expected to abort the run.
type ClassifyError struct {
	Kind    ErrorKind
	Input   string // offending URL segment or filename
	URL     string // repository or package URL, when known
	Family  Family
	Version string
}

func (e *ClassifyError) Error() string {
	var msg string
	switch e.Kind {
	case MalformedURL:
		msg = fmt.Sprintf("malformed repository URL %q", e.Input)
	case UnknownFamily:
		msg = fmt.Sprintf("unknown distro %s", e.Family)
	case UnknownVersion:
		msg = fmt.Sprintf("unknown %s version %s", e.Family, e.Version)
	case UnexpectedFilename:
		msg = fmt.Sprintf("unexpected filename %q", e.Input)
	case UnknownLabel:
		msg = fmt.Sprintf("unknown distro for %q", e.Input)
	default:
		msg = e.Kind.String()
	}
	if e.URL != "" && e.Kind != MalformedURL {
		msg += " (url " + e.URL + ")"
	}
	return msg
}

// Is reports whether target is ErrClassification.
func (e *ClassifyError) Is(target error) bool {
	return target == ErrClassification
}
