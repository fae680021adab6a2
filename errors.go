package revealframes

import (
	"fmt"
)

// ErrMissingInput is returned when the input root or an identifier folder
// does not exist. It is detected before anything is written.
type ErrMissingInput struct {
	Identifier string
	Path       string
	Err        error
}

func (e ErrMissingInput) Error() string {
	if e.Identifier == "" {
		return fmt.Sprintf("cannot find the input directory '%s': %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot find the input folder of '%s' at '%s': %v", e.Identifier, e.Path, e.Err)
}

func (e ErrMissingInput) Unwrap() error {
	return e.Err
}

// ErrOutputSetup is returned when the output directory cannot be removed
// or created.
type ErrOutputSetup struct {
	Op   string
	Path string
	Err  error
}

func (e ErrOutputSetup) Error() string {
	return fmt.Sprintf("unable to %s the output directory '%s': %v", e.Op, e.Path, e.Err)
}

func (e ErrOutputSetup) Unwrap() error {
	return e.Err
}

// ErrIdentifier names the identifier and the operation a fatal error
// happened in.
type ErrIdentifier struct {
	Identifier string
	Op         string
	Err        error
}

func (e ErrIdentifier) Error() string {
	return fmt.Sprintf("'%s': unable to %s: %v", e.Identifier, e.Op, e.Err)
}

func (e ErrIdentifier) Unwrap() error {
	return e.Err
}
