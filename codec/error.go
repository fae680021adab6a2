package codec

import (
	"fmt"
)

type ErrDecode struct {
	Path string
	Err  error
}

func (e ErrDecode) Error() string {
	return fmt.Sprintf("unable to decode '%s': %v", e.Path, e.Err)
}

func (e ErrDecode) Unwrap() error {
	return e.Err
}

type ErrEncode struct {
	Path   string
	Format Format
	Err    error
}

func (e ErrEncode) Error() string {
	return fmt.Sprintf("unable to encode '%s' as %s: %v", e.Path, e.Format, e.Err)
}

func (e ErrEncode) Unwrap() error {
	return e.Err
}
