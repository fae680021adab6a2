// Package types contains small types shared between the batch runner and
// its callers.
package types

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/atomic"
)

// Statistics is a snapshot of Counters.
type Statistics struct {
	Identifiers       uint64 `json:",omitempty"`
	FramesWritten     uint64 `json:",omitempty"`
	FramesOverwritten uint64 `json:",omitempty"`
	BytesRead         uint64 `json:",omitempty"`
	BytesWritten      uint64 `json:",omitempty"`
}

func (s Statistics) String() string {
	return fmt.Sprintf(
		"identifiers:%d frames:%d (overwritten:%d) read:%s wrote:%s",
		s.Identifiers, s.FramesWritten, s.FramesOverwritten,
		humanize.Bytes(s.BytesRead), humanize.Bytes(s.BytesWritten),
	)
}

// Counters are the live statistics of a batch run; they may be read from
// another goroutine while the run is in progress.
type Counters struct {
	Identifiers       atomic.Uint64
	FramesWritten     atomic.Uint64
	FramesOverwritten atomic.Uint64
	BytesRead         atomic.Uint64
	BytesWritten      atomic.Uint64
}

func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) ToStats() Statistics {
	return Statistics{
		Identifiers:       c.Identifiers.Load(),
		FramesWritten:     c.FramesWritten.Load(),
		FramesOverwritten: c.FramesOverwritten.Load(),
		BytesRead:         c.BytesRead.Load(),
		BytesWritten:      c.BytesWritten.Load(),
	}
}
