// Package clipboard writes text to the clipboard of the host, or leaves it to the user.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/at-ishikawa/metaboschema/internal/shell"
)

var ErrUnsupported = errors.New("no clipboard utility is available on this host")

// System writes to the host clipboard.
type System struct{}

// Unsupported reports whether the host has no clipboard utility.
func (System) Unsupported() bool {
	return clipboard.Unsupported
}

func (s System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Unsupported() {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard.WriteAll() > %w", err)
	}
	return nil
}

// Manual never reaches a clipboard. It is used where the user's clipboard is on another
// machine, so the user is shown the text to copy instead.
type Manual struct{}

func (Manual) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return shell.ErrManualCopy
}

// Memory keeps the last written text in process, for tests. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	text    string
	written bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.written = true
	return nil
}

// Text returns the last written text and whether anything was written.
func (m *Memory) Text() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, m.written
}
