package pattern

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mad-life/pkg/core"
)

// Source hands over a complete pattern buffer. A source that was aborted by
// the user returns an error wrapping core.ErrCancelled.
type Source func(ctx context.Context) ([]byte, error)

// FileSource reads the whole file at path. An empty path is treated as a
// cancelled selection.
func FileSource(path string) Source {
	return func(ctx context.Context) ([]byte, error) {
		if path == "" {
			return nil, core.ErrCancelled
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrCancelled, err)
		}
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read pattern %s: %w", path, err)
		}
		return buf, nil
	}
}

// BytesSource returns a source that always yields buf.
func BytesSource(buf []byte) Source {
	return func(context.Context) ([]byte, error) { return buf, nil }
}

// Cancelled returns a source that reports a user abort.
func Cancelled() Source {
	return func(context.Context) ([]byte, error) { return nil, core.ErrCancelled }
}

// Acquire runs src and normalises context cancellation into core.ErrCancelled.
func Acquire(ctx context.Context, src Source) ([]byte, error) {
	if src == nil {
		return nil, core.ErrCancelled
	}
	buf, err := src(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: %v", core.ErrCancelled, err)
	}
	return buf, err
}
