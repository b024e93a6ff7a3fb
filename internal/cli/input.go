package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/keyword-lifecycle/internal/config"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// ReadAll reads r to the end unless ctx is canceled first. A canceled read
// leaves its goroutine blocked until r returns.
func ReadAll(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		err   error
		value []byte
	}
	resultCh := make(chan result, 1)

	go func() {
		value, err := io.ReadAll(r)
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		return string(res.value), res.err
	}
}

// ReadInput reads the named file, or stdin when path is "-" or empty.
func ReadInput(ctx context.Context, path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		return ReadAll(ctx, stdin)
	}

	data, err := os.ReadFile(config.ExpandPath(path))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
