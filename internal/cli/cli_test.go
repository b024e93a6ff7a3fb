package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		format func(string) string
		name   string
		icon   string
	}{
		{name: "success", format: FormatSuccess, icon: SuccessIcon},
		{name: "error", format: FormatError, icon: ErrorIcon},
		{name: "warning", format: FormatWarning, icon: WarningIcon},
		{name: "info", format: FormatInfo, icon: InfoIcon},
		{name: "title", format: FormatTitle, icon: TargetIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.format("3 keywords ingested")
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "3 keywords ingested")
		})
	}
}

func TestFormatScoreAndTier(t *testing.T) {
	assert.Contains(t, FormatScore(85), " 85")
	assert.Contains(t, FormatScore(7), "  7")
	assert.Contains(t, FormatTier("Medium"), "Medium")
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Plan", "12 keywords")
	assert.Contains(t, out, "Plan")
	assert.Contains(t, out, "12 keywords")
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf)
	table.Row("yoga mat", "82")
	table.Row("non slip yoga mat", "64")
	require.NoError(t, table.Flush())

	assert.Equal(t, "yoga mat           82\nnon slip yoga mat  64\n", buf.String())
}

func TestTable_StyledCellsAlignByVisibleWidth(t *testing.T) {
	green := "\x1b[32m 85\x1b[0m"
	red := "\x1b[1;31m  7\x1b[0m"

	var buf bytes.Buffer
	table := NewTable(&buf)
	table.Row(green, "High", "yoga mat")
	table.Row(" 42", "Medium", "yoga block")
	table.Row(red, "Low", "mat")
	require.NoError(t, table.Flush())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, green+"  High    yoga mat", lines[0])
	assert.Equal(t, " 42  Medium  yoga block", lines[1])
	assert.Equal(t, red+"  Low     mat", lines[2])
}

func TestNewProgress(t *testing.T) {
	var buf syncBuffer
	progress := NewProgress(&buf, 3, "Planning")
	for i := 1; i <= 3; i++ {
		progress(i, 3)
	}
	assert.Contains(t, buf.String(), "3/3")
}

func TestReadAll(t *testing.T) {
	got, err := ReadAll(context.Background(), strings.NewReader("yoga mat\nyoga block\n"))
	require.NoError(t, err)
	assert.Equal(t, "yoga mat\nyoga block\n", got)
}

func TestReadAll_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pr.Close() }()
	defer func() { _ = pw.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := ReadAll(ctx, pr)
	assert.Equal(t, ErrInputCancelled, err)
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.txt")
	require.NoError(t, os.WriteFile(path, []byte("yoga mat\n"), 0o600))

	got, err := ReadInput(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, "yoga mat\n", got)

	got, err = ReadInput(context.Background(), "-", strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	_, err = ReadInput(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.Error(t, err)
}

func TestInterruptHandler(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	ctx, stop := handler.HandleInterrupts(context.Background())
	defer stop()

	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled initially")
	default:
	}

	handler.signals <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled after interrupt")
	}

	assert.Eventually(t, handler.WasInterrupted, time.Second, 10*time.Millisecond)
	assert.Contains(t, output.String(), "Interrupted")
}

func TestInterruptHandler_StopWithoutSignal(t *testing.T) {
	handler := NewInterruptHandler(nil)
	ctx, stop := handler.HandleInterrupts(context.Background())
	stop()

	<-ctx.Done()
	assert.False(t, handler.WasInterrupted())
}
