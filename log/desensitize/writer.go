package desensitize

import (
	"io"

	"github.com/kochabx/vapid/log/internal/pool"
)

// Writer desensitizes every write before passing it on
type Writer struct {
	writer io.Writer
	hook   *Hook
}

// NewWriter wraps w with hook
func NewWriter(w io.Writer, hook *Hook) *Writer {
	if w == nil {
		panic("desensitize: writer cannot be nil")
	}
	if hook == nil {
		panic("desensitize: hook cannot be nil")
	}
	return &Writer{writer: w, hook: hook}
}

// Write reports len(p) on success even when the masked line differs in size.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 || w.hook.RuleCount() == 0 {
		return w.writer.Write(p)
	}

	text := string(p)
	masked := w.hook.Desensitize(text)
	if masked == text {
		return w.writer.Write(p)
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	buf.WriteString(masked)
	if _, err := w.writer.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
