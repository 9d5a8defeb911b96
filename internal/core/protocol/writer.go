package protocol

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/zeusync/markerpush/internal/core/physics"
)

// Writer encodes one line of forces per turn and flushes it immediately, since the
// engine waits for the line before sending the next snapshot.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteForces writes "fx fy " for each force followed by a newline.
func (w *Writer) WriteForces(forces []physics.Vec2) error {
	b := w.buf[:0]
	for _, f := range forces {
		b = strconv.AppendFloat(b, f.Xv, 'g', -1, 64)
		b = append(b, ' ')
		b = strconv.AppendFloat(b, f.Yv, 'g', -1, 64)
		b = append(b, ' ')
	}
	b = append(b, '\n')
	w.buf = b

	if _, err := w.w.Write(b); err != nil {
		return errors.Wrap(err, "write forces")
	}
	return errors.Wrap(w.w.Flush(), "flush forces")
}
