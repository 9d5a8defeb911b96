package protocol

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/zeusync/markerpush/internal/core/npc"
	"github.com/zeusync/markerpush/internal/core/physics"
)

// Reader decodes the engine's input stream.
type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<16)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

func (r *Reader) token() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", ErrTruncated
}

func (r *Reader) readInt() (int, error) {
	tok, err := r.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(ErrBadToken, "%q", tok)
	}
	return v, nil
}

func (r *Reader) readFloat() (float64, error) {
	tok, err := r.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrBadToken, "%q", tok)
	}
	return v, nil
}

func (r *Reader) count() (int, error) {
	n, err := r.readInt()
	if err != nil {
		return 0, err
	}
	if n < 0 || n > MaxCount {
		return 0, errors.Wrapf(ErrBadCount, "%d", n)
	}
	return n, nil
}

func (r *Reader) floats(dst ...*float64) error {
	for _, d := range dst {
		v, err := r.readFloat()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}

func (r *Reader) ReadField() (*npc.Field, error) {
	n, err := r.count()
	if err != nil {
		return nil, errors.Wrap(err, "read vertex count")
	}
	field := &npc.Field{Vertices: make([]physics.Vec3, n)}
	for i := range field.Vertices {
		v := &field.Vertices[i]
		if err := r.floats(&v.Xv, &v.Yv, &v.Zv); err != nil {
			return nil, errors.Wrapf(err, "read vertex %d", i)
		}
	}

	if n, err = r.count(); err != nil {
		return nil, errors.Wrap(err, "read region count")
	}
	field.Regions = make([][]int, n)
	for i := range field.Regions {
		m, err := r.count()
		if err != nil {
			return nil, errors.Wrapf(err, "read region %d size", i)
		}
		region := make([]int, m)
		for j := range region {
			if region[j], err = r.readInt(); err != nil {
				return nil, errors.Wrapf(err, "read region %d vertex %d", i, j)
			}
		}
		field.Regions[i] = region
	}
	return field, nil
}

func (r *Reader) ReadTurn() (*npc.Turn, error) {
	num, err := r.readInt()
	if err != nil {
		return nil, errors.Wrap(err, "read turn number")
	}
	turn := &npc.Turn{Number: num}
	if turn.Over() {
		return turn, nil
	}

	for i := range turn.Scores {
		if turn.Scores[i], err = r.readInt(); err != nil {
			return nil, errors.Wrapf(err, "turn %d: read score %d", num, i)
		}
	}

	n, err := r.count()
	if err != nil {
		return nil, errors.Wrapf(err, "turn %d: read region colour count", num)
	}
	turn.RegionColors = make([]npc.Color, n)
	for i := range turn.RegionColors {
		c, err := r.readInt()
		if err != nil {
			return nil, errors.Wrapf(err, "turn %d: read region colour %d", num, i)
		}
		turn.RegionColors[i] = npc.Color(c)
	}

	if n, err = r.count(); err != nil {
		return nil, errors.Wrapf(err, "turn %d: read pusher count", num)
	}
	turn.Pushers = make([]npc.Pusher, n)
	for i := range turn.Pushers {
		p := &turn.Pushers[i]
		if err := r.floats(&p.Pos.Xv, &p.Pos.Yv, &p.Vel.Xv, &p.Vel.Yv); err != nil {
			return nil, errors.Wrapf(err, "turn %d: read pusher %d", num, i)
		}
	}

	if n, err = r.count(); err != nil {
		return nil, errors.Wrapf(err, "turn %d: read marker count", num)
	}
	turn.Markers = make([]npc.Marker, n)
	for i := range turn.Markers {
		m := &turn.Markers[i]
		if err := r.floats(&m.Pos.Xv, &m.Pos.Yv, &m.Vel.Xv, &m.Vel.Yv); err != nil {
			return nil, errors.Wrapf(err, "turn %d: read marker %d", num, i)
		}
		c, err := r.readInt()
		if err != nil {
			return nil, errors.Wrapf(err, "turn %d: read marker %d colour", num, i)
		}
		m.Color = npc.Color(c)
	}
	return turn, nil
}
