// Package formats provides parsers for mesh file formats used by the editor.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// OFF format errors.
var (
	ErrInvalidOFFHeader = errors.New("invalid OFF header: expected 'OFF'")
	ErrTruncatedOFFData = errors.New("truncated OFF data")
	ErrInvalidOFFFace   = errors.New("invalid OFF face")
)

// OFF is a parsed Object File Format mesh.
// Polygons with more than three vertices are fan-triangulated, so Indices is
// always a triangle list.
type OFF struct {
	Vertices [][3]float32
	Indices  []uint32
	// FaceCount is the number of polygons declared in the file.
	FaceCount int
}

// TriangleCount returns the number of triangles in Indices.
func (o *OFF) TriangleCount() int {
	return len(o.Indices) / 3
}

// LoadOFF reads and parses an OFF file from disk.
func LoadOFF(path string) (*OFF, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OFF file: %w", err)
	}
	return ParseOFF(data)
}

// ParseOFF parses OFF data from a byte slice.
func ParseOFF(data []byte) (*OFF, error) {
	tok := newTokenizer(data)

	magic, ok := tok.next()
	if !ok {
		return nil, ErrTruncatedOFFData
	}

	// Some exporters glue the counts to the magic ("OFF8 12 0").
	rest := strings.TrimPrefix(magic, "OFF")
	if rest == magic {
		return nil, ErrInvalidOFFHeader
	}
	if rest != "" {
		tok.push(rest)
	}

	counts, err := tok.ints(3)
	if err != nil {
		return nil, fmt.Errorf("reading counts: %w", err)
	}
	nVerts, nFaces := counts[0], counts[1]
	if nVerts < 0 || nFaces < 0 {
		return nil, fmt.Errorf("%w: negative element count", ErrInvalidOFFHeader)
	}

	off := &OFF{
		Vertices:  make([][3]float32, nVerts),
		Indices:   make([]uint32, 0, nFaces*3),
		FaceCount: nFaces,
	}

	for i := 0; i < nVerts; i++ {
		for j := 0; j < 3; j++ {
			v, err := tok.float()
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
			off.Vertices[i][j] = v
		}
	}

	for i := 0; i < nFaces; i++ {
		n, err := tok.int()
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		if n < 3 {
			return nil, fmt.Errorf("%w %d: %d vertices", ErrInvalidOFFFace, i, n)
		}
		ids, err := tok.ints(n)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		for _, id := range ids {
			if id < 0 || id >= nVerts {
				return nil, fmt.Errorf("%w %d: vertex index %d out of range", ErrInvalidOFFFace, i, id)
			}
		}
		for k := 1; k+1 < n; k++ {
			off.Indices = append(off.Indices, uint32(ids[0]), uint32(ids[k]), uint32(ids[k+1]))
		}
	}

	return off, nil
}

// tokenizer splits OFF text into whitespace separated fields, skipping comments.
type tokenizer struct {
	lines   *bufio.Scanner
	fields  []string
	pending []string
}

func newTokenizer(data []byte) *tokenizer {
	return &tokenizer{lines: bufio.NewScanner(bytes.NewReader(data))}
}

func (t *tokenizer) push(s string) {
	t.pending = append(t.pending, s)
}

func (t *tokenizer) next() (string, bool) {
	if n := len(t.pending); n > 0 {
		s := t.pending[n-1]
		t.pending = t.pending[:n-1]
		return s, true
	}
	for len(t.fields) == 0 {
		if !t.lines.Scan() {
			return "", false
		}
		line := t.lines.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		t.fields = strings.Fields(line)
	}
	s := t.fields[0]
	t.fields = t.fields[1:]
	return s, true
}

func (t *tokenizer) int() (int, error) {
	s, ok := t.next()
	if !ok {
		return 0, ErrTruncatedOFFData
	}
	return strconv.Atoi(s)
}

func (t *tokenizer) ints(n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		v, err := t.int()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (t *tokenizer) float() (float32, error) {
	s, ok := t.next()
	if !ok {
		return 0, ErrTruncatedOFFData
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}
