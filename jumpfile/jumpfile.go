package jumpfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/jumppath/gridgraph"
)

var (
	// ErrMalformed indicates input that does not follow the block format.
	ErrMalformed = fmt.Errorf("%w: malformed problem file", gridgraph.ErrInvalidConfig)

	// ErrNoProblems indicates input with no problem block before the terminator.
	ErrNoProblems = fmt.Errorf("%w: no problems found", gridgraph.ErrInvalidConfig)
)

const (
	terminator  = "0"
	headerWidth = 6
	maxLine     = 16 << 20
	maxPrealloc = 1024 // rows reserved up front; the header count is untrusted
)

// Problem is one block of a problem file.
type Problem struct {
	Matrix      [][]int
	Start, Goal gridgraph.Pos
}

// Graph builds the jump graph of p.
func (p Problem) Graph(opts ...gridgraph.Option) (*gridgraph.Graph, error) {
	return gridgraph.Build(p.Matrix, p.Start, p.Goal, opts...)
}

// String renders p as a block: header line, then one line per row.
func (p Problem) String() string {
	var sb strings.Builder
	cols := 0
	if len(p.Matrix) > 0 {
		cols = len(p.Matrix[0])
	}
	fmt.Fprintf(&sb, "%d %d %d %d %d %d", len(p.Matrix), cols, p.Start.Row, p.Start.Col, p.Goal.Row, p.Goal.Col)
	for _, row := range p.Matrix {
		sb.WriteByte('\n')
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// lineReader tracks the current line number for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++
	return lr.sc.Text(), true
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, lr.line, fmt.Sprintf(format, args...))
}

// Parse reads every problem block from r.
func Parse(r io.Reader) ([]Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	lr := &lineReader{sc: sc}

	var problems []Problem
	for {
		text, ok := lr.next()
		if !ok {
			break
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if text == terminator {
			break
		}

		p, err := parseBlock(lr, text)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("jumpfile: read: %w", err)
	}
	if len(problems) == 0 {
		return nil, ErrNoProblems
	}

	return problems, nil
}

// parseBlock parses a block whose header line has already been read.
func parseBlock(lr *lineReader, header string) (Problem, error) {
	h, err := ints(header)
	if err != nil {
		return Problem{}, lr.errorf("header: %v", err)
	}
	if len(h) != headerWidth {
		return Problem{}, lr.errorf("header wants %d integers, got %d", headerWidth, len(h))
	}
	rows, cols := h[0], h[1]
	if rows < 1 || cols < 1 {
		return Problem{}, lr.errorf("grid must be at least 1×1, got %d×%d", rows, cols)
	}

	p := Problem{
		Matrix: make([][]int, 0, min(rows, maxPrealloc)),
		Start:  gridgraph.Pos{Row: h[2], Col: h[3]},
		Goal:   gridgraph.Pos{Row: h[4], Col: h[5]},
	}
	for i := 0; i < rows; i++ {
		text, ok := lr.next()
		if !ok {
			return Problem{}, lr.errorf("unexpected end of input, read %d of %d rows", i, rows)
		}
		row, err := ints(text)
		if err != nil {
			return Problem{}, lr.errorf("%v", err)
		}
		if len(row) != cols {
			return Problem{}, lr.errorf("expected %d columns, got %d", cols, len(row))
		}
		p.Matrix = append(p.Matrix, row)
	}

	return p, nil
}

// ints splits s on whitespace and parses every field as a decimal integer.
func ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %q is not an integer", i+1, f)
		}
		out[i] = v
	}
	return out, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("jumpfile: %w", err)
	}
	defer f.Close()

	problems, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return problems, nil
}

// Write emits problems in the block format followed by the terminator line.
func Write(w io.Writer, problems []Problem) error {
	bw := bufio.NewWriter(w)
	for _, p := range problems {
		if _, err := fmt.Fprintln(bw, p.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, terminator); err != nil {
		return err
	}
	return bw.Flush()
}
