package point

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLine parses a single "x,y,z" line (any positive arity) into a Point.
// Surrounding whitespace on the line and on each field is ignored.
func ParseLine(line string) (Point, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%w: empty line", ErrMalformedLine)
	}

	fields := strings.Split(line, ",")
	p := make(Point, len(fields))
	for k, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d %q: %v", ErrMalformedLine, k, f, err)
		}
		p[k] = v
	}

	return p, nil
}

// Read consumes r line by line and returns the parsed points in input order.
// Blank lines are skipped. Every point must share the arity of the first one.
func Read(r io.Reader) ([]Point, error) {
	var (
		points []Point
		dim    int
		lineNo int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		p, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if dim == 0 {
			dim = p.Dim()
		} else if p.Dim() != dim {
			return nil, fmt.Errorf("line %d: %w: got %d axes, want %d", lineNo, ErrDimensionMismatch, p.Dim(), dim)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return points, nil
}

// Parse is Read over an in-memory string.
func Parse(input string) ([]Point, error) {
	return Read(strings.NewReader(input))
}
