package mines

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NewExportMap builds a fully generated board for export, keeping the centre
// cell safe.
func NewExportMap(size int, opts ...Option) (*Engine, error) {
	e, err := New(size, opts...)
	if err != nil {
		return nil, err
	}
	if err := e.GenerateMap(size/2, size/2); err != nil {
		return nil, err
	}
	return e, nil
}

// WriteExport writes "<size> <mineCount>" followed by one line per row of
// space separated values, mines as [ExportMineMarker].
func WriteExport(w io.Writer, e *Engine) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", e.size, e.mineCount)
	row := make([]string, e.size)
	for r := range e.size {
		for c := range e.size {
			v := e.cells[r*e.size+c].Value
			if v == Mine {
				row[c] = ExportMineMarker
			} else {
				row[c] = strconv.Itoa(v)
			}
		}
		fmt.Fprintln(bw, strings.Join(row, " "))
	}
	return bw.Flush()
}

// longest line ReadExport accepts
const maxExportLine = 1 << 20

// ReadExport parses a map written by [WriteExport] and rebuilds it as a
// generated board. Hints are recomputed and must agree with the file.
func ReadExport(r io.Reader) (*Engine, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxExportLine)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptExport, err)
		}
		return nil, fmt.Errorf("%w: missing header", ErrCorruptExport)
	}

	var size, mineCount int
	if n, err := fmt.Sscanf(scanner.Text(), "%d %d", &size, &mineCount); n != 2 || err != nil {
		return nil, fmt.Errorf("%w: invalid header %q", ErrCorruptExport, scanner.Text())
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrCorruptExport, size)
	}

	var (
		values = make([][]int, 0, size)
		mines  []Point
		safe   *Point
	)
	for row := 0; row < size; row++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCorruptExport, err)
			}
			return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrCorruptExport, size, row)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != size {
			return nil, fmt.Errorf(
				"%w: row %d has %d values, expected %d", ErrCorruptExport, row+1, len(fields), size,
			)
		}
		line := make([]int, size)
		for col, f := range fields {
			if f == ExportMineMarker {
				line[col] = Mine
				mines = append(mines, Point{row, col})
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v > 8 {
				return nil, fmt.Errorf("%w: bad value %q at row %d", ErrCorruptExport, f, row+1)
			}
			line[col] = v
			if safe == nil {
				safe = &Point{row, col}
			}
		}
		values = append(values, line)
	}

	if len(mines) != mineCount {
		return nil, fmt.Errorf(
			"%w: header says %d mines, found %d", ErrCorruptExport, mineCount, len(mines),
		)
	}
	if safe == nil {
		return nil, fmt.Errorf("%w: no safe cell", ErrCorruptExport)
	}

	e, err := New(size, WithPlacer(FixedPlacer(mines...)))
	if err != nil {
		return nil, err
	}
	if err := e.GenerateMap(safe.Row, safe.Col); err != nil {
		return nil, err
	}
	for row, line := range values {
		for col, v := range line {
			if e.cells[row*size+col].Value != v {
				return nil, fmt.Errorf(
					"%w: hint at row %d col %d is %d, expected %d",
					ErrCorruptExport, row+1, col+1, v, e.cells[row*size+col].Value,
				)
			}
		}
	}
	return e, nil
}
