package series

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrIO reports that the input could not be opened or read.
	ErrIO = errors.New("i/o error")
	// ErrFormat reports a line with fewer fields than the requested column.
	ErrFormat = errors.New("malformed line")
	// ErrParse reports a selected field that is not a number.
	ErrParse = errors.New("invalid number")
)

// ColumnOptions holds options for column loading.
type ColumnOptions struct {
	HasHeader bool // Discard the first line
	Column    int  // 0-based field index
}

// LoadColumn loads one column of a CSV file as a series.
func LoadColumn(path string, opts ColumnOptions) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer file.Close()

	s, err := ReadColumn(file, opts)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	s.Name = fmt.Sprintf("%s[%d]", filepath.Base(path), opts.Column)
	return s, nil
}

// ReadColumn loads one column from an io.Reader. Each line is split on
// commas without quoting or trimming; only the line terminator is removed.
// An empty input, or one holding only the header, yields an empty series.
func ReadColumn(r io.Reader, opts ColumnOptions) (*Series, error) {
	if opts.Column < 0 {
		return nil, errors.Wrapf(ErrFormat, "column %d is negative", opts.Column)
	}

	br := bufio.NewReader(r)
	values := []float64{}
	for ln := 1; ; ln++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.WithMessagef(ioError(err), "line %d", ln)
		}
		if line == "" && err == io.EOF {
			break
		}

		if ln > 1 || !opts.HasHeader {
			v, perr := pick(trimEOL(line), opts.Column)
			if perr != nil {
				return nil, errors.WithMessagef(perr, "line %d", ln)
			}
			values = append(values, v)
		}

		if err == io.EOF {
			break
		}
	}

	return &Series{Values: values}, nil
}

// pick returns the numeric value of field col of line.
func pick(line string, col int) (float64, error) {
	fields := strings.Split(line, ",")
	if col >= len(fields) {
		return 0, errors.Wrapf(ErrFormat, "column %d out of range (%d found)", col, len(fields))
	}
	return ParseValue(fields[col])
}

// ParseValue parses a decimal integer or floating-point literal. Hex forms,
// NaN and infinities are rejected.
func ParseValue(field string) (float64, error) {
	digits := strings.TrimLeft(field, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, errors.Wrapf(ErrParse, "field %q", field)
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrParse, "field %q", field)
	}
	return v, nil
}

// ioError marks err as ErrIO. pkg/errors wraps a single cause, so the
// *os.PathError is kept in the chain with fmt.Errorf.
func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// WriteColumn writes s as a one-column CSV. The header line is omitted when
// header is empty. Values use the shortest form that parses back exactly.
func WriteColumn(w io.Writer, s *Series, header string) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		bw.WriteString(header)
		bw.WriteString("\n")
	}
	for _, v := range s.Values {
		bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// SaveColumn writes s to the named file, see WriteColumn.
func SaveColumn(path string, s *Series, header string) error {
	file, err := os.Create(path)
	if err != nil {
		return ioError(err)
	}
	if err := WriteColumn(file, s, header); err != nil {
		file.Close()
		return ioError(err)
	}
	if err := file.Close(); err != nil {
		return ioError(err)
	}
	return nil
}
