package series

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadColumn(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		opts     ColumnOptions
		expected []float64
	}{
		{"single column", "10\n11\n12\n14\n9\n", ColumnOptions{}, []float64{10, 11, 12, 14, 9}},
		{"no trailing newline", "10\n11\n12", ColumnOptions{}, []float64{10, 11, 12}},
		{"header", "gpa\n2.4\n2.52\n", ColumnOptions{HasHeader: true}, []float64{2.4, 2.52}},
		{"second column", "id,gpa,sat\n1,2.4,1714\n2,2.52,1664\n", ColumnOptions{HasHeader: true, Column: 2}, []float64{1714, 1664}},
		{"crlf", "1,2\r\n3,4\r\n", ColumnOptions{Column: 1}, []float64{2, 4}},
		{"exponent", "1e3\n-2.5E-1\n", ColumnOptions{}, []float64{1000, -0.25}},
		{"empty", "", ColumnOptions{}, []float64{}},
		{"header only", "x,y\n", ColumnOptions{HasHeader: true}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ReadColumn(strings.NewReader(tt.data), tt.opts)
			if err != nil {
				t.Fatalf("Failed to read column: %v", err)
			}
			if diff := cmp.Diff(tt.expected, s.Values); diff != "" {
				t.Errorf("Values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadColumnErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		opts   ColumnOptions
		target error
	}{
		{"too few fields", "1,2\n3\n", ColumnOptions{Column: 1}, ErrFormat},
		{"negative column", "1\n", ColumnOptions{Column: -1}, ErrFormat},
		{"not a number", "1\nabc\n", ColumnOptions{}, ErrParse},
		{"padded field", "1, 2\n", ColumnOptions{Column: 1}, ErrParse},
		{"blank line", "1\n\n2\n", ColumnOptions{}, ErrParse},
		{"header not skipped", "gpa\n2.4\n", ColumnOptions{}, ErrParse},
		{"quoted field", "\"1\"\n", ColumnOptions{}, ErrParse},
		{"nan", "1\nNaN\n", ColumnOptions{}, ErrParse},
		{"inf", "inf\n", ColumnOptions{}, ErrParse},
		{"negative infinity", "1,-Infinity\n", ColumnOptions{Column: 1}, ErrParse},
		{"hex float", "0x1p-2\n", ColumnOptions{}, ErrParse},
		{"signed hex", "-0X10\n", ColumnOptions{}, ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ReadColumn(strings.NewReader(tt.data), tt.opts)
			if err == nil {
				t.Fatalf("Expected error, got values %v", s.Values)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestReadColumnReportsLine(t *testing.T) {
	_, err := ReadColumn(strings.NewReader("x\n1\n2\nbad\n"), ColumnOptions{HasHeader: true})
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("Expected error to name line 4, got %q", err)
	}
}

func TestLoadColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("10\n11\n12\n14\n9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadColumn(path, ColumnOptions{})
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if diff := cmp.Diff([]float64{10, 11, 12, 14, 9}, s.Values); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	if s.Name != "data.csv[0]" {
		t.Errorf("Expected name data.csv[0], got %q", s.Name)
	}

	// The same file read as if it had a header loses its first row.
	s, err = LoadColumn(path, ColumnOptions{HasHeader: true})
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if diff := cmp.Diff([]float64{11, 12, 14, 9}, s.Values); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadColumnMissingFile(t *testing.T) {
	_, err := LoadColumn(filepath.Join(t.TempDir(), "missing.csv"), ColumnOptions{})
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoadColumnErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("1\nx\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadColumn(path, ColumnOptions{})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Expected ErrParse, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error to name %s, got %q", path, err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	values := []float64{2.4, 2.52, 0.1, -1714, 1e-9, 3.0000000000000004}
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := SaveColumn(path, New(values), "value"); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	s, err := LoadColumn(path, ColumnOptions{HasHeader: true})
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if diff := cmp.Diff(values, s.Values); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteColumnWithoutHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteColumn(&buf, New([]float64{10, 1.5}), ""); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "10\n1.5\n" {
		t.Errorf("Expected %q, got %q", "10\n1.5\n", got)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		field    string
		expected float64
	}{
		{"10", 10},
		{"-2.5", -2.5},
		{"+3", 3},
		{"1e-3", 0.001},
		{"0.5", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			v, err := ParseValue(tt.field)
			if err != nil {
				t.Fatalf("ParseValue(%q) failed: %v", tt.field, err)
			}
			if v != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, v)
			}
		})
	}

	for _, field := range []string{"NaN", "nan", "Inf", "+inf", "-Infinity", "0x1p-2", "0X1", "", "1e400"} {
		if _, err := ParseValue(field); !errors.Is(err, ErrParse) {
			t.Errorf("ParseValue(%q): expected ErrParse, got %v", field, err)
		}
	}
}
