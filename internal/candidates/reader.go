package candidates

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/talentdesk/recruitsync/internal/normalize"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

const utf8BOM = "\uFEFF"

// Reader streams candidates from CSV content.
// Thread-Safety: NOT safe for concurrent use.
type Reader struct {
	csv       *csv.Reader
	index     map[string]int
	normalize bool
	line      int
}

// NewReader reads and validates the header from r.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	// Spreadsheet exports leave quotes inside unquoted fields (Dwayne "The Rock").
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row: %w", recruit.ErrMalformedInput)
		}
		return nil, fmt.Errorf("failed to read header: %v: %w", err, recruit.ErrMalformedInput)
	}

	index, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	return &Reader{csv: cr, index: index, line: 1}, nil
}

// WithNormalization makes Next apply NormalizeEmail and CleanPhone to each row.
func (r *Reader) WithNormalization(enabled bool) *Reader {
	r.normalize = enabled
	return r
}

// Line returns the line number of the last record read (1 is the header).
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next candidate, or io.EOF when the file is exhausted.
func (r *Reader) Next() (recruit.Candidate, error) {
	record, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return recruit.Candidate{}, io.EOF
		}
		// csv.ParseError already carries the line number
		return recruit.Candidate{}, fmt.Errorf("%v: %w", err, recruit.ErrMalformedInput)
	}
	r.line, _ = r.csv.FieldPos(0)

	for i, field := range record {
		if !utf8.ValidString(field) {
			return recruit.Candidate{}, fmt.Errorf("line %d, field %d: invalid UTF-8: %w", r.line, i+1, recruit.ErrMalformedInput)
		}
	}

	c := recruit.Candidate{
		FirstName: record[r.index["first_name"]],
		LastName:  record[r.index["last_name"]],
		Email:     record[r.index["email"]],
		Phone:     record[r.index["phone"]],
		Skills:    record[r.index["skills"]],
	}

	if r.normalize {
		c.Email = normalize.NormalizeEmail(c.Email)
		c.Phone = normalize.CleanPhone(c.Phone)
	}

	return c, nil
}

// indexHeader maps each required column to its position.
func indexHeader(header []string) (map[string]int, error) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q in header: %w", name, recruit.ErrMalformedInput)
		}
		index[name] = i
	}

	var missing []string
	for _, col := range recruit.CandidateColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header is missing column(s) %s: %w", strings.Join(missing, ", "), recruit.ErrMalformedInput)
	}

	if len(index) != len(recruit.CandidateColumns) {
		var extra []string
		for name := range index {
			if !isCandidateColumn(name) {
				extra = append(extra, name)
			}
		}
		return nil, fmt.Errorf("header has unexpected column(s) %s: %w", strings.Join(extra, ", "), recruit.ErrMalformedInput)
	}

	return index, nil
}

func isCandidateColumn(name string) bool {
	for _, col := range recruit.CandidateColumns {
		if col == name {
			return true
		}
	}
	return false
}

// File is a Reader bound to an open file.
type File struct {
	*Reader
	f *os.File
}

// Open opens path and validates its header.
// A missing or unreadable file fails with recruit.ErrInputNotFound.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open candidates file %q: %v: %w", path, err, recruit.ErrInputNotFound)
	}

	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("candidates file %q: %w", path, err)
	}

	return &File{Reader: r, f: f}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

var _ recruit.CandidateSource = (*Reader)(nil)
