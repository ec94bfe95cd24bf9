package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"surveydash/internal/logging"
)

// ErrNotFound marks a load whose path does not resolve to a readable
// file. The dashboard treats it as fatal: no analysis views render.
var ErrNotFound = errors.New("survey data file not found")

// ParseError marks a file that exists but cannot be parsed as delimited
// data. Row is 1-based and counts the header; 0 means the failure was
// not attributable to a single row.
type ParseError struct {
	Path string
	Row  int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("parse %s: row %d: %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// loadCache memoizes Load by cleaned path. Entries live for the process
// lifetime; the file is read at most once per path.
var loadCache = struct {
	mu     sync.Mutex
	tables map[string]*Table
}{tables: make(map[string]*Table)}

// Load reads the delimited survey file at path into a Table. Repeated
// calls with the same path return the same in-memory table without
// re-reading the file.
func Load(path string) (*Table, error) {
	key := filepath.Clean(path)

	loadCache.mu.Lock()
	defer loadCache.mu.Unlock()

	if t, ok := loadCache.tables[key]; ok {
		logging.DataDebug("load cache hit: %s", key)
		return t, nil
	}

	t, err := readFile(key)
	if err != nil {
		return nil, err
	}

	loadCache.tables[key] = t
	logging.Data("loaded %s: %d rows, %d columns", key, t.Len(), len(t.Columns()))
	return t, nil
}

// ResetLoadCache drops all cached tables. Test hook; production code
// never invalidates because loaded tables are immutable.
func ResetLoadCache() {
	loadCache.mu.Lock()
	defer loadCache.mu.Unlock()
	loadCache.tables = make(map[string]*Table)
}

func readFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be ragged; short rows pad as missing

	records, err := r.ReadAll()
	if err != nil {
		row := 0
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			row = pe.Line
		}
		return nil, &ParseError{Path: path, Row: row, Err: err}
	}
	if len(records) == 0 {
		return nil, &ParseError{Path: path, Err: errors.New("empty file: no header row")}
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(record))
		for i, field := range record {
			row[i] = parseValue(field)
		}
		rows = append(rows, row)
	}

	return NewTable(header, rows), nil
}
