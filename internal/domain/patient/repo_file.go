package patient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	// Separator splits the fields of one line in the backing file.
	Separator = ","
	// FieldCount is the number of fields per line.
	FieldCount = 10
)

// fieldNames lists the backing-file columns in order.
var fieldNames = [FieldCount]string{
	"id", "name", "age", "gender", "weight", "height",
	"temperature", "systolic", "diastolic", "heartrate",
}

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("malformed patient line")

var errNotFinite = errors.New("value is not a finite number")

// ParseError reports the line (1-based) and field that failed to load.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: field %s: invalid value %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// FileRepository stores records as comma-separated lines in a plain text file.
// The file is opened and closed within each call.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the backing file. A missing file is an empty store.
func (r *FileRepository) Load(ctx context.Context, limit int) ([]Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	var records []Record
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if limit > 0 && len(records) == limit {
			return records, true, nil
		}
		rec, err := decodeLine(line, lineNo)
		if err != nil {
			return nil, false, fmt.Errorf("load %s: %w", r.path, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, false, fmt.Errorf("read %s: %w", r.path, err)
	}
	return records, false, nil
}

// Append writes one line at the end of the file and syncs it to disk.
func (r *FileRepository) Append(ctx context.Context, rec Record) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", r.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", r.path, cerr)
		}
	}()

	if _, err := f.WriteString(encodeLine(rec)); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", r.path, err)
	}
	return nil
}

func encodeLine(r Record) string {
	fields := [FieldCount]string{
		strconv.Itoa(r.ID),
		r.Name,
		strconv.Itoa(r.Age),
		r.Gender,
		formatFloat(r.WeightKg),
		formatFloat(r.HeightM),
		formatFloat(r.TemperatureC),
		strconv.Itoa(r.SystolicBP),
		strconv.Itoa(r.DiastolicBP),
		strconv.Itoa(r.HeartRate),
	}
	return strings.Join(fields[:], Separator) + "\n"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func decodeLine(line string, lineNo int) (Record, error) {
	parts := strings.Split(line, Separator)
	if len(parts) != FieldCount {
		return Record{}, &ParseError{
			Line: lineNo,
			Err:  fmt.Errorf("expected %d fields, got %d", FieldCount, len(parts)),
		}
	}

	p := fieldParser{parts: parts, line: lineNo}
	rec := Record{
		ID:           p.intAt(0),
		Name:         parts[1],
		Age:          p.intAt(2),
		Gender:       parts[3],
		WeightKg:     p.floatAt(4),
		HeightM:      p.floatAt(5),
		TemperatureC: p.floatAt(6),
		SystolicBP:   p.intAt(7),
		DiastolicBP:  p.intAt(8),
		HeartRate:    p.intAt(9),
	}
	if p.err != nil {
		return Record{}, p.err
	}
	return rec, nil
}

// fieldParser keeps the first conversion error so decodeLine can read
// every column without checking after each one.
type fieldParser struct {
	parts []string
	line  int
	err   error
}

func (p *fieldParser) intAt(i int) int {
	if p.err != nil {
		return 0
	}
	raw := strings.TrimSpace(p.parts[i])
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(i, raw, err)
	}
	return v
}

func (p *fieldParser) floatAt(i int) float64 {
	if p.err != nil {
		return 0
	}
	raw := strings.TrimSpace(p.parts[i])
	v, err := strconv.ParseFloat(raw, 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = errNotFinite
	}
	if err != nil {
		p.fail(i, raw, err)
	}
	return v
}

func (p *fieldParser) fail(i int, raw string, err error) {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	p.err = &ParseError{Line: p.line, Field: fieldNames[i], Value: raw, Err: err}
}
