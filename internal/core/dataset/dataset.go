// Package dataset reads the bundled table of office holders.
//
// The file is comma separated with one header row. Lines starting with '#'
// are comments. Each row has six columns:
//
//	name, type, date, article, image, attribution
//
// type combines the letters C (chancellor), P (president) and A (acting), for
// example "C (A)". date is already a GEDCOM date range, article is a Wikipedia
// slug and image a host-relative link without scheme.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agenthands/chronicle/internal/core/model"
	"github.com/agenthands/chronicle/internal/errors"
	"github.com/agenthands/chronicle/internal/logger"
)

const columns = 6

// MalformedStaticRowError describes a row that was skipped.
type MalformedStaticRowError struct {
	Line   int
	Reason string
}

func (e *MalformedStaticRowError) Error() string {
	return fmt.Sprintf("malformed static row at line %d: %s", e.Line, e.Reason)
}

// Is lets errors.Is match the package sentinel.
func (e *MalformedStaticRowError) Is(target error) bool {
	return target == errors.ErrMalformedStaticRow
}

// Load opens path and parses it with Parse.
func Load(path string) ([]model.StaticRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open static dataset %s", path)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads all usable rows. The first line is the header and is dropped
// even when it starts with '#'. Comment lines and malformed rows are skipped
// silently; only an unreadable stream is an error.
func Parse(r io.Reader) ([]model.StaticRow, error) {
	br := bufio.NewReader(r)
	if _, err := br.ReadString('\n'); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read header row")
	}

	reader := csv.NewReader(br)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []model.StaticRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				logger.Logger.Debugw("Skipping unparsable static row", logger.FieldLine, perr.Line, logger.FieldError, err)
				continue
			}
			return rows, errors.Wrap(err, "failed to read static dataset")
		}

		line, _ := reader.FieldPos(0)
		line++ // header
		row, err := parseRow(record, line)
		if err != nil {
			logger.Logger.Debugw("Skipping static row", logger.FieldLine, line, logger.FieldError, err)
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRow(record []string, line int) (model.StaticRow, error) {
	if len(record) != columns {
		return model.StaticRow{}, &MalformedStaticRowError{Line: line, Reason: fmt.Sprintf("expected %d columns, got %d", columns, len(record))}
	}

	row := model.StaticRow{
		Name:        strings.TrimSpace(record[0]),
		TypeCode:    strings.TrimSpace(record[1]),
		DateRange:   strings.TrimSpace(record[2]),
		Article:     strings.TrimSpace(record[3]),
		Image:       strings.TrimSpace(record[4]),
		Attribution: strings.TrimSpace(record[5]),
	}

	if !ValidTypeCode(row.TypeCode) {
		return model.StaticRow{}, &MalformedStaticRowError{Line: line, Reason: fmt.Sprintf("unknown type code %q", row.TypeCode)}
	}

	return row, nil
}

// ValidTypeCode reports whether code consists of the letters C, P and A,
// optionally with spaces and parentheses, and names at least one letter.
func ValidTypeCode(code string) bool {
	letters := 0
	for _, r := range code {
		switch r {
		case 'C', 'P', 'A':
			letters++
		case ' ', '(', ')':
		default:
			return false
		}
	}
	return letters > 0
}

// RoleReplacer expands a type code into translated role names in one pass,
// so the expanded text is never rescanned.
func RoleReplacer(chancellor, president, acting string) *strings.Replacer {
	return strings.NewReplacer("C", chancellor, "P", president, "A", acting)
}
