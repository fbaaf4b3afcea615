package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/unicornpulse/internal/domain/models"
)

// requiredHeaders must all be present; column order is free.
var requiredHeaders = []string{models.ColCountry, models.ColIndustry, models.ColValuation, models.ColDateJoined}

// dateLayouts are tried in order for the "Date Joined" column.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	time.RFC3339,
}

// Parse reads a comma separated unicorn file and returns the normalized dataset.
//
// It fails on:
//   - a header missing any required column (*SchemaError)
//   - a row whose column count differs from the header (*MalformedRecordError)
//   - a valuation or date that cannot be parsed (*MalformedRecordError)
//   - unrecoverable I/O errors
//
// Parameters:
//   - ctx: context for cancellation between rows.
//   - r:   the CSV stream, header first.
func Parse(ctx context.Context, r io.Reader) (*models.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // checked explicitly to report the offending line
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Missing: append([]string(nil), requiredHeaders...)}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	b, err := newBuilder(header)
	if err != nil {
		return nil, err
	}

	line := 1 // header already read
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		if err := b.add(line, rec); err != nil {
			return nil, err
		}
	}

	return b.dataset(), nil
}

// builder maps raw string rows onto models.Company using a validated header.
// It is shared by every dataset source so they normalize identically.
type builder struct {
	header    []string
	index     map[string]int
	extra     []string
	extraIdx  []int
	companies []models.Company
}

func newBuilder(header []string) (*builder, error) {
	b := &builder{
		header: make([]string, len(header)),
		index:  make(map[string]int, len(header)),
	}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		b.header[i] = h
		if _, dup := b.index[h]; !dup {
			b.index[h] = i
		}
	}

	var missing []string
	for _, req := range requiredHeaders {
		if _, ok := b.index[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	for i, h := range b.header {
		if isMapped(h) {
			continue
		}
		b.extra = append(b.extra, h)
		b.extraIdx = append(b.extraIdx, i)
	}
	return b, nil
}

func isMapped(col string) bool {
	switch col {
	case models.ColCompany, models.ColValuation, models.ColDateJoined, models.ColCountry, models.ColCity, models.ColIndustry, models.ColInvestors:
		return true
	}
	return false
}

// add validates and appends one row. line is used for error reporting only.
func (b *builder) add(line int, rec []string) error {
	if len(rec) != len(b.header) {
		return &MalformedRecordError{
			Line: line,
			Err:  fmt.Errorf("invalid column count: expected %d got %d", len(b.header), len(rec)),
		}
	}

	c, err := b.recordToCompany(rec)
	if err != nil {
		var mre *MalformedRecordError
		if errors.As(err, &mre) {
			mre.Line = line
		}
		return err
	}
	b.companies = append(b.companies, c)
	return nil
}

func (b *builder) dataset() *models.Dataset {
	return models.NewDataset(b.header, b.extra, b.companies)
}

// get returns the trimmed value of col, or "" when the column is absent.
func (b *builder) get(rec []string, col string) string {
	i, ok := b.index[col]
	if !ok {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// recordToCompany converts a single record into a models.Company.
// It is STRICT about valuation and date; categorical columns are kept as-is.
func (b *builder) recordToCompany(rec []string) (models.Company, error) {
	c := models.Company{
		Name:      b.get(rec, models.ColCompany),
		Country:   b.get(rec, models.ColCountry),
		City:      b.get(rec, models.ColCity),
		Industry:  b.get(rec, models.ColIndustry),
		Investors: b.get(rec, models.ColInvestors),
	}

	raw := b.get(rec, models.ColValuation)
	v, err := ParseValuation(raw)
	if err != nil {
		return c, &MalformedRecordError{Column: models.ColValuation, Value: raw, Err: err}
	}
	c.Valuation = v

	raw = b.get(rec, models.ColDateJoined)
	d, err := ParseDate(raw)
	if err != nil {
		return c, &MalformedRecordError{Column: models.ColDateJoined, Value: raw, Err: err}
	}
	c.DateJoined = d

	if len(b.extraIdx) > 0 {
		c.Extra = make([]string, len(b.extraIdx))
		for i, idx := range b.extraIdx {
			c.Extra[i] = strings.TrimSpace(rec[idx])
		}
	}
	return c, nil
}

// ParseValuation normalizes currency text such as "$1,234.50" into 1234.5.
//
// A leading "$" and every thousands separator are removed; the remainder must
// be a non-negative decimal number representable as a finite float64.
func ParseValuation(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyValue
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, errNegativeValue
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errOutOfRange
	}
	return f, nil
}

// ParseDate parses a "Date Joined" value into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyValue
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, errUnknownDate
}
