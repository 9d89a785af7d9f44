package schema

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ============================================================================
// AUTO-DISCOVERY - Heuristic column typing for uploaded CSV files
// ============================================================================
// Classification pipeline per column:
//   1. Sample values -> detect type (number, date, string)
//   2. Temporal pattern matching on string columns (Jan-2026, 2026-01, Q1-2026)
//   3. Columns with no values at all are skipped
// ============================================================================

// ErrNoColumns and ErrNoRows are returned for CSV input without a header or data.
var (
	ErrNoColumns = errors.New("CSV has no columns")
	ErrNoRows    = errors.New("CSV has no data rows")
)

// DiscoverOptions controls discovery behavior.
type DiscoverOptions struct {
	SampleSize int    // Max rows to inspect (0 = all). Default: 1000
	Name       string // Dataset name override
}

// DefaultDiscoverOptions returns sensible defaults.
func DefaultDiscoverOptions() DiscoverOptions {
	return DiscoverOptions{
		SampleSize: 1000,
	}
}

// DiscoverFromCSV generates a Config by inspecting CSV data.
func DiscoverFromCSV(data []byte, opts ...DiscoverOptions) (*Config, error) {
	opt := DefaultDiscoverOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	if len(headers) == 0 || (len(headers) == 1 && strings.TrimSpace(headers[0]) == "") {
		return nil, ErrNoColumns
	}

	var rows [][]string
	limit := opt.SampleSize
	if limit <= 0 {
		limit = 100000 // safety cap
	}
	for i := 0; i < limit; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	config := &Config{
		Name:           opt.Name,
		DiscoveredFrom: "CSV",
		DiscoveredAt:   time.Now().Format(time.RFC3339),
	}
	if config.Name == "" {
		config.Name = "Uploaded Dataset"
	}

	for i, header := range headers {
		col := analyzeColumn(header, i, rows)
		if col.skipReason != "" {
			config.SkippedColumns = append(config.SkippedColumns, SkippedColumn{
				Column: col.header,
				Reason: col.skipReason,
			})
			continue
		}
		config.Order = append(config.Order, col.key)
		switch col.colType {
		case TypeNumber:
			config.Measures = append(config.Measures, MeasureMeta{
				Key:         col.key,
				DisplayName: toDisplayName(col.header),
				Unit:        UnitOf(col.header),
			})
		default:
			config.Dimensions = append(config.Dimensions, DimensionMeta{
				Key:            col.key,
				DisplayName:    toDisplayName(col.header),
				SampleValues:   col.sampleVals,
				IsTemporal:     col.isTemporal,
				TemporalFormat: col.temporalFormat,
			})
		}
	}

	return config, nil
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

type columnAnalysis struct {
	header     string
	key        string
	colType    ColumnType
	skipReason string
	sampleVals []string

	isTemporal     bool
	temporalFormat string
}

// analyzeColumn inspects all values in a column and classifies it.
func analyzeColumn(header string, index int, rows [][]string) columnAnalysis {
	col := columnAnalysis{
		header: strings.TrimSpace(header),
		key:    Key(header),
	}

	values := make([]string, 0, len(rows))
	uniqueSet := make(map[string]bool)
	for _, row := range rows {
		if index >= len(row) {
			continue
		}
		val := strings.TrimSpace(row[index])
		if isNull(val) {
			continue
		}
		values = append(values, val)
		uniqueSet[val] = true
	}

	if len(values) == 0 {
		col.skipReason = "All values are empty/null"
		return col
	}

	col.sampleVals = collectSamples(uniqueSet, 10)
	col.colType = detectType(col.key, values)

	switch col.colType {
	case TypeDate:
		col.isTemporal = true
		col.temporalFormat = "date"
	case TypeString:
		col.isTemporal, col.temporalFormat = detectTemporalPattern(col.sampleVals)
	}
	return col
}

func isNull(val string) bool {
	switch val {
	case "", "null", "NULL", "N/A", "n/a", "NaN":
		return true
	}
	return false
}

// ============================================================================
// TYPE DETECTION
// ============================================================================

// detectType inspects values to determine column type.
// Requires 80%+ of non-null values to match for number/date.
// Bare four-digit numbers are only dates when the column is named like one.
func detectType(key string, values []string) ColumnType {
	numCount := 0
	dateCount := 0
	for _, v := range values {
		if IsNumeric(v) {
			numCount++
		}
		if isDate(v) {
			dateCount++
		}
	}

	threshold := int(float64(len(values)) * 0.8)
	if threshold == 0 {
		threshold = 1
	}

	temporalName := strings.Contains(key, "year") || strings.Contains(key, "date")
	if dateCount >= threshold && (numCount < threshold || temporalName) {
		return TypeDate
	}
	if numCount >= threshold {
		return TypeNumber
	}
	return TypeString
}

// IsNumeric reports whether s parses as a number, allowing thousands
// separators and a leading sign.
func IsNumeric(s string) bool {
	_, err := ParseNumber(s)
	return err == nil
}

// ParseNumber parses "1,234.5", "-3" or "+0.2" as a float.
// NaN and infinities are rejected.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return f, nil
}

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02/01/2006",
	"Jan-2006",
	"January 2006",
	"2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

func isDate(s string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

var monthPatterns = []struct {
	re     *regexp.Regexp
	format string
}{
	{regexp.MustCompile(`^[A-Z][a-z]{2}-\d{4}$`), "MMM-yyyy"}, // Jan-2026
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "yyyy-MM"},          // 2026-01
	{regexp.MustCompile(`^Q[1-4]-\d{4}$`), "QN-yyyy"},         // Q1-2026
	{regexp.MustCompile(`^Q[1-4]\s+\d{4}$`), "QN yyyy"},       // Q1 2026
}

// detectTemporalPattern checks if values match known month/quarter patterns.
func detectTemporalPattern(samples []string) (bool, string) {
	if len(samples) == 0 {
		return false, ""
	}
	for _, pattern := range monthPatterns {
		matches := 0
		for _, s := range samples {
			if pattern.re.MatchString(strings.TrimSpace(s)) {
				matches++
			}
		}
		if float64(matches)/float64(len(samples)) >= 0.8 {
			return true, pattern.format
		}
	}
	return false, ""
}

// ============================================================================
// STRING UTILITIES
// ============================================================================

// toSnakeCase converts "Column Name" or "columnName" to "column_name".
func toSnakeCase(s string) string {
	var result strings.Builder
	var prev rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			result.WriteRune('_')
		}
		result.WriteRune(r)
		prev = r
	}

	s = strings.ToLower(result.String())
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// toDisplayName cleans a header for human display.
// "story_points" -> "Story Points"; headers with spaces are kept as written.
func toDisplayName(s string) string {
	s = strings.TrimSpace(s)
	if strings.Contains(s, " ") {
		return s
	}

	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// collectSamples picks up to maxSamples values in sorted order.
func collectSamples(uniqueSet map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}
	sort.Strings(samples)
	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}
