package catalog

import (
	"fmt"
	"strings"

	"kondate/internal/models"
)

var expectedHeader = []string{"name", "mainGenre", "carb"}

// Parse converts raw catalog text into an ordered list of menu records.
//
// The first non-blank line must be the (name, mainGenre, carb) header;
// anything else fails with MalformedCatalogError. Data rows are validated
// independently and every violation is collected before failing, so one bad
// row never hides another. Rows whose name is empty after trimming are
// placeholders and are skipped without error. A valid header with no data
// rows yields an empty, non-nil slice.
func Parse(text string) ([]models.MenuRecord, error) {
	lines := splitLines(text)

	headerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, &MalformedCatalogError{Reason: "empty catalog"}
	}

	header, err := splitFields(lines[headerIdx])
	if err != nil {
		return nil, &MalformedCatalogError{
			Reason:   fmt.Sprintf("unreadable header: %v", err),
			Expected: expectedHeader,
		}
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	records := []models.MenuRecord{}
	var rowErrs []RowError
	for i := headerIdx + 1; i < len(lines); i++ {
		lineNo := i + 1
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		fields, err := splitFields(lines[i])
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: lineNo, Violations: []string{err.Error()}})
			continue
		}
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}
		if fieldAt(fields, 0) == "" {
			// Deliberate placeholder row, not an error.
			continue
		}

		var violations []string
		genre, gerr := models.ParseGenre(fieldAt(fields, 1))
		if gerr != nil {
			violations = append(violations, gerr.Error())
		}
		carb, cerr := models.ParseCarb(fieldAt(fields, 2))
		if cerr != nil {
			violations = append(violations, cerr.Error())
		}
		if len(violations) > 0 {
			rowErrs = append(rowErrs, RowError{Line: lineNo, Violations: violations})
			continue
		}
		records = append(records, models.NewMenuRecord(fieldAt(fields, 0), genre, carb))
	}

	if len(rowErrs) > 0 {
		return nil, &ValidationError{Rows: rowErrs}
	}
	return records, nil
}

func checkHeader(header []string) error {
	// Extra trailing header fields are tolerated.
	if len(header) < len(expectedHeader) {
		return &MalformedCatalogError{
			Reason:   "missing header fields",
			Expected: expectedHeader,
			Actual:   header,
		}
	}
	for i, want := range expectedHeader {
		if header[i] != want {
			return &MalformedCatalogError{
				Reason:   "unexpected header fields",
				Expected: expectedHeader,
				Actual:   header,
			}
		}
	}
	return nil
}

// splitLines breaks the input on bare \n or \r\n.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// splitFields splits one physical line on commas, honouring double-quoted
// fields. Inside quotes a doubled quote stands for one literal quote; quoted
// fields never span lines. A trailing comma yields a final empty field.
func splitFields(line string) ([]string, error) {
	var fields []string
	var b strings.Builder
	inQuotes := false
	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case inQuotes:
			if c == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					b.WriteByte('"')
					i += 2
					continue
				}
				inQuotes = false
				i++
				continue
			}
			b.WriteByte(c)
			i++
		case c == '"':
			inQuotes = true
			i++
		case c == ',':
			fields = append(fields, b.String())
			b.Reset()
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("unterminated quoted field")
	}
	fields = append(fields, b.String())
	return fields, nil
}

func fieldAt(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
