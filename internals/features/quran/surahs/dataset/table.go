package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"quranku_backend/internals/features/quran/surahs/model"
)

// Table is the raw result of a dataset source: the column header plus one
// record per ayah.
type Table struct {
	Columns []string
	Records []model.VerseRecord
}

// ParseRows turns a header and string rows (spreadsheet or CSV) into a Table.
// Every structural column must be present; any other column is a translation.
func ParseRows(header []string, rows [][]string) (Table, error) {
	cols := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if name == "" {
			continue
		}
		if _, dup := index[name]; dup {
			return Table{}, fmt.Errorf("duplicate column %q", name)
		}
		cols[i] = name
		index[name] = i
	}

	var missing []string
	for _, c := range model.StructuralColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return Table{}, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var translationCols []string
	columns := make([]string, 0, len(index))
	for _, name := range cols {
		if name == "" {
			continue
		}
		columns = append(columns, name)
		if !model.IsStructuralColumn(name) {
			translationCols = append(translationCols, name)
		}
	}

	records := make([]model.VerseRecord, 0, len(rows))
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		line := i + 2 // header is line 1
		cell := func(col string) string {
			idx := index[col]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		chapterID, err := parseRequiredInt(cell(model.ColumnSuraID))
		if err != nil {
			return Table{}, fmt.Errorf("row %d: %s: %w", line, model.ColumnSuraID, err)
		}
		verseNo, err := parseRequiredInt(cell(model.ColumnAyaNo))
		if err != nil {
			return Table{}, fmt.Errorf("row %d: %s: %w", line, model.ColumnAyaNo, err)
		}
		rukuNo, err := parseOptionalInt(cell(model.ColumnRukuNo))
		if err != nil {
			return Table{}, fmt.Errorf("row %d: %s: %w", line, model.ColumnRukuNo, err)
		}
		tartibi, err := parseOptionalInt(cell(model.ColumnTartibiNumber))
		if err != nil {
			return Table{}, fmt.Errorf("row %d: %s: %w", line, model.ColumnTartibiNumber, err)
		}
		nuzuli, err := parseOptionalInt(cell(model.ColumnNuzuliNumber))
		if err != nil {
			return Table{}, fmt.Errorf("row %d: %s: %w", line, model.ColumnNuzuliNumber, err)
		}
		makki, err := ParseBoolish(cell(model.ColumnMakki))
		if err != nil {
			return Table{}, fmt.Errorf("row %d: %s: %w", line, model.ColumnMakki, err)
		}

		tr := make(map[string]string, len(translationCols))
		for _, c := range translationCols {
			if v := cell(c); v != "" {
				tr[c] = v
			}
		}

		records = append(records, model.VerseRecord{
			ChapterID:               chapterID,
			VerseNo:                 verseNo,
			RukuNo:                  rukuNo,
			ArabicText:              cell(model.ColumnArabicText),
			ChapterName:             cell(model.ColumnSurahName),
			ChapterNameMeaning:      cell(model.ColumnSurahMeaning),
			IsFirstRevelationPeriod: makki,
			CanonicalOrderNumber:    tartibi,
			RevelationOrderNumber:   nuzuli,
			Translations:            tr,
		})
	}

	return Table{Columns: columns, Records: records}, nil
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseRequiredInt(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("value is empty")
	}
	return parseInt(s)
}

func parseOptionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return parseInt(s)
}

// parseInt accepts "7" as well as spreadsheet renderings such as "7.0".
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}

// ParseBoolish reads the Makki flag. Empty means false (Madani).
func ParseBoolish(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "1.0", "true", "yes", "y", "makki", "meccan":
		return true, nil
	case "", "0", "0.0", "false", "no", "n", "madani", "medinan":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", s)
}
