package dataset

import (
	"fmt"
	"sort"
	"strings"

	"quranku_backend/internals/features/quran/surahs/model"
)

// Store holds the verse table for the life of the process. It is never
// mutated after NewStore, so it is safe for concurrent readers.
type Store struct {
	columns        map[string]struct{}
	columnList     []string
	translators    []string
	translatorKeys map[string]string
	byChapter      map[int][]model.VerseRecord
	chapters       []int
	rows           int
}

func NewStore(t Table) (*Store, error) {
	s := &Store{
		columns:        make(map[string]struct{}, len(t.Columns)),
		translatorKeys: map[string]string{},
		byChapter:      map[int][]model.VerseRecord{},
	}

	for _, c := range t.Columns {
		s.columns[c] = struct{}{}
		s.columnList = append(s.columnList, c)
		if model.IsStructuralColumn(c) {
			continue
		}
		key := NormalizeTranslator(c)
		if other, dup := s.translatorKeys[key]; dup {
			return nil, fmt.Errorf("translator columns %q and %q are indistinguishable", other, c)
		}
		s.translatorKeys[key] = c
		s.translators = append(s.translators, c)
	}
	sort.Strings(s.translators)

	for _, r := range t.Records {
		s.byChapter[r.ChapterID] = append(s.byChapter[r.ChapterID], r)
	}
	for id, rows := range s.byChapter {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].VerseNo < rows[j].VerseNo })
		for i := 1; i < len(rows); i++ {
			if rows[i].VerseNo == rows[i-1].VerseNo {
				return nil, fmt.Errorf("surah %d: duplicate ayah %d", id, rows[i].VerseNo)
			}
		}
		s.chapters = append(s.chapters, id)
	}
	sort.Ints(s.chapters)
	s.rows = len(t.Records)

	return s, nil
}

// RowsForChapter returns the ayahs of a surah ordered by ayah number.
func (s *Store) RowsForChapter(chapterID int) []model.VerseRecord {
	rows := s.byChapter[chapterID]
	if len(rows) == 0 {
		return nil
	}
	return append([]model.VerseRecord(nil), rows...)
}

func (s *Store) RowsForChapterAndVerse(chapterID, verseNo int) []model.VerseRecord {
	var out []model.VerseRecord
	for _, r := range s.byChapter[chapterID] {
		if r.VerseNo == verseNo {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) HasColumn(name string) bool {
	_, ok := s.columns[name]
	return ok
}

// LookupTranslator maps a request token to a translation column. Matching
// ignores case, and "-" or "_" stand for spaces.
func (s *Store) LookupTranslator(token string) (string, bool) {
	col, ok := s.translatorKeys[NormalizeTranslator(token)]
	return col, ok
}

func (s *Store) Translators() []string {
	return append([]string(nil), s.translators...)
}

func (s *Store) Columns() []string {
	return append([]string(nil), s.columnList...)
}

func (s *Store) Chapters() []int {
	return append([]int(nil), s.chapters...)
}

func (s *Store) Len() int { return s.rows }

func NormalizeTranslator(name string) string {
	name = strings.ToLower(name)
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
