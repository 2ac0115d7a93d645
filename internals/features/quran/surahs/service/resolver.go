package service

import (
	"strings"

	"quranku_backend/internals/features/quran/surahs/model"
)

// Modifier tokens with a fixed meaning.
const (
	ModifierInfo    = "info"
	ModifierUrdu    = "urdu"
	ModifierEnglish = "english"
)

// LanguageAliases maps the fixed language modifiers to their columns.
var LanguageAliases = map[string]string{
	ModifierUrdu:    model.ColumnUrdu,
	ModifierEnglish: model.ColumnEnglish,
}

// VerseStore is the read side of the dataset the resolver needs.
type VerseStore interface {
	RowsForChapter(chapterID int) []model.VerseRecord
	RowsForChapterAndVerse(chapterID, verseNo int) []model.VerseRecord
	HasColumn(name string) bool
	LookupTranslator(token string) (string, bool)
}

// ResolvedQuery is the outcome of resolving one surah request.
type ResolvedQuery struct {
	ChapterID int
	VerseNo   *int
	// ChapterRows are all ayahs of the surah, Rows the ones requested.
	ChapterRows       []model.VerseRecord
	Rows              []model.VerseRecord
	TranslationColumn string
	IsInfoRequest     bool
}

type Resolver struct {
	store VerseStore
}

func NewResolver(store VerseStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve filters the dataset by surah, then ayah, then classifies modifier.
// "info" is checked before any translator lookup.
func (r *Resolver) Resolve(chapterID int, verseNo *int, modifier string) (ResolvedQuery, error) {
	chapterRows := r.store.RowsForChapter(chapterID)
	if len(chapterRows) == 0 {
		return ResolvedQuery{}, chapterNotFound(chapterID)
	}

	rows := chapterRows
	if verseNo != nil {
		rows = r.store.RowsForChapterAndVerse(chapterID, *verseNo)
		if len(rows) == 0 {
			return ResolvedQuery{}, verseNotFound(chapterID, *verseNo)
		}
	}

	q := ResolvedQuery{
		ChapterID:   chapterID,
		VerseNo:     verseNo,
		ChapterRows: chapterRows,
		Rows:        rows,
	}

	token := strings.ToLower(strings.TrimSpace(modifier))
	if token == "" {
		return q, nil
	}
	if token == ModifierInfo {
		q.IsInfoRequest = true
		return q, nil
	}

	column, ok := LanguageAliases[token]
	if !ok {
		column, ok = r.store.LookupTranslator(token)
		if !ok {
			return ResolvedQuery{}, translatorTokenNotFound(token)
		}
	}
	// The aliases point at fixed names that a given dataset may not carry.
	if !r.store.HasColumn(column) {
		return ResolvedQuery{}, translatorColumnNotFound(column)
	}

	q.TranslationColumn = column
	return q, nil
}
