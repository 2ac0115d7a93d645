package service

import (
	"errors"
	"fmt"
)

var (
	ErrChapterNotFound    = errors.New("surah not found")
	ErrVerseNotFound      = errors.New("ayah not found")
	ErrTranslatorNotFound = errors.New("translator not found")
)

// NotFoundError carries the message shown to the client and unwraps to one of
// the sentinels above.
type NotFoundError struct {
	Kind    error
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return e.Kind }

func chapterNotFound(chapterID int) error {
	return &NotFoundError{Kind: ErrChapterNotFound, Message: fmt.Sprintf("Surah ID %d not found.", chapterID)}
}

func verseNotFound(chapterID, verseNo int) error {
	return &NotFoundError{Kind: ErrVerseNotFound, Message: fmt.Sprintf("Ayah %d in Surah %d not found.", verseNo, chapterID)}
}

func translatorTokenNotFound(token string) error {
	return &NotFoundError{Kind: ErrTranslatorNotFound, Message: fmt.Sprintf("Author/Translator '%s' not found in the dataset.", token)}
}

func translatorColumnNotFound(column string) error {
	return &NotFoundError{Kind: ErrTranslatorNotFound, Message: fmt.Sprintf("Translator '%s' not found in the dataset.", column)}
}
