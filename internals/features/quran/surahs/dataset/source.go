package dataset

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Source produces the full verse table. It is called exactly once, before the
// HTTP surface starts.
type Source interface {
	Name() string
	Load(ctx context.Context) (Table, error)
}

// LoadError marks a dataset that could not be loaded. It is fatal at startup.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load quran dataset from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Open loads src and builds the immutable Store.
func Open(ctx context.Context, src Source) (*Store, error) {
	start := time.Now()
	log.Printf("[INFO] Loading quran dataset from %s", src.Name())

	t, err := src.Load(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.Name(), Err: err}
	}
	if len(t.Records) == 0 {
		return nil, &LoadError{Source: src.Name(), Err: fmt.Errorf("dataset has no rows")}
	}
	store, err := NewStore(t)
	if err != nil {
		return nil, &LoadError{Source: src.Name(), Err: err}
	}

	log.Printf("[INFO] Dataset ready: %d ayahs, %d surahs, %d translators (%s)",
		store.Len(), len(store.Chapters()), len(store.Translators()), time.Since(start))
	return store, nil
}
