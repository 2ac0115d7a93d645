package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"quranku_backend/internals/features/quran/surahs/dto"
	"quranku_backend/internals/metrics"

	gocache "github.com/patrickmn/go-cache"
)

// Response kinds reported to metrics.
const (
	KindListing = "listing"
	KindInfo    = "info"
)

type SurahService struct {
	resolver *Resolver
	cache    *gocache.Cache
	metrics  *metrics.Metrics
}

// NewSurahService wires the resolver over store. A positive cacheTTL keeps
// assembled responses in memory; zero disables it. m may be nil.
func NewSurahService(store VerseStore, cacheTTL time.Duration, m *metrics.Metrics) *SurahService {
	s := &SurahService{
		resolver: NewResolver(store),
		metrics:  m,
	}
	if cacheTTL > 0 {
		s.cache = gocache.New(cacheTTL, 2*cacheTTL)
	}
	return s
}

// Get returns either a dto.SurahInfoResponse or a dto.SurahAyahsResponse.
func (s *SurahService) Get(ctx context.Context, q dto.SurahQuery) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := q.CacheKey()
	if s.cache != nil {
		if v, found := s.cache.Get(key); found {
			s.metrics.ObserveCache(true)
			return v, nil
		}
		s.metrics.ObserveCache(false)
	}

	kind := KindListing
	if strings.EqualFold(strings.TrimSpace(q.Modifier), ModifierInfo) {
		kind = KindInfo
	}

	resolved, err := s.resolver.Resolve(q.ChapterID, q.VerseNo, q.Modifier)
	if err != nil {
		s.metrics.ObserveQuery(kind, outcome(err))
		return nil, err
	}

	var resp any
	if resolved.IsInfoRequest {
		resp = BuildSurahInfo(resolved)
	} else {
		resp = BuildSurahAyahs(resolved)
	}
	s.metrics.ObserveQuery(kind, "ok")

	if s.cache != nil {
		s.cache.SetDefault(key, resp)
	}
	return resp, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrChapterNotFound):
		return "surah_not_found"
	case errors.Is(err, ErrVerseNotFound):
		return "ayah_not_found"
	case errors.Is(err, ErrTranslatorNotFound):
		return "translator_not_found"
	default:
		return "error"
	}
}
