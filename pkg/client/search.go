package client

import (
	"context"
	"strings"
	"sync"
	"time"
)

const (
	defaultPageSize = 10
	defaultDebounce = 300 * time.Millisecond
)

type listFetcher interface {
	List(ctx context.Context, filter Filter) (*ListResult, error)
}

// SearchController owns directory search state: the raw input text, its
// debounced commitment, and the current 1-based page. Edits reset the
// page and re-arm the debounce timer; a commit or an explicit page
// change issues one fetch. Every fetch carries a generation number so a
// slow completion for a superseded key never overwrites newer state.
type SearchController struct {
	mu       sync.Mutex
	fetcher  listFetcher
	cache    *ListCache
	pageSize int
	debounce time.Duration

	raw        string
	committed  string
	page       int
	timer      *time.Timer
	generation uint64

	result *ListResult
	err    error
}

// NewSearchController constructs a SearchController. A nil cache
// disables response caching. Non-positive pageSize and debounce fall
// back to 10 and 300ms.
func NewSearchController(fetcher listFetcher, cache *ListCache, pageSize int, debounce time.Duration) *SearchController {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &SearchController{
		fetcher:  fetcher,
		cache:    cache,
		pageSize: pageSize,
		debounce: debounce,
		page:     1,
	}
}

// SetQuery records an edit: the raw text updates immediately, the page
// resets to 1 and the debounce timer re-arms. The fetch issues only
// when the text settles for the debounce interval.
func (s *SearchController) SetQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw = text
	s.page = 1
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() { s.commit(text) })
}

func (s *SearchController) commit(text string) {
	s.mu.Lock()
	if text != s.raw {
		// a newer edit re-armed the timer; its commit wins
		s.mu.Unlock()
		return
	}
	s.committed = text
	s.page = 1
	gen, filter := s.beginFetchLocked()
	s.mu.Unlock()

	s.fetch(gen, filter)
}

// SetPage moves to a different page and re-issues the fetch with the
// committed search text unchanged. It reports whether the request was
// valid: the target must differ from the current page and fall inside
// 1..TotalPages.
func (s *SearchController) SetPage(n int) bool {
	s.mu.Lock()
	if n < 1 || n == s.page || n > s.totalPagesLocked() {
		s.mu.Unlock()
		return false
	}
	s.page = n
	gen, filter := s.beginFetchLocked()
	s.mu.Unlock()

	s.fetch(gen, filter)
	return true
}

// Refresh commits any pending edit immediately and fetches the current
// page in the caller's goroutine, bypassing the debounce window.
func (s *SearchController) Refresh() (*ListResult, error) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.raw != s.committed {
		s.committed = s.raw
		s.page = 1
	}
	gen, filter := s.beginFetchLocked()
	s.mu.Unlock()

	s.fetch(gen, filter)
	return s.Results()
}

// Reset clears raw and committed text, returns to page 1 and cancels
// any pending debounce. In-flight completions are orphaned.
func (s *SearchController) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.raw = ""
	s.committed = ""
	s.page = 1
	s.generation++
	s.result = nil
	s.err = nil
}

// Query returns the raw input text.
func (s *SearchController) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// HasActiveSearch reports whether the trimmed committed text is non-empty.
func (s *SearchController) HasActiveSearch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.TrimSpace(s.committed) != ""
}

// Page returns the current 1-based page number.
func (s *SearchController) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// TotalPages derives the page count from the latest result; 0 means no
// results.
func (s *SearchController) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPagesLocked()
}

// Results returns the latest accepted result or fetch error.
func (s *SearchController) Results() (*ListResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.err
}

func (s *SearchController) totalPagesLocked() int {
	if s.result == nil {
		return 0
	}
	total := s.result.Pagination.Total
	limit := s.result.Pagination.Limit
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func (s *SearchController) beginFetchLocked() (uint64, Filter) {
	s.generation++
	filter := Filter{
		Search: strings.TrimSpace(s.committed),
		Limit:  s.pageSize,
		Offset: (s.page - 1) * s.pageSize,
	}
	return s.generation, filter
}

func (s *SearchController) fetch(gen uint64, filter Filter) {
	key := filter.key()
	if s.cache != nil {
		if cached, fresh, ok := s.cache.Get(key); ok {
			s.accept(gen, cached, nil)
			if !fresh {
				go s.refetch(gen, filter, key)
			}
			return
		}
	}
	s.refetch(gen, filter, key)
}

func (s *SearchController) refetch(gen uint64, filter Filter, key string) {
	result, err := s.fetcher.List(context.Background(), filter)
	if err == nil {
		s.cache.Put(key, result)
	}
	s.accept(gen, result, err)
}

func (s *SearchController) accept(gen uint64, result *ListResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}
	if err != nil {
		s.result = nil
		s.err = err
		return
	}
	s.result = result
	s.err = nil
}
