package viewer

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/custview/custview/internal/model"
)

// ErrSessionClosed is returned by Dispatch after Run has returned.
var ErrSessionClosed = errors.New("viewer session closed")

// Event is a user action applied to the view state.
type Event interface {
	apply(State) (State, bool)
}

// SearchEvent changes the search term.
type SearchEvent struct{ Term string }

// SortEvent selects a sort key.
type SortEvent struct{ Key SortKey }

// PageEvent selects a page.
type PageEvent struct{ Page int }

func (e SearchEvent) apply(s State) (State, bool) { return s.Search(e.Term) }
func (e SortEvent) apply(s State) (State, bool)   { return s.SortOn(e.Key) }
func (e PageEvent) apply(s State) (State, bool)   { return s.GoToPage(e.Page) }

// Snapshot is what the session publishes after every processed message.
type Snapshot struct {
	State State
	View  View
	// Generation is the number of the most recent fetch issued.
	Generation uint64
	// Loaded is the generation whose records are on screen; 0 before the
	// first successful fetch.
	Loaded uint64
	// Loading reports whether the latest fetch is still outstanding.
	Loading bool
	// StaleDropped counts responses discarded because a newer fetch was issued.
	StaleDropped uint64
}

type fetchResult struct {
	generation uint64
	customers  []*model.Customer
	err        error
}

// Session owns the view state and the fetched records. Run processes user
// events and fetch completions one at a time on a single goroutine.
type Session struct {
	fetcher  Fetcher
	opts     Options
	logger   *slog.Logger
	onRender func(Snapshot)

	events  chan Event
	results chan fetchResult
	done    chan struct{}
}

// NewSession creates a session. onRender is called from the Run goroutine
// and must not call Dispatch.
func NewSession(fetcher Fetcher, opts Options, logger *slog.Logger, onRender func(Snapshot)) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if onRender == nil {
		onRender = func(Snapshot) {}
	}
	return &Session{
		fetcher:  fetcher,
		opts:     opts,
		logger:   logger.With("component", "viewer.session"),
		onRender: onRender,
		events:   make(chan Event),
		results:  make(chan fetchResult),
		done:     make(chan struct{}),
	}
}

// Dispatch queues a user event. It blocks until the loop accepts it.
func (s *Session) Dispatch(ctx context.Context, ev Event) error {
	select {
	case s.events <- ev:
		return nil
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run issues the initial fetch and then processes events until ctx is done.
// Outstanding fetches are cancelled and awaited before Run returns.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)

	var wg sync.WaitGroup
	var records []*model.Customer
	cancelFetch := context.CancelFunc(func() {})
	snap := Snapshot{State: InitialState()}

	defer func() {
		cancelFetch()
		wg.Wait()
	}()

	startFetch := func() {
		// A superseded request is cancelled and its result, if one still
		// arrives, is dropped by generation.
		cancelFetch()
		snap.Generation++
		snap.Loading = true

		fetchCtx, cancel := context.WithCancel(ctx)
		cancelFetch = cancel
		gen, page, sortBy := snap.Generation, snap.State.Page, snap.State.SortBy

		wg.Add(1)
		go func() {
			defer wg.Done()
			customers, err := s.fetcher.FetchCustomers(fetchCtx, page, sortBy)
			select {
			case s.results <- fetchResult{generation: gen, customers: customers, err: err}:
			case <-ctx.Done():
			}
		}()
	}

	publish := func() {
		snap.View = Render(records, snap.State, s.opts)
		s.onRender(snap)
	}

	startFetch()
	publish()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-s.events:
			next, fetch := ev.apply(snap.State)
			snap.State = next
			if fetch {
				startFetch()
			}
			publish()

		case res := <-s.results:
			switch {
			case res.generation != snap.Generation:
				snap.StaleDropped++
				s.logger.Debug("discarding stale fetch",
					"generation", res.generation,
					"current", snap.Generation,
				)
			case res.err != nil:
				snap.Loading = false
				s.logger.Warn("failed to fetch customers",
					"generation", res.generation,
					"page", snap.State.Page,
					"sort_by", snap.State.SortBy.String(),
					"error", res.err,
				)
			default:
				snap.Loading = false
				snap.Loaded = res.generation
				records = res.customers
			}
			publish()
		}
	}
}
