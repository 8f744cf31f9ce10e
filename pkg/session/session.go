// Package session owns one maze and whatever is currently animating on it.
//
// A [Session] bundles a grid, its spanning-tree generator, and at most one
// search or manual walk. Hosts (the terminal player, the HTTP server) drive
// it with commands and read it through [maze.Reader]. Nothing is shared
// between sessions: resetting builds a brand-new one.
//
// # Modes
//
// A session starts in [Generating]. Once every candidate passage has been
// examined it becomes [Idle], and only then may a search or a manual walk
// start. A running search is [Searching], a manual walk in progress is
// [Manual], and either one reaching the destination is [Solved]. From Idle
// or Solved a new search or walk may start; it clears the marks left by the
// previous one.
//
// # Usage
//
//	s, err := session.New(session.Options{Width: 30, Height: 20, HorizontalBias: 1, VerticalBias: 1})
//	if err != nil {
//	    return err
//	}
//	s.Skip()              // finish carving
//	s.StartBreadthFirst() // queue a solver
//	for s.Step() {
//	    render(s.Grid())
//	}
//
// A Session is not safe for concurrent use.
package session

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/observability"
)

// Mode is the phase a session is in.
type Mode int

const (
	Generating Mode = iota
	Idle
	Searching
	Manual
	Solved
)

func (m Mode) String() string {
	switch m {
	case Generating:
		return "generating"
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Manual:
		return "manual"
	case Solved:
		return "solved"
	default:
		return "unknown"
	}
}

// Options are the construction parameters of a session.
type Options struct {
	Width          int
	Height         int
	HorizontalBias float64
	VerticalBias   float64
	Seed           *int64 // nil picks a random seed
}

// Validate checks dimensions and biases.
func (o Options) Validate() error {
	if err := errors.ValidateDimensions(o.Width, o.Height, maze.MaxWidth, maze.MaxHeight); err != nil {
		return err
	}
	if err := errors.ValidateBias("horizontal bias", o.HorizontalBias); err != nil {
		return err
	}
	return errors.ValidateBias("vertical bias", o.VerticalBias)
}

// Option customizes a session.
type Option func(*settings)

type settings struct {
	ctx    context.Context
	seeder func() int64
}

// WithContext sets the context passed to observability hooks.
func WithContext(ctx context.Context) Option {
	return func(s *settings) { s.ctx = ctx }
}

// WithSeeder replaces the random seed source used when Options.Seed is nil.
func WithSeeder(fn func() int64) Option {
	return func(s *settings) { s.seeder = fn }
}

// RandomSeed returns a non-negative seed that fits in 31 bits.
func RandomSeed() int64 { return rand.Int64N(1 << 31) }

// Session is one maze plus the animation running on it.
type Session struct {
	id      string
	opts    Options
	seed    int64
	set     settings
	created time.Time

	grid   *maze.Grid
	gen    *maze.Generator
	search *maze.Search
	walker *maze.Walker

	heat      HeatSource
	heatBound int
}

// New builds a grid, wires its passages from the seed, and prepares the
// generator. No passage is open yet.
func New(opts Options, options ...Option) (*Session, error) {
	set := settings{ctx: context.Background(), seeder: RandomSeed}
	for _, o := range options {
		o(&set)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seed := set.seeder()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	g, err := maze.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	edges := maze.BuildEdges(g, seed, opts.VerticalBias, opts.HorizontalBias)

	s := &Session{
		id:      uuid.NewString(),
		opts:    opts,
		seed:    seed,
		set:     set,
		created: time.Now(),
		grid:    g,
		gen:     maze.NewGenerator(g, edges),
	}
	observability.Session().OnSessionStart(set.ctx, s.id, opts.Width, opts.Height, seed)
	return s, nil
}

// Reset returns a new session with the same dimensions and biases and a
// fresh random seed. The receiver is left untouched.
func (s *Session) Reset() (*Session, error) {
	opts := s.opts
	opts.Seed = nil
	return New(opts, WithContext(s.set.ctx), WithSeeder(s.set.seeder))
}

func (s *Session) ID() string        { return s.id }
func (s *Session) Seed() int64       { return s.seed }
func (s *Session) Options() Options  { return s.opts }
func (s *Session) Grid() maze.Reader { return s.grid }

// Mode reports the current phase.
func (s *Session) Mode() Mode {
	switch {
	case !s.gen.Complete():
		return Generating
	case s.walker != nil:
		if s.walker.Complete() {
			return Solved
		}
		return Manual
	case s.search != nil:
		if s.search.Complete() {
			return Solved
		}
		return Searching
	default:
		return Idle
	}
}

func (s *Session) canStart(command string) bool {
	switch m := s.Mode(); m {
	case Idle, Solved:
		return true
	default:
		observability.Session().OnCommandRejected(s.set.ctx, s.id, command, m.String())
		return false
	}
}

// StartDepthFirst starts a depth-first search from origin to destination.
// It reports false when the mode does not allow a new search.
func (s *Session) StartDepthFirst() bool {
	return s.startSearch("dfs", maze.NewDepthFirst)
}

// StartBreadthFirst starts a breadth-first search from origin to destination.
// It reports false when the mode does not allow a new search.
func (s *Session) StartBreadthFirst() bool {
	return s.startSearch("bfs", maze.NewBreadthFirst)
}

func (s *Session) startSearch(command string, newSearch func(*maze.Grid) *maze.Search) bool {
	if !s.canStart(command) {
		return false
	}
	s.grid.ClearMarks()
	s.walker = nil
	s.search = newSearch(s.grid)
	observability.Search().OnSearchStart(s.set.ctx, s.id, s.search.Discipline().String())
	return true
}

// StartManual places a token on the origin for the user to steer.
// It reports false when the mode does not allow a walk.
func (s *Session) StartManual() bool {
	if !s.canStart("manual") {
		return false
	}
	s.grid.ClearMarks()
	s.search = nil
	s.walker = maze.NewWalker(s.grid)
	return true
}

// Move steers the manual token. It returns the token's position afterwards
// and whether it moved. Outside manual mode nothing happens.
func (s *Session) Move(d maze.Direction) (maze.Pos, bool) {
	if s.Mode() != Manual {
		observability.Session().OnCommandRejected(s.set.ctx, s.id, "move", s.Mode().String())
		if s.walker != nil {
			return s.walker.Current().Pos(), false
		}
		return maze.Pos{}, false
	}
	from := s.walker.Current()
	to := s.walker.Move(d)
	if s.walker.Complete() {
		observability.Search().OnWalkComplete(s.set.ctx, s.id, s.walker.Moves())
	}
	return to.Pos(), to != from
}

// Token returns the manual token's position while a walk exists.
func (s *Session) Token() (maze.Pos, bool) {
	if s.walker == nil {
		return maze.Pos{}, false
	}
	return s.walker.Current().Pos(), true
}

// Step advances whatever is animating by one step: the generator while it
// is carving, otherwise the running search. It reports false when there was
// nothing to advance.
func (s *Session) Step() bool {
	switch {
	case !s.gen.Complete():
		s.gen.Step()
		s.afterGeneratorStep()
	case s.search != nil && !s.search.Complete():
		s.search.Step()
		s.afterSearchStep()
	default:
		return false
	}
	s.refreshHeat()
	return true
}

// Skip runs whatever is animating to completion. It reports false when
// there was nothing to run.
func (s *Session) Skip() bool {
	switch {
	case !s.gen.Complete():
		s.gen.RunToCompletion()
		s.afterGeneratorStep()
	case s.search != nil && !s.search.Complete():
		s.search.RunToCompletion()
		s.afterSearchStep()
	default:
		return false
	}
	s.refreshHeat()
	return true
}

func (s *Session) afterGeneratorStep() {
	if s.gen.Complete() {
		observability.Session().OnGenerationComplete(s.set.ctx, s.id, s.gen.Opened(), time.Since(s.created))
	}
}

func (s *Session) afterSearchStep() {
	if s.search.Complete() {
		observability.Search().OnSearchComplete(s.set.ctx, s.id, s.search.Discipline().String(), s.search.Steps(), s.search.Found())
	}
}

// Path returns the highlighted route once a search or walk has solved the
// maze, or the walked route so far during a manual walk.
func (s *Session) Path() []maze.Pos {
	switch {
	case s.walker != nil:
		return s.walker.Path()
	case s.search != nil:
		return s.search.Path()
	}
	return nil
}
