package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/observability"
	"github.com/matzehuels/mazewalk/pkg/session"
)

func seed(v int64) *int64 { return &v }

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New(session.Options{
		Width: 3, Height: 3, HorizontalBias: 1, VerticalBias: 1, Seed: seed(100),
	})
	require.NoError(t, err)
	return s
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts session.Options
		code errors.Code
	}{
		{"too wide", session.Options{Width: 101, Height: 5, HorizontalBias: 1, VerticalBias: 1}, errors.ErrCodeInvalidDimensions},
		{"too tall", session.Options{Width: 5, Height: 61, HorizontalBias: 1, VerticalBias: 1}, errors.ErrCodeInvalidDimensions},
		{"negative bias", session.Options{Width: 5, Height: 5, HorizontalBias: -1, VerticalBias: 1}, errors.ErrCodeInvalidBias},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := session.New(tt.opts)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestGenerationGatesCommands(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, session.Generating, s.Mode())
	assert.Equal(t, int64(100), s.Seed())
	assert.NotEmpty(t, s.ID())

	assert.False(t, s.StartDepthFirst())
	assert.False(t, s.StartBreadthFirst())
	assert.False(t, s.StartManual())

	steps := 0
	for s.Step() {
		steps++
	}
	assert.Equal(t, 12, steps)
	assert.Equal(t, session.Idle, s.Mode())

	st := s.Stats()
	assert.Equal(t, 12, st.Candidates)
	assert.Equal(t, 12, st.Examined)
	assert.Equal(t, 8, st.Opened)
	assert.Equal(t, 1, st.Regions)
}

func TestBreadthFirstSession(t *testing.T) {
	s := newSession(t)
	require.True(t, s.Skip())
	require.True(t, s.StartBreadthFirst())
	assert.Equal(t, session.Searching, s.Mode())

	// No second search or manual walk while one is running.
	assert.False(t, s.StartDepthFirst())
	assert.False(t, s.StartManual())

	steps := 0
	for s.Step() {
		steps++
	}
	assert.Equal(t, 5, steps)
	assert.Equal(t, session.Solved, s.Mode())
	assert.Equal(t, []maze.Pos{{Col: 0, Row: 0}, {Col: 0, Row: 1}, {Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2}}, s.Path())
	assert.Equal(t, "fifo", s.Stats().Discipline)
}

func TestNewSearchClearsPreviousMarks(t *testing.T) {
	s := newSession(t)
	s.Skip()
	require.True(t, s.StartDepthFirst())
	require.True(t, s.Skip())
	assert.True(t, s.Grid().State(maze.Pos{Col: 2, Row: 1}).Visited)

	require.True(t, s.StartBreadthFirst())
	for _, p := range []maze.Pos{{Col: 2, Row: 1}, {Col: 0, Row: 0}, {Col: 2, Row: 2}} {
		st := s.Grid().State(p)
		assert.False(t, st.Visited, "cell %v", p)
		assert.False(t, st.Highlighted, "cell %v", p)
	}
	s.Skip()
	assert.False(t, s.Grid().State(maze.Pos{Col: 2, Row: 1}).Visited)
}

func TestManualSession(t *testing.T) {
	s := newSession(t)
	_, moved := s.Move(maze.Down)
	assert.False(t, moved)

	s.Skip()
	require.True(t, s.StartManual())
	assert.Equal(t, session.Manual, s.Mode())
	assert.False(t, s.StartBreadthFirst())
	assert.False(t, s.Step())

	p, moved := s.Move(maze.Right)
	assert.False(t, moved)
	assert.Equal(t, maze.Pos{Col: 0, Row: 0}, p)

	for _, d := range []maze.Direction{maze.Down, maze.Down, maze.Right, maze.Right} {
		_, moved := s.Move(d)
		require.True(t, moved, "direction %v", d)
	}
	assert.Equal(t, session.Solved, s.Mode())
	assert.Equal(t, 4, s.Stats().Moves)
	assert.Len(t, s.Path(), 5)

	// Solved: a search may start again.
	assert.True(t, s.StartDepthFirst())
}

func TestResetBuildsNewSession(t *testing.T) {
	s, err := session.New(session.Options{Width: 4, Height: 3, HorizontalBias: 2, VerticalBias: 0.5, Seed: seed(1)},
		session.WithSeeder(func() int64 { return 77 }))
	require.NoError(t, err)
	s.Skip()

	next, err := s.Reset()
	require.NoError(t, err)
	assert.NotEqual(t, s.ID(), next.ID())
	assert.Equal(t, int64(77), next.Seed())
	assert.Equal(t, session.Generating, next.Mode())
	assert.Equal(t, 4, next.Options().Width)
	assert.Equal(t, 2.0, next.Options().HorizontalBias)

	// The old session is untouched.
	assert.Equal(t, session.Idle, s.Mode())
	assert.Equal(t, int64(1), s.Seed())
}

func TestRandomSeedWhenOmitted(t *testing.T) {
	s, err := session.New(session.Options{Width: 2, Height: 2, HorizontalBias: 1, VerticalBias: 1})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Seed(), int64(0))
	assert.Less(t, s.Seed(), int64(1<<31))
}

func TestHeatMap(t *testing.T) {
	s := newSession(t)
	s.Skip()

	assert.Equal(t, 8, s.HeatMap(session.HeatOrigin))
	assert.Equal(t, 7, s.Grid().State(maze.Pos{Col: 2, Row: 1}).Distance)
	assert.Equal(t, 6, s.HeatMap(session.HeatDestination))
	assert.Equal(t, 0, s.HeatMap(session.HeatOff))

	assert.Equal(t, session.HeatOrigin, s.CycleHeat())
	assert.Equal(t, session.HeatDestination, s.CycleHeat())
	assert.Equal(t, session.HeatOff, s.CycleHeat())

	src, err := session.ParseHeatSource("Destination")
	require.NoError(t, err)
	assert.Equal(t, session.HeatDestination, src)
	_, err = session.ParseHeatSource("middle")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestHeatMapFollowsGeneration(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, 1, s.HeatMap(session.HeatOrigin))
	s.Skip()
	_, bound := s.Heat()
	assert.Equal(t, 8, bound)
}

type recordingHooks struct {
	observability.NoopSessionHooks
	observability.NoopSearchHooks
	started, generated, rejected, searches, walks int
}

func (r *recordingHooks) OnSessionStart(context.Context, string, int, int, int64) { r.started++ }
func (r *recordingHooks) OnGenerationComplete(context.Context, string, int, time.Duration) {
	r.generated++
}
func (r *recordingHooks) OnCommandRejected(context.Context, string, string, string) { r.rejected++ }
func (r *recordingHooks) OnSearchComplete(context.Context, string, string, int, bool) {
	r.searches++
}
func (r *recordingHooks) OnWalkComplete(context.Context, string, int) { r.walks++ }

func TestHooksFire(t *testing.T) {
	h := &recordingHooks{}
	observability.SetSessionHooks(h)
	observability.SetSearchHooks(h)
	defer observability.Reset()

	s := newSession(t)
	s.StartDepthFirst()
	s.Skip()
	s.StartBreadthFirst()
	s.Skip()

	assert.Equal(t, 1, h.started)
	assert.Equal(t, 1, h.generated)
	assert.Equal(t, 1, h.rejected)
	assert.Equal(t, 1, h.searches)
}
