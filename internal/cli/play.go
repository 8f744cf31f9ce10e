package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/pkg/config"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/render/text"
	"github.com/matzehuels/mazewalk/pkg/session"
)

func (c *CLI) playCommand() *cobra.Command {
	var (
		flags        mazeFlags
		tick         time.Duration
		stepsPerTick int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Watch a maze being carved and solved in the terminal",
		Long: `Animate maze generation in the terminal, then solve it.

Keys:
  d        depth-first search
  b        breadth-first search
  m        manual mode (move with arrows or h/j/k/l)
  s        skip to the end of the current animation
  c        cycle heat map: off, from origin, from destination
  r        new maze with a fresh seed
  space    pause / resume
  + / -    faster / slower
  q        quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, cfg.Maze)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("tick") {
				cfg.Play.Tick = tick
			}
			if cmd.Flags().Changed("steps") {
				cfg.Play.StepsPerTick = stepsPerTick
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			sess, err := session.New(opts, session.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			p := tea.NewProgram(newPlayModel(sess, cfg.Play), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(playModel); ok {
				fmt.Fprintln(cmd.ErrOrStderr(), statsTable(m.sess.Stats()))
			}
			return nil
		},
	}

	d := config.Defaults().Play
	flags.register(cmd)
	cmd.Flags().DurationVar(&tick, "tick", d.Tick, "delay between animation frames")
	cmd.Flags().IntVar(&stepsPerTick, "steps", d.StepsPerTick, "algorithm steps per frame")
	return cmd
}

// =============================================================================
// playModel - bubbletea host for a session
// =============================================================================

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// playModel drives a session from frame ticks and key presses.
type playModel struct {
	sess         *session.Session
	tick         time.Duration
	stepsPerTick int
	cellWidth    int
	paused       bool
	status       string
}

func newPlayModel(sess *session.Session, cfg config.Play) playModel {
	return playModel{
		sess:         sess,
		tick:         cfg.Tick,
		stepsPerTick: cfg.StepsPerTick,
		cellWidth:    cfg.CellWidth,
		status:       "carving",
	}
}

func (m playModel) Init() tea.Cmd {
	return tickCmd(m.tick)
}

var moveKeys = map[string]maze.Direction{
	"up": maze.Up, "k": maze.Up,
	"down": maze.Down, "j": maze.Down,
	"left": maze.Left, "h": maze.Left,
	"right": maze.Right, "l": maze.Right,
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			for i := 0; i < m.stepsPerTick; i++ {
				if !m.sess.Step() {
					break
				}
			}
		}
		return m, tickCmd(m.tick)

	case tea.KeyMsg:
		key := msg.String()
		if d, ok := moveKeys[key]; ok {
			if _, moved := m.sess.Move(d); moved && m.sess.Mode() == session.Solved {
				m.status = "you made it"
			}
			return m, nil
		}
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "d":
			m.status = m.started(m.sess.StartDepthFirst(), "depth-first search")
		case "b":
			m.status = m.started(m.sess.StartBreadthFirst(), "breadth-first search")
		case "m":
			m.status = m.started(m.sess.StartManual(), "manual walk")
		case "s":
			m.sess.Skip()
		case "c":
			m.status = "heat map " + m.sess.CycleHeat().String()
		case "r":
			next, err := m.sess.Reset()
			if err != nil {
				m.status = "reset failed: " + err.Error()
				break
			}
			heat, _ := m.sess.Heat()
			next.HeatMap(heat)
			m.sess = next
			m.status = "carving"
		case " ":
			m.paused = !m.paused
		case "+", "=":
			m.stepsPerTick = min(m.stepsPerTick*2, 1024)
		case "-":
			m.stepsPerTick = max(m.stepsPerTick/2, 1)
		}
	}
	return m, nil
}

func (m playModel) started(ok bool, what string) string {
	if ok {
		return what
	}
	return fmt.Sprintf("cannot start %s while %s", what, m.sess.Mode())
}

func (m playModel) View() string {
	var b strings.Builder

	st := m.sess.Stats()
	b.WriteString(StyleTitle.Render(appName))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  seed %d · %s · %d/%d examined", st.Seed, st.Mode, st.Examined, st.Candidates)))
	if m.paused {
		b.WriteString(StyleWarning.Render("  paused"))
	}
	b.WriteString("\n\n")

	opts := text.Options{CellWidth: m.cellWidth, HeatBound: st.HeatBound}
	if p, ok := m.sess.Token(); ok {
		opts.Token = &p
	}
	b.WriteString(text.Render(m.sess.Grid(), opts))
	b.WriteString("\n")

	status := m.status
	switch st.Mode {
	case session.Solved.String():
		status = StyleSuccess.Render(fmt.Sprintf("solved · path %d cells", st.PathLength))
	case session.Searching.String():
		status = fmt.Sprintf("%s · %d steps", st.Discipline, st.Steps)
	case session.Manual.String():
		status = fmt.Sprintf("manual · %d moves", st.Moves)
	}
	b.WriteString(StyleValue.Render(status))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("d dfs  b bfs  m manual  s skip  c heat  r reset  space pause  +/- speed  q quit"))
	return b.String()
}
