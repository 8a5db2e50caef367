// seehuhn.de/go/racetrack - rounded track outlines from rectilinear waypoints
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tui

import (
	"errors"
	"fmt"
	"strings"

	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"seehuhn.de/go/racetrack"
	"seehuhn.de/go/racetrack/waypoints"
)

// ErrCancelled is returned by ReadWaypoints if the user leaves the entry
// screen without submitting.
var ErrCancelled = errors.New("tui: waypoint entry cancelled")

// ReadWaypoints shows a full-screen editor in which the user can type or
// paste waypoints, one "x,y" or "x y" pair per line.  Lines starting with
// '#' are ignored.  The loop is returned once the user submits with
// ctrl+d and all lines parse.
func ReadWaypoints(opts ...tea.ProgramOption) (racetrack.Loop, error) {
	p := tea.NewProgram(newEntryModel(), opts...)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m := final.(entryModel)
	if m.loop == nil {
		return nil, ErrCancelled
	}
	racetrack.Logger().Debug("waypoints entered", "points", len(m.loop))
	return m.loop, nil
}

type entryModel struct {
	width, height int

	ta     textarea.Model
	status string
	isErr  bool

	// loop is set when the user submits valid input.
	loop racetrack.Loop
}

func newEntryModel() entryModel {
	ta := textarea.New()
	ta.Placeholder = "one waypoint per line, for example\n50,50\n400,50\n400,400"
	ta.CharLimit = 0
	ta.SetWidth(40)
	ta.SetHeight(12)
	ta.Focus()
	return entryModel{
		ta:     ta,
		status: "enter at least 3 waypoints",
	}
}

func (m entryModel) Init() tea.Cmd { return textarea.Blink }

func (m entryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ta.SetWidth(max(20, min(60, m.width-4)))
		m.ta.SetHeight(max(4, m.height-6))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.loop = nil
			return m, tea.Quit
		case "ctrl+d":
			loop, err := parseLoop(m.ta.Value())
			if err != nil {
				m.status = err.Error()
				m.isErr = true
				return m, nil
			}
			m.loop = loop
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.status, m.isErr = summarize(m.ta.Value())
	}
	return m, cmd
}

func (m entryModel) View() string {
	status := dimStyle.Render(m.status)
	if m.isErr {
		status = errorStyle.Render(m.status)
	}
	help := dimStyle.Render("ctrl+d submit  esc cancel")
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("racetrack waypoints"),
		boxStyle.Render(m.ta.View()),
		status,
		help,
	)
}

// parseLoop converts the editor contents into a loop.
func parseLoop(text string) (racetrack.Loop, error) {
	loop, err := parseLines(text)
	if err != nil {
		return nil, err
	}
	if len(loop) < racetrack.MinPoints {
		return nil, fmt.Errorf("%d waypoints entered, need at least %d", len(loop), racetrack.MinPoints)
	}
	return loop, nil
}

func parseLines(text string) (racetrack.Loop, error) {
	var loop racetrack.Loop
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := waypoints.ParsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		loop = append(loop, p)
	}
	return loop, nil
}

// summarize returns the status line for the current editor contents,
// and whether the contents contain an error.
func summarize(text string) (string, bool) {
	loop, err := parseLines(text)
	if err != nil {
		return err.Error(), true
	}
	if len(loop) < racetrack.MinPoints {
		return fmt.Sprintf("%d waypoints, need at least %d", len(loop), racetrack.MinPoints), false
	}
	if err := loop.Validate(); err != nil {
		return fmt.Sprintf("%d waypoints; %v", len(loop), err), false
	}
	return fmt.Sprintf("%d waypoints", len(loop)), false
}
