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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/racetrack"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

var square = racetrack.Loop{pt(50, 50), pt(150, 50), pt(150, 150), pt(50, 150)}

func TestBraille(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(2, 1)
	b.setPixel(-1, 0) // ignored
	b.setPixel(4, 0)  // ignored
	got := b.lines()
	want := string([]rune{0x2800 + 0x01 + 0x80, 0x2800 + 0x02})
	if len(got) != 1 || got[0] != want {
		t.Errorf("got %q, want %q", got, want)
	}

	b = newBrailleBuf(3, 1)
	b.line(0, 0, 5, 0)
	if got := b.lines()[0]; got != "⠉⠉⠉" {
		t.Errorf("horizontal line: %q", got)
	}
}

func TestPreview(t *testing.T) {
	r, err := racetrack.NewRenderer(racetrack.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	d, err := r.Render(square)
	if err != nil {
		t.Fatal(err)
	}

	lines := previewLines(d, 20, 10)
	if len(lines) != 10 {
		t.Fatalf("got %d rows", len(lines))
	}
	// the square fills the picture, so the first and last rows are
	// not empty while the middle of the picture is
	if strings.TrimSpace(lines[0]) == "" || strings.TrimSpace(lines[9]) == "" {
		t.Error("outline missing at the top or bottom")
	}
	if mid := []rune(lines[5]); mid[10] != ' ' {
		t.Errorf("centre of the track is drawn: %q", lines[5])
	}

	box := Preview(d, 20, 10)
	if !strings.Contains(box, "4 waypoints") {
		t.Error("preview title missing")
	}
}

func TestPreviewEmpty(t *testing.T) {
	lines := previewLines(&racetrack.Drawing{}, 5, 2)
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			t.Errorf("empty drawing produced %q", l)
		}
	}
}

func TestPointTable(t *testing.T) {
	loop := racetrack.Loop{pt(0, 0), pt(10.5, 0), pt(10.5, 7)}
	out := PointTable(loop)
	for _, want := range []string{"segment", "10.5", "right", "down", "unknown"} {
		if !strings.Contains(out, want) {
			t.Errorf("table does not contain %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n") + 1; n != 3+len(loop)+1 {
		t.Errorf("table has %d lines:\n%s", n, out)
	}
}

func TestParseLoop(t *testing.T) {
	loop, err := parseLoop("# track\n0,0\n\n10 0\n 10, 10 \n")
	if err != nil {
		t.Fatal(err)
	}
	want := racetrack.Loop{pt(0, 0), pt(10, 0), pt(10, 10)}
	if len(loop) != len(want) {
		t.Fatalf("got %v, want %v", loop, want)
	}
	for i := range want {
		if loop[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, loop[i], want[i])
		}
	}

	if _, err := parseLoop("0,0\nx,1\n2,2\n"); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := parseLoop("0,0\n1,1\n"); err == nil {
		t.Error("two points accepted")
	}
}

func TestEntrySubmit(t *testing.T) {
	m := newEntryModel()
	m.ta.SetValue("0,0\n100,0")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = next.(entryModel)
	if cmd != nil || m.loop != nil || !m.isErr {
		t.Fatal("incomplete input was accepted")
	}

	m.ta.SetValue("0,0\n100,0\n100,100\n0,100")
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = next.(entryModel)
	if cmd == nil {
		t.Fatal("submit did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("submit command is not tea.Quit")
	}
	if len(m.loop) != 4 {
		t.Errorf("got %d waypoints", len(m.loop))
	}
}

func TestEntryCancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newEntryModel()
		m.ta.SetValue("0,0\n100,0\n100,100")
		next, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v: no command", key)
		}
		if next.(entryModel).loop != nil {
			t.Errorf("%v: loop returned after cancel", key)
		}
	}
}

func TestEntryStatus(t *testing.T) {
	m := newEntryModel()
	m.ta.SetValue("0,0\n100,0\n100,")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")})
	m = next.(entryModel)
	if m.isErr || !strings.HasPrefix(m.status, "3 waypoints") {
		t.Errorf("status %q (error %t)", m.status, m.isErr)
	}
	if !strings.Contains(m.View(), m.status) {
		t.Error("status not shown")
	}
}
