package ui

import (
	"fmt"
	"strings"
	"testing"

	"sable/internal/driver"
)

func apply(m *progressModel, evs ...driver.Event) {
	for _, ev := range evs {
		m.applyEvent(ev)
	}
}

func TestProgressModelTracksFiles(t *testing.T) {
	m := NewProgressModel("check", []string{"a.js", "b.js"}, nil).(*progressModel)
	apply(m,
		driver.Event{File: "a.js", Stage: driver.StageParse, Status: driver.StatusWorking},
		driver.Event{File: "b.js", Status: driver.StatusError},
		driver.Event{File: "unknown.js", Status: driver.StatusDone},
	)
	if m.items[0].status != "parsing" || m.items[1].status != "error" {
		t.Fatalf("items = %+v", m.items)
	}
	if m.finished() != 1 {
		t.Fatalf("finished = %d", m.finished())
	}

	apply(m, driver.Event{File: "a.js", Stage: driver.StageCheck, Status: driver.StatusDone, Issues: 3})
	view := m.View()
	if !strings.Contains(view, "(2/2 files, 3 issues)") || !strings.Contains(view, "a.js (3)") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestProgressModelCollapsesLongLists(t *testing.T) {
	files := make([]string, maxRows+5)
	for i := range files {
		files[i] = fmt.Sprintf("f%02d.js", i)
	}
	m := NewProgressModel("check", files, nil).(*progressModel)
	apply(m,
		driver.Event{File: "f00.js", Status: driver.StatusCached},
		driver.Event{File: "f01.js", Stage: driver.StageLex, Status: driver.StatusWorking},
		driver.Event{File: "f00.js", Status: driver.StatusCached},
	)
	rows := m.visibleRows()
	if len(rows) != 2 || rows[0] != 1 || rows[1] != 0 {
		t.Fatalf("rows = %v", rows)
	}
	if !strings.Contains(m.View(), fmt.Sprintf("... %d more", len(files)-2)) {
		t.Fatalf("view:\n%s", m.View())
	}
	if m.issues != 0 || m.finished() != 1 {
		t.Fatalf("issues=%d finished=%d", m.issues, m.finished())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 5); got != "ab..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("世界世界", 4); got != "..." {
		t.Fatalf("truncate wide = %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Fatalf("truncate zero = %q", got)
	}
}
