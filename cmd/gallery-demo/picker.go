package main

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

// slidePicker is a fuzzy jump-to-slide overlay. Titles are ranked by edit
// distance to the query; substring hits always rank ahead of fuzzy ones.
type slidePicker struct {
	titles  []string
	query   string
	cursor  int
	matches []pickerMatch
}

type pickerMatch struct {
	index int
	title string
	score int
}

func newSlidePicker(titles []string) *slidePicker {
	p := &slidePicker{titles: titles}
	p.rank()
	return p
}

func (p *slidePicker) rank() {
	p.matches = p.matches[:0]
	q := strings.ToLower(strings.TrimSpace(p.query))
	for i, title := range p.titles {
		score := 0
		if q != "" {
			lower := strings.ToLower(title)
			if strings.Contains(lower, q) {
				score = strings.Index(lower, q)
			} else {
				score = len(q) + levenshtein.ComputeDistance(q, lower)
			}
		}
		p.matches = append(p.matches, pickerMatch{index: i, title: title, score: score})
	}
	sort.SliceStable(p.matches, func(i, j int) bool {
		return p.matches[i].score < p.matches[j].score
	})
	if p.cursor >= len(p.matches) {
		p.cursor = len(p.matches) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *slidePicker) selected() (int, bool) {
	if len(p.matches) == 0 {
		return 0, false
	}
	return p.matches[p.cursor].index, true
}

func (p *slidePicker) update(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyUp:
		if p.cursor > 0 {
			p.cursor--
		}
	case tea.KeyDown:
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
	case tea.KeyBackspace:
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
			p.cursor = 0
			p.rank()
		}
	case tea.KeyRunes:
		p.query += string(msg.Runes)
		p.cursor = 0
		p.rank()
	case tea.KeySpace:
		p.query += " "
		p.cursor = 0
		p.rank()
	}
}

func (p *slidePicker) view() string {
	var b strings.Builder
	b.WriteString("Jump to: " + p.query + "▌\n\n")
	for i, match := range p.matches {
		prefix := "  "
		if i == p.cursor {
			prefix = cursorStyle.Render("> ")
		}
		line := prefix + match.title
		if i != p.cursor {
			line = pickerDimStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return pickerStyle.Render(strings.TrimRight(b.String(), "\n"))
}
