package lang

import "strings"

// Program is an ordered, immutable sequence of lines. All transformations
// (in mutate, coverage instrumentation, etc.) produce a new Program rather
// than mutating one in place — per spec, "Programs are immutable once
// observed: all mutations produce a new sequence."
type Program struct {
	lines []Line
}

// NewProgram builds a Program from already-split lines.
func NewProgram(lines []Line) Program {
	cp := make([]Line, len(lines))
	copy(cp, lines)
	return Program{lines: cp}
}

// Parse splits source text into a Program. A trailing newline produces no
// trailing empty line, matching how source files are conventionally
// terminated; source with no trailing newline is still split correctly.
func Parse(source string) Program {
	source = strings.TrimSuffix(source, "\n")
	if source == "" {
		return Program{}
	}
	parts := strings.Split(source, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line(p)
	}
	return Program{lines: lines}
}

// Len returns the number of lines.
func (p Program) Len() int { return len(p.lines) }

// Line returns the 0-indexed line. Panics if i is out of range, mirroring
// slice semantics — callers are expected to bound i by Len first.
func (p Program) Line(i int) Line { return p.lines[i] }

// Lines returns a defensive copy of the underlying line slice.
func (p Program) Lines() []Line {
	cp := make([]Line, len(p.lines))
	copy(cp, p.lines)
	return cp
}

// String concatenates the lines back into source text, one trailing newline
// terminating the file.
func (p Program) String() string {
	if len(p.lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range p.lines {
		b.WriteString(string(l))
		b.WriteByte('\n')
	}
	return b.String()
}

// With returns a new Program with the line at index i replaced.
func (p Program) With(i int, l Line) Program {
	out := p.Lines()
	out[i] = l
	return NewProgram(out)
}

// Inserted returns a new Program with l inserted immediately after index
// after (0-indexed); after == -1 inserts at the start.
func (p Program) Inserted(after int, l Line) Program {
	out := make([]Line, 0, len(p.lines)+1)
	out = append(out, p.lines[:after+1]...)
	out = append(out, l)
	out = append(out, p.lines[after+1:]...)
	return NewProgram(out)
}

// Swapped returns a new Program with the content (not indentation) of lines
// a and b exchanged.
func (p Program) Swapped(a, b int) Program {
	out := p.Lines()
	ia, ib := out[a].Indent(), out[b].Indent()
	ca, cb := out[a].Content(), out[b].Content()
	out[a] = Line(ia + cb)
	out[b] = Line(ib + ca)
	return NewProgram(out)
}

// Clone returns an equal, independently-owned Program — used when the
// driver needs to retain the patient as baseline member 0 of a population
// without aliasing mutation targets.
func (p Program) Clone() Program {
	return NewProgram(p.lines)
}
