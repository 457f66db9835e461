package mutate

import (
	"math/rand"
	"strings"

	"github.com/joeycumines/go-apr/lang"
)

// comparisons maps a comparison operator token to its replacement set.
// Alternatives always exclude the operator itself. Ordered longest-first so
// a scan that tries each key in this order never mistakes "<=" for "<".
var comparisonOrder = []string{"<=", ">=", "==", "!=", "<", ">"}

var comparisons = map[string][]string{
	"<":  {">", "<=", "!="},
	">":  {"<", ">=", "!="},
	"<=": {">=", "<", "=="},
	">=": {"<=", ">", "=="},
	"==": {"!=", "<=", ">="},
	"!=": {"==", "<", ">"},
}

// applyDelete replaces line t's content with a no-op empty statement,
// preserving indentation. JavaScript's empty statement (a bare semicolon)
// plays the role GenProg-style deletion needs without disturbing block
// structure the way removing the line outright would.
func applyDelete(p lang.Program, t int) lang.Program {
	return p.With(t, lang.Line(p.Line(t).Indent()+";"))
}

// applyInsert duplicates source line s's content immediately after target
// line t, re-indented to match t — never s's own indentation, so the
// inserted statement sits at the block depth of its new neighbours.
func applyInsert(p lang.Program, t, s int) lang.Program {
	moved := p.Line(s).Reindent(p.Line(t).Indent())
	return p.Inserted(t, moved)
}

// applySwap exchanges the content of lines t and s. A swap against a blank
// line (or against itself) would be unobservable, so those are reported as
// a no-op rather than attempted — the caller still returns the unchanged
// program as a (trivially valid) result, not a failure.
func applySwap(p lang.Program, t, s int) (lang.Program, bool) {
	if t == s || p.Line(t).Blank() || p.Line(s).Blank() {
		return p, true
	}
	return p.Swapped(t, s), true
}

// applyExpression flips a single comparison operator occurring on line t,
// chosen uniformly among the occurrences present, replaced with a uniform
// choice from its alternative set. Reports false if line t contains none of
// the six tracked operators (this does not distinguish "==="/"!==" from
// "=="/"!=": patients are expected not to use strict (in)equality).
func applyExpression(p lang.Program, t int, rng *rand.Rand) (lang.Program, bool) {
	line := p.Line(t)
	content := line.Content()

	type occurrence struct {
		start, end int
		op         string
	}
	var occs []occurrence
	i := 0
	for i < len(content) {
		matched := ""
		for _, op := range comparisonOrder {
			if strings.HasPrefix(content[i:], op) {
				matched = op
				break
			}
		}
		if matched == "" {
			i++
			continue
		}
		occs = append(occs, occurrence{start: i, end: i + len(matched), op: matched})
		i += len(matched)
	}
	if len(occs) == 0 {
		return p, false
	}

	chosen := occs[rng.Intn(len(occs))]
	alts := comparisons[chosen.op]
	replacement := alts[rng.Intn(len(alts))]
	newContent := content[:chosen.start] + replacement + content[chosen.end:]
	return p.With(t, lang.Line(line.Indent()+newContent)), true
}

// booleanTokens are the two connective tokens the BOOLEAN operator flips.
// spec.md's ancestor operator swaps the word-bounded "and"/"or" keywords of
// a Python patient; ported to a JavaScript patient the equivalent
// connectives are the "&&"/"||" tokens — same intent (flip a boolean
// connective), different concrete syntax for the target language.
var booleanTokens = []string{"&&", "||"}

// applyBoolean flips a single occurrence of "&&" or "||" on line t, chosen
// uniformly among all such occurrences. Reports false if neither token
// appears on the line.
func applyBoolean(p lang.Program, t int, rng *rand.Rand) (lang.Program, bool) {
	line := p.Line(t)
	content := line.Content()

	type occurrence struct {
		start int
		token string
	}
	var occs []occurrence
	for _, tok := range booleanTokens {
		start := 0
		for {
			idx := strings.Index(content[start:], tok)
			if idx < 0 {
				break
			}
			occs = append(occs, occurrence{start: start + idx, token: tok})
			start += idx + len(tok)
		}
	}
	if len(occs) == 0 {
		return p, false
	}

	chosen := occs[rng.Intn(len(occs))]
	flipped := "&&"
	if chosen.token == "&&" {
		flipped = "||"
	}
	newContent := content[:chosen.start] + flipped + content[chosen.start+len(chosen.token):]
	return p.With(t, lang.Line(line.Indent()+newContent)), true
}
