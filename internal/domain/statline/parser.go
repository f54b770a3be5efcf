// Package statline turns free-text match reports into structured stat lines.
//
// Input is coordinator-typed text such as "2 goals, 1 assist, 1 yellow card"
// or "hat-trick and a booking". The parser is forgiving about separators and
// synonyms but strict about ambiguity: text that mentions no recognizable
// stat is an error rather than a silent zero line.
package statline

import (
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var ErrEmptyReport = crerr.New("match report text is empty")
var ErrNoStatsRecognized = crerr.New("no stats recognized in match report")

// StatLine is the structured result of parsing one match report.
type StatLine struct {
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
}

var wordNumbers = map[string]int{
	"a": 1, "an": 1, "one": 1,
	"two": 2, "double": 2,
	"three": 3,
	"four": 4, "five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

type statKind int

const (
	statNone statKind = iota
	statGoal
	statAssist
	statYellow
	statRed
)

// selfCounting stat words carry their own count without a neighboring number.
var selfCounting = map[string]int{
	"hat-trick": 3,
	"hattrick":  3,
	"brace":     2,
}

func kindOf(token string) statKind {
	switch {
	case strings.HasPrefix(token, "goal"), token == "hat-trick", token == "hattrick", token == "brace":
		return statGoal
	case strings.HasPrefix(token, "assist"):
		return statAssist
	case strings.HasPrefix(token, "yellow"), strings.HasPrefix(token, "booking"):
		return statYellow
	case strings.HasPrefix(token, "red"), strings.HasPrefix(token, "dismissal"):
		return statRed
	default:
		return statNone
	}
}

// Parse extracts a stat line from one free-text match report.
//
// A count binds to a stat word from the preceding token first, then the
// following one; each number token feeds at most one stat word. A bare stat
// word counts as one.
func Parse(text string) (StatLine, error) {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	if cleaned == "" {
		return StatLine{}, ErrEmptyReport
	}

	tokens := tokenize(cleaned)
	consumed := make(map[int]struct{}, len(tokens))

	var line StatLine
	recognized := false

	for i, token := range tokens {
		kind := kindOf(token)
		if kind == statNone {
			continue
		}

		count, err := countFor(tokens, i, consumed)
		if err != nil {
			return StatLine{}, crerr.Wrapf(err, "parse match report %q", text)
		}

		switch kind {
		case statGoal:
			line.Goals += count
		case statAssist:
			line.Assists += count
		case statYellow:
			line.YellowCards += count
		case statRed:
			line.RedCards += count
		}
		recognized = true
	}

	if !recognized {
		return StatLine{}, crerr.Wrapf(ErrNoStatsRecognized, "text %q", text)
	}

	return line, nil
}

func countFor(tokens []string, i int, consumed map[int]struct{}) (int, error) {
	if n, ok := selfCounting[tokens[i]]; ok {
		return n, nil
	}

	for _, j := range []int{i - 1, i + 1} {
		if j < 0 || j >= len(tokens) {
			continue
		}
		if _, used := consumed[j]; used {
			continue
		}
		n, ok, err := parseCount(tokens[j])
		if err != nil {
			return 0, err
		}
		if ok {
			consumed[j] = struct{}{}
			return n, nil
		}
	}

	return 1, nil
}

func parseCount(token string) (int, bool, error) {
	if n, ok := wordNumbers[token]; ok {
		return n, true, nil
	}
	if !isDigits(token) {
		return 0, false, nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false, crerr.Wrapf(err, "parse count %q", token)
	}
	return n, true, nil
}

func isDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', ',', ';', '.', '!', ':', '(', ')':
			return true
		default:
			return false
		}
	})
}
