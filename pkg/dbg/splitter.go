package dbg

import "unicode"

// ArgNames parses the literal source text of a comma-separated argument
// list into the display name for each argument. Call expressions contain
// commas that are not argument separators, so an argument whose top-level
// text contains a comma must be wrapped in one extra pair of parentheses:
// "a, b + c, (Method(a, b))" splits into ["a", "b + c", "Method(a, b)"],
// not ["a", "b + c", "Method(a", "b)"].
type ArgNames struct {
	args string
	idx  int
}

// NewArgNames returns a cursor over the given argument-list text.
func NewArgNames(args string) *ArgNames {
	return &ArgNames{args: args}
}

// Pop consumes and returns the next argument name. A parenthesized
// argument is returned with the enclosing parentheses stripped. Once the
// text is exhausted Pop returns ""; a well-formed caller never pops more
// names than there are arguments.
func (a *ArgNames) Pop() string {
	for a.idx < len(a.args) && unicode.IsSpace(rune(a.args[a.idx])) {
		a.idx++
	}
	if a.idx >= len(a.args) {
		return ""
	}

	var name string
	if a.args[a.idx] == '(' {
		lvl, end := 1, a.idx+1
		for ; end < len(a.args); end++ {
			if a.args[end] == '(' {
				lvl++
			} else if a.args[end] == ')' {
				lvl--
			}
			if lvl == 0 {
				break
			}
		}
		name = a.args[a.idx+1 : end]
		for ; end < len(a.args) && a.args[end] != ','; end++ {
		}
		a.idx = end + 1
	} else {
		end := a.idx + 1
		for ; end < len(a.args) && a.args[end] != ','; end++ {
		}
		name = a.args[a.idx:end]
		a.idx = end + 1
	}

	return name
}

// SplitArgNames splits the argument-list text into all of its names at
// once. It pops until the text is exhausted, so the result length equals
// the argument count for well-formed input.
func SplitArgNames(args string) []string {
	names := []string{}
	cursor := NewArgNames(args)
	for cursor.idx < len(cursor.args) {
		name := cursor.Pop()
		if name == "" && cursor.idx >= len(cursor.args) {
			break
		}
		names = append(names, name)
	}
	return names
}
