package props

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	bareSegment    = regexp.MustCompile(`^\w+$`)
	indexedSegment = regexp.MustCompile(`^(\w+)\[(\d+)\]$`)
)

// Step is one parsed path segment: a child name and, for name[i], an index.
type Step struct {
	Name    string
	Index   int
	Indexed bool
}

func (s Step) String() string {
	if !s.Indexed {
		return s.Name
	}
	return s.Name + "[" + strconv.Itoa(s.Index) + "]"
}

// ParsePath splits a relative path into steps. The empty path yields no steps.
//
// Absolute paths, any '-' character, empty segments and indices of MaxIndex
// or more are rejected with ErrInvalidPath.
func ParsePath(path string) ([]Step, error) {
	if path == "" {
		return nil, nil
	}
	if strings.HasPrefix(path, "/") {
		return nil, &PathError{Path: path, Err: ErrInvalidPath}
	}
	if strings.Contains(path, "-") {
		return nil, &PathError{Path: path, Segment: "-", Err: ErrInvalidPath}
	}

	tokens := strings.Split(path, "/")
	steps := make([]Step, 0, len(tokens))
	for _, tok := range tokens {
		step, err := parseStep(tok)
		if err != nil {
			return nil, &PathError{Path: path, Segment: tok, Err: err}
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseStep(tok string) (Step, error) {
	if bareSegment.MatchString(tok) {
		return Step{Name: tok}, nil
	}
	m := indexedSegment.FindStringSubmatch(tok)
	if m == nil {
		return Step{}, ErrInvalidPath
	}
	index, err := strconv.Atoi(m[2])
	if err != nil || index >= MaxIndex {
		return Step{}, ErrInvalidPath
	}
	return Step{Name: m[1], Index: index, Indexed: true}, nil
}
