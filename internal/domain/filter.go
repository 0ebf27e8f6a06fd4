package domain

import (
	"strings"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/dataobj/internal/model"
)

// SkipRule names the kinds an operation should not see.
type SkipRule struct {
	all   bool
	kinds map[m.Kind]struct{}
}

// ParseSkipRule parses a comma-separated list of kinds, or "all".
// An empty string skips nothing.
func ParseSkipRule(value string) (SkipRule, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return SkipRule{}, nil
	}

	if strings.EqualFold(s, "all") {
		return SkipRule{all: true}, nil
	}

	parts := strings.Split(s, ",")
	rule := SkipRule{kinds: make(map[m.Kind]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		kind := m.Kind(name)
		if !isKnownKind(kind) {
			return SkipRule{}, errors.Wrapf(m.ErrUnknownKind, "%q", name)
		}

		rule.kinds[kind] = struct{}{}
	}

	return rule, nil
}

// Skips reports whether kind is excluded.
func (r SkipRule) Skips(kind m.Kind) bool {
	if r.all {
		return true
	}

	_, ok := r.kinds[kind]

	return ok
}

// Empty reports whether the rule skips nothing.
func (r SkipRule) Empty() bool {
	return !r.all && len(r.kinds) == 0
}

// Skip wraps next so that objects of skipped kinds never reach it.
func Skip(next m.Visitor, rule SkipRule) m.Visitor {
	if rule.Empty() {
		return next
	}

	return &skipping{next: next, rule: rule}
}

type skipping struct {
	next m.Visitor
	rule SkipRule
}

func (s *skipping) VisitString(o m.StringObject) {
	if !s.rule.Skips(m.KindString) {
		s.next.VisitString(o)
	}
}

func (s *skipping) VisitInteger(o m.IntegerObject) {
	if !s.rule.Skips(m.KindInteger) {
		s.next.VisitInteger(o)
	}
}

func (s *skipping) VisitFloat(o m.FloatObject) {
	if !s.rule.Skips(m.KindFloat) {
		s.next.VisitFloat(o)
	}
}

// collector keeps every object it visits, in order.
type collector struct {
	objs []m.DataObject
}

func (c *collector) VisitString(o m.StringObject)   { c.objs = append(c.objs, o) }
func (c *collector) VisitInteger(o m.IntegerObject) { c.objs = append(c.objs, o) }
func (c *collector) VisitFloat(o m.FloatObject)     { c.objs = append(c.objs, o) }

// Select returns the objects of seq that rule does not skip, in order, along
// with the position each kept object had in seq.
func Select(seq m.Sequence, rule SkipRule) (m.Sequence, []int) {
	if rule.Empty() {
		positions := make([]int, seq.Len())
		for i := range positions {
			positions[i] = i
		}

		return seq, positions
	}

	c := &collector{}
	v := Skip(c, rule)

	var positions []int
	seq.Each(func(i int, o m.DataObject) {
		kept := len(c.objs)
		o.Accept(v)

		if len(c.objs) > kept {
			positions = append(positions, i)
		}
	})

	return m.NewSequence(c.objs...), positions
}

func isKnownKind(kind m.Kind) bool {
	for _, k := range m.Kinds {
		if k == kind {
			return true
		}
	}

	return false
}
