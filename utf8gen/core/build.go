package core

import (
	"fmt"
	"sort"
	"strings"
)

// Tables is a byte-class UTF-8 DFA.
type Tables struct {
	Accept int
	Reject int

	// Class maps each byte value to a class number.
	Class [256]uint8
	// Trans is indexed by [state][class].
	Trans [][]uint8
	// LeadMask is indexed by class.
	LeadMask []uint8
	// Expect describes, per state, the continuation bytes still required.
	Expect []string
}

// Build derives the DFA from the class and sequence tables. Each state
// other than accept and reject stands for the continuation bytes a
// partial sequence still needs, so sequences sharing a suffix share
// states.
func Build() (*Tables, error) {
	t := &Tables{Accept: 0, Reject: 1}

	var assigned [256]bool
	for ci, c := range classes {
		for _, r := range c.Ranges {
			for b := int(r.Lo); b <= int(r.Hi); b++ {
				if assigned[b] {
					return nil, fmt.Errorf("byte %#02x is in more than one class", b)
				}
				assigned[b] = true
				t.Class[b] = uint8(ci)
			}
		}
		t.LeadMask = append(t.LeadMask, c.LeadMask)
	}
	for b, ok := range assigned {
		if !ok {
			return nil, fmt.Errorf("byte %#02x has no class", b)
		}
	}

	bld := &builder{t: t, states: map[string]int{}}
	bld.newState("accept")
	bld.newState("reject")
	for _, seq := range sequences {
		next, err := bld.state(seq.Tail)
		if err != nil {
			return nil, err
		}
		if err := bld.set(t.Accept, seq.Lead, next); err != nil {
			return nil, err
		}
	}
	return t, nil
}

type builder struct {
	t      *Tables
	states map[string]int
}

func (b *builder) newState(desc string) int {
	row := make([]uint8, len(classes))
	for i := range row {
		row[i] = uint8(b.t.Reject)
	}
	b.t.Trans = append(b.t.Trans, row)
	b.t.Expect = append(b.t.Expect, desc)
	return len(b.t.Trans) - 1
}

func (b *builder) state(tail [][]int) (int, error) {
	if len(tail) == 0 {
		return b.t.Accept, nil
	}
	key := describeTail(tail)
	if s, ok := b.states[key]; ok {
		return s, nil
	}
	next, err := b.state(tail[1:])
	if err != nil {
		return 0, err
	}
	s := b.newState(key)
	for _, c := range tail[0] {
		if err := b.set(s, c, next); err != nil {
			return 0, err
		}
	}
	b.states[key] = s
	return s, nil
}

func (b *builder) set(from, class, to int) error {
	cur := int(b.t.Trans[from][class])
	if cur != b.t.Reject && cur != to {
		return fmt.Errorf("state %q: class %s leads to both %d and %d",
			b.t.Expect[from], classes[class].Name, cur, to)
	}
	b.t.Trans[from][class] = uint8(to)
	return nil
}

// describeTail renders a tail as the merged byte ranges of each
// position, e.g. "[A0-BF] [80-BF]".
func describeTail(tail [][]int) string {
	parts := make([]string, 0, len(tail))
	for _, set := range tail {
		var vals []int
		for _, c := range set {
			for _, r := range classes[c].Ranges {
				for v := int(r.Lo); v <= int(r.Hi); v++ {
					vals = append(vals, v)
				}
			}
		}
		sort.Ints(vals)
		var ranges []string
		for i := 0; i < len(vals); {
			j := i
			for j+1 < len(vals) && vals[j+1] == vals[j]+1 {
				j++
			}
			if i == j {
				ranges = append(ranges, fmt.Sprintf("%02X", vals[i]))
			} else {
				ranges = append(ranges, fmt.Sprintf("%02X-%02X", vals[i], vals[j]))
			}
			i = j + 1
		}
		parts = append(parts, "["+strings.Join(ranges, ",")+"]")
	}
	return strings.Join(parts, " ")
}

// Valid runs the DFA over b and reports whether it ends in accept.
func (t *Tables) Valid(b []byte) bool {
	state := t.Accept
	for _, c := range b {
		state = int(t.Trans[state][t.Class[c]])
		if state == t.Reject {
			return false
		}
	}
	return state == t.Accept
}
