package pvrpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Well-known timers paths.
const (
	PathTVTimers        = Scheme + "timers/tv/timers/"
	PathRadioTimers     = Scheme + "timers/radio/timers/"
	PathTVTimerRules    = Scheme + "timers/tv/rules/"
	PathRadioTimerRules = Scheme + "timers/radio/rules/"
)

// TimersPath is the typed decomposition of a pvr://timers/... path.
// The zero value is invalid.
type TimersPath struct {
	valid       bool
	radio       bool
	rules       bool
	clientID    int
	parentIndex int
	hasTimer    bool
}

// NewTimersPath builds the root path of the timers or rules tree.
func NewTimersPath(radio, rules bool) TimersPath {
	return TimersPath{valid: true, radio: radio, rules: rules,
		clientID: InvalidClientID, parentIndex: InvalidClientID}
}

// ParseTimersPath parses a timers namespace path, options stripped.
func ParseTimersPath(base string) TimersPath {
	segs, ok := Segments(base)
	if !ok || len(segs) < 3 || !strings.EqualFold(segs[0], "timers") {
		return TimersPath{}
	}
	radio, ok := parseKind(segs[1])
	if !ok {
		return TimersPath{}
	}
	var rules bool
	switch strings.ToLower(segs[2]) {
	case "timers":
		rules = false
	case "rules":
		rules = true
	default:
		return TimersPath{}
	}
	p := NewTimersPath(radio, rules)
	switch len(segs) {
	case 3:
		return p
	case 5:
		clientID, err := strconv.Atoi(segs[3])
		if err != nil {
			return TimersPath{}
		}
		parentIndex, err := strconv.Atoi(segs[4])
		if err != nil {
			return TimersPath{}
		}
		p.clientID = clientID
		p.parentIndex = parentIndex
		p.hasTimer = true
		return p
	}
	return TimersPath{}
}

func (p TimersPath) IsValid() bool { return p.valid }
func (p TimersPath) IsRadio() bool { return p.radio }
func (p TimersPath) IsRules() bool { return p.rules }

// IsTimersRoot reports the root listing of the timers or rules tree.
func (p TimersPath) IsTimersRoot() bool { return p.valid && !p.hasTimer }

// IsTimerRule reports the sub-listing of timers spawned by one rule.
func (p TimersPath) IsTimerRule() bool { return p.valid && p.hasTimer }

func (p TimersPath) ClientID() int { return p.clientID }

// ParentIndex is the per-client index of the spawning rule.
func (p TimersPath) ParentIndex() int { return p.parentIndex }

// WithTimer returns a copy of the path descended to the given timer's
// origin client and per-client index. Used as the effective path of listed
// timers so they can be re-resolved later.
func (p TimersPath) WithTimer(clientID, index int) TimersPath {
	child := p
	child.clientID = clientID
	child.parentIndex = index
	child.hasTimer = true
	return child
}

// String serializes the path canonically.
func (p TimersPath) String() string {
	if !p.valid {
		return ""
	}
	tree := "timers"
	if p.rules {
		tree = "rules"
	}
	s := fmt.Sprintf("%stimers/%s/%s/", Scheme, kindSegment(p.radio), tree)
	if p.hasTimer {
		s += fmt.Sprintf("%d/%d/", p.clientID, p.parentIndex)
	}
	return s
}
