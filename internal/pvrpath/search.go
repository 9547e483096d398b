package pvrpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Well-known search paths.
const (
	PathTVSearch    = Scheme + "search/tv/"
	PathRadioSearch = Scheme + "search/radio/"
)

// SearchPath is the typed decomposition of a pvr://search/... path.
// The zero value is invalid.
type SearchPath struct {
	valid bool
	radio bool
	saved bool
	id    int
	hasID bool
}

// NewSavedSearchPath builds the path of one saved search.
func NewSavedSearchPath(radio bool, id int) SearchPath {
	return SearchPath{valid: true, radio: radio, saved: true, id: id, hasID: true}
}

// ParseSearchPath parses a search namespace path, options stripped.
func ParseSearchPath(base string) SearchPath {
	segs, ok := Segments(base)
	if !ok || len(segs) < 2 || len(segs) > 4 || !strings.EqualFold(segs[0], "search") {
		return SearchPath{}
	}
	radio, ok := parseKind(segs[1])
	if !ok {
		return SearchPath{}
	}
	p := SearchPath{valid: true, radio: radio}
	if len(segs) == 2 {
		return p
	}
	if !strings.EqualFold(segs[2], "savedsearches") {
		return SearchPath{}
	}
	p.saved = true
	if len(segs) == 3 {
		return p
	}
	id, err := strconv.Atoi(segs[3])
	if err != nil {
		return SearchPath{}
	}
	p.id = id
	p.hasID = true
	return p
}

func (p SearchPath) IsValid() bool { return p.valid }
func (p SearchPath) IsRadio() bool { return p.radio }

// IsSearchRoot reports the search namespace root of one kind.
func (p SearchPath) IsSearchRoot() bool { return p.valid && !p.saved }

// IsSavedSearchesRoot reports the listing of saved search definitions.
func (p SearchPath) IsSavedSearchesRoot() bool { return p.valid && p.saved && !p.hasID }

// IsSavedSearch reports one saved search addressed by id.
func (p SearchPath) IsSavedSearch() bool { return p.valid && p.saved && p.hasID }

func (p SearchPath) ID() int { return p.id }

// String serializes the path canonically.
func (p SearchPath) String() string {
	if !p.valid {
		return ""
	}
	s := fmt.Sprintf("%ssearch/%s/", Scheme, kindSegment(p.radio))
	if p.saved {
		s += "savedsearches/"
		if p.hasID {
			s += fmt.Sprintf("%d/", p.id)
		}
	}
	return s
}
