package pvrpath

import (
	"strings"
)

// Well-known recordings paths.
const (
	PathActiveTVRecordings     = Scheme + "recordings/tv/active/"
	PathActiveRadioRecordings  = Scheme + "recordings/radio/active/"
	PathDeletedTVRecordings    = Scheme + "recordings/tv/deleted/"
	PathDeletedRadioRecordings = Scheme + "recordings/radio/deleted/"
)

// RecordingsPath is the typed decomposition of a pvr://recordings/... path.
// The zero value is invalid.
type RecordingsPath struct {
	valid     bool
	radio     bool
	deleted   bool
	directory []string // unescaped sub-directory segments below the view root
}

// NewRecordingsPath builds a recordings path for the given view. dir may be
// empty or a slash-separated sub-directory below the view root.
func NewRecordingsPath(radio, deleted bool, dir string) RecordingsPath {
	p := RecordingsPath{valid: true, radio: radio, deleted: deleted}
	for _, seg := range strings.Split(TrimSlashes(dir), "/") {
		if seg != "" {
			p.directory = append(p.directory, seg)
		}
	}
	return p
}

// ParseRecordingsPath parses a recordings namespace path, options stripped.
func ParseRecordingsPath(base string) RecordingsPath {
	segs, ok := Segments(base)
	if !ok || len(segs) < 3 || !strings.EqualFold(segs[0], "recordings") {
		return RecordingsPath{}
	}
	radio, ok := parseKind(segs[1])
	if !ok {
		return RecordingsPath{}
	}
	var deleted bool
	switch strings.ToLower(segs[2]) {
	case "active":
		deleted = false
	case "deleted":
		deleted = true
	default:
		return RecordingsPath{}
	}
	p := RecordingsPath{valid: true, radio: radio, deleted: deleted}
	for _, seg := range segs[3:] {
		p.directory = append(p.directory, unescapeSegment(seg))
	}
	return p
}

func (p RecordingsPath) IsValid() bool   { return p.valid }
func (p RecordingsPath) IsRadio() bool   { return p.radio }
func (p RecordingsPath) IsDeleted() bool { return p.deleted }

// DirectoryPath returns the unescaped sub-directory below the view root,
// without leading or trailing slashes. Empty at the view root.
func (p RecordingsPath) DirectoryPath() string {
	return strings.Join(p.directory, "/")
}

// SubDirectoryPath returns the immediate child segment of this path's
// directory that leads towards entryDir, or "" when entryDir is not
// strictly below it. Matching is case-insensitive.
func (p RecordingsPath) SubDirectoryPath(entryDir string) string {
	dir := TrimSlashes(p.DirectoryPath())
	entry := TrimSlashes(entryDir)
	if entry == "" {
		return ""
	}
	rel := entry
	if dir != "" {
		if !hasFoldPrefix(entry, dir+"/") {
			return ""
		}
		rel = entry[len(dir)+1:]
	}
	rel = TrimSlashes(rel)
	if rel == "" {
		return ""
	}
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		rel = rel[:i]
	}
	return rel
}

// AppendSegment returns a copy of the path descended into the given
// sub-directory segment.
func (p RecordingsPath) AppendSegment(seg string) RecordingsPath {
	child := RecordingsPath{valid: p.valid, radio: p.radio, deleted: p.deleted}
	child.directory = append(child.directory, p.directory...)
	if seg != "" {
		child.directory = append(child.directory, seg)
	}
	return child
}

// String serializes the path canonically.
func (p RecordingsPath) String() string {
	if !p.valid {
		return ""
	}
	var b strings.Builder
	b.WriteString(Scheme)
	b.WriteString("recordings/")
	b.WriteString(kindSegment(p.radio))
	if p.deleted {
		b.WriteString("/deleted/")
	} else {
		b.WriteString("/active/")
	}
	for _, seg := range p.directory {
		b.WriteString(escapeSegment(seg))
		b.WriteByte('/')
	}
	return b.String()
}
