package directory

import (
	"strings"
	"time"
)

// Overlay is the watched-state icon overlay of a listed entry.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayWatched
	OverlayUnwatched
)

// FolderStats holds the typed aggregates of a synthetic folder entry.
type FolderStats struct {
	TotalEpisodes      int
	WatchedEpisodes    int
	UnwatchedEpisodes  int
	InProgressEpisodes int
	SizeInBytes        int64
}

// Entry is one listing row: a folder targeting a virtual path, or a leaf
// carrying a reference to the backend entity it represents. Entries are
// created fresh per listing and never persisted.
type Entry struct {
	Path        string
	Label       string
	IsFolder    bool
	DateTime    time.Time
	SizeInBytes int64
	Overlay     Overlay

	// Folder is non-nil for synthetic recordings folders.
	Folder *FolderStats

	// TotalCount is set on provider sub-collection folders.
	TotalCount int

	// Hideable marks entries the user may hide from the current view.
	Hideable bool

	// Backend references; at most one is non-nil on a leaf.
	Member    GroupMember
	Recording Recording
	Timer     Timer
	Provider  Provider
	Search    SavedSearch
	Guide     GuideEntry
}

// Clone returns a deep copy of the entry, detached from any FolderStats
// shared with the original. Backend references are carried over as-is.
func (e *Entry) Clone() *Entry {
	c := *e
	if e.Folder != nil {
		stats := *e.Folder
		c.Folder = &stats
	}
	return &c
}

// Listing is an ordered collection of entries with case-insensitive
// path-keyed lookup, used to deduplicate synthetic folders.
type Listing struct {
	entries []*Entry
	byPath  map[string]*Entry
}

func NewListing() *Listing {
	return &Listing{byPath: make(map[string]*Entry)}
}

func listingKey(path string) string {
	return strings.ToLower(path)
}

// Add appends the entry. The first entry wins a path collision; later
// entries with an equal (case-insensitive) path are still appended but do
// not replace the lookup target.
func (l *Listing) Add(e *Entry) {
	l.entries = append(l.entries, e)
	key := listingKey(e.Path)
	if _, ok := l.byPath[key]; !ok {
		l.byPath[key] = e
	}
}

// Get returns the first entry added under the given path.
func (l *Listing) Get(path string) (*Entry, bool) {
	e, ok := l.byPath[listingKey(path)]
	return e, ok
}

func (l *Listing) Len() int { return len(l.entries) }

// Items returns the entries in listing order. The returned slice is the
// listing's own backing store; callers must not mutate it.
func (l *Listing) Items() []*Entry { return l.entries }

// Folders returns deep copies of all synthetic folder entries, suitable for
// handing to a background job without racing the caller.
func (l *Listing) Folders() []*Entry {
	var folders []*Entry
	for _, e := range l.entries {
		if e.Folder != nil {
			folders = append(folders, e.Clone())
		}
	}
	return folders
}
