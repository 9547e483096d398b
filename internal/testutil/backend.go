// Package testutil provides an in-memory fake PVR backend implementing the
// directory package's collaborator interfaces, for tests and demos.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/openpvr/pvrfs/internal/directory"
	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// FakeChannel implements directory.Channel. A WatchedGroup of zero means
// "no last watched group"; fixture group ids start at one.
type FakeChannel struct {
	Client       int
	Provider     int
	UID          int
	ChannelName  string
	Radio        bool
	Hidden       bool
	Watched      time.Time
	WatchedGroup int
	Added        time.Time
}

func (c *FakeChannel) Key() directory.ChannelKey {
	return directory.ChannelKey{ClientID: c.Client, ChannelUID: c.UID}
}
func (c *FakeChannel) ClientID() int          { return c.Client }
func (c *FakeChannel) ProviderID() int        { return c.Provider }
func (c *FakeChannel) Name() string           { return c.ChannelName }
func (c *FakeChannel) IsRadio() bool          { return c.Radio }
func (c *FakeChannel) IsHidden() bool         { return c.Hidden }
func (c *FakeChannel) LastWatched() time.Time { return c.Watched }
func (c *FakeChannel) LastWatchedGroupID() int {
	if c.WatchedGroup == 0 {
		return pvrpath.InvalidGroupID
	}
	return c.WatchedGroup
}
func (c *FakeChannel) DateAdded() time.Time { return c.Added }

// FakeGroupMember implements directory.GroupMember.
type FakeGroupMember struct {
	Ch    *FakeChannel
	Group *FakeGroup
}

func (m *FakeGroupMember) Channel() directory.Channel { return m.Ch }
func (m *FakeGroupMember) GroupID() int               { return m.Group.GroupID }
func (m *FakeGroupMember) Path() string {
	return fmt.Sprintf("%s%d@%d.pvr", m.Group.Path(), m.Ch.Client, m.Ch.UID)
}

// FakeGroup implements directory.ChannelGroup.
type FakeGroup struct {
	GroupID int
	GName   string
	Client  int
	Radio   bool
	Hidden  bool
	Deleted bool
	members []*FakeGroupMember
}

// AddMember links a channel into the group and returns the membership.
func (g *FakeGroup) AddMember(ch *FakeChannel) *FakeGroupMember {
	m := &FakeGroupMember{Ch: ch, Group: g}
	g.members = append(g.members, m)
	return m
}

func (g *FakeGroup) ID() int         { return g.GroupID }
func (g *FakeGroup) Name() string    { return g.GName }
func (g *FakeGroup) ClientID() int   { return g.Client }
func (g *FakeGroup) IsRadio() bool   { return g.Radio }
func (g *FakeGroup) IsHidden() bool  { return g.Hidden }
func (g *FakeGroup) IsDeleted() bool { return g.Deleted }
func (g *FakeGroup) Path() string {
	return pvrpath.NewChannelsPath(g.Radio, g.GName, pvrpath.InvalidClientID).String()
}

func (g *FakeGroup) Members(include directory.MemberInclude) []directory.GroupMember {
	var out []directory.GroupMember
	for _, m := range g.members {
		if include == directory.IncludeVisible && m.Ch.Hidden {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (g *FakeGroup) MemberByKey(key directory.ChannelKey) (directory.GroupMember, bool) {
	for _, m := range g.members {
		if m.Ch.Key() == key {
			return m, true
		}
	}
	return nil, false
}

// FakeGroups implements directory.ChannelGroups. The designated "all
// channels" groups must also be present in Groups to show up in group
// listings.
type FakeGroups struct {
	List     []*FakeGroup
	AllTV    *FakeGroup
	AllRadio *FakeGroup
}

func (g *FakeGroups) Groups(radio, excludeHidden bool) []directory.ChannelGroup {
	var out []directory.ChannelGroup
	for _, grp := range g.List {
		if grp.Radio != radio {
			continue
		}
		if excludeHidden && grp.Hidden {
			continue
		}
		out = append(out, grp)
	}
	return out
}

func (g *FakeGroups) AllGroup(radio bool) (directory.ChannelGroup, bool) {
	all := g.AllTV
	if radio {
		all = g.AllRadio
	}
	if all == nil {
		return nil, false
	}
	return all, true
}

func (g *FakeGroups) GroupByID(id int) (directory.ChannelGroup, bool) {
	for _, grp := range g.List {
		if grp.GroupID == id {
			return grp, true
		}
	}
	return nil, false
}

func (g *FakeGroups) GroupByName(radio bool, name string, clientID int) (directory.ChannelGroup, bool) {
	for _, grp := range g.List {
		if grp.Radio != radio || !strings.EqualFold(grp.GName, name) {
			continue
		}
		if clientID != pvrpath.InvalidClientID && grp.Client != clientID {
			continue
		}
		return grp, true
	}
	return nil, false
}

func (g *FakeGroups) MemberByPath(path string) (directory.GroupMember, bool) {
	for _, grp := range g.List {
		for _, m := range grp.members {
			if strings.EqualFold(m.Path(), path) {
				return m, true
			}
		}
	}
	return nil, false
}

func (g *FakeGroups) HasChannelForProvider(radio bool, clientID, providerID int) bool {
	return g.ChannelCountByProvider(radio, clientID, providerID) > 0
}

func (g *FakeGroups) ChannelCountByProvider(radio bool, clientID, providerID int) int {
	all, ok := g.AllGroup(radio)
	if !ok {
		return 0
	}
	count := 0
	for _, m := range all.Members(directory.IncludeAll) {
		ch := m.Channel()
		if ch.ClientID() == clientID && ch.ProviderID() == providerID {
			count++
		}
	}
	return count
}

// FakeRecording implements directory.Recording. PartiallyWatched counts its
// calls so tests can assert the expensive check stays off the interactive
// path.
type FakeRecording struct {
	Client       int
	Provider     int
	RecTitle     string
	Dir          string
	Radio        bool
	Deleted      bool
	Time         time.Time
	Size         int64
	Plays        int
	PartWayLocal bool
	PartWay      bool

	partWayCalls atomic.Int64
}

func (r *FakeRecording) ClientID() int         { return r.Client }
func (r *FakeRecording) ProviderID() int       { return r.Provider }
func (r *FakeRecording) Title() string         { return r.RecTitle }
func (r *FakeRecording) Directory() string     { return r.Dir }
func (r *FakeRecording) IsRadio() bool         { return r.Radio }
func (r *FakeRecording) IsDeleted() bool       { return r.Deleted }
func (r *FakeRecording) RecordedAt() time.Time { return r.Time }
func (r *FakeRecording) SizeInBytes() int64    { return r.Size }
func (r *FakeRecording) PlayCount() int        { return r.Plays }

func (r *FakeRecording) Path() string {
	view := "active"
	if r.Deleted {
		view = "deleted"
	}
	kind := "tv"
	if r.Radio {
		kind = "radio"
	}
	dir := ""
	if r.Dir != "" {
		dir = pvrpath.TrimSlashes(r.Dir) + "/"
	}
	return fmt.Sprintf("%srecordings/%s/%s/%s%s.pvr", pvrpath.Scheme, kind, view, dir, r.RecTitle)
}

func (r *FakeRecording) PartiallyWatched() bool {
	r.partWayCalls.Add(1)
	return r.PartWay
}

func (r *FakeRecording) PartiallyWatchedLocal() bool { return r.PartWayLocal }

// PartiallyWatchedCalls reports how often the expensive check ran.
func (r *FakeRecording) PartiallyWatchedCalls() int64 { return r.partWayCalls.Load() }

// FakeRecordings implements directory.Recordings.
type FakeRecordings struct {
	List []*FakeRecording
}

func (r *FakeRecordings) All() []directory.Recording {
	out := make([]directory.Recording, 0, len(r.List))
	for _, rec := range r.List {
		out = append(out, rec)
	}
	return out
}

func (r *FakeRecordings) ByPath(path string) (directory.Recording, bool) {
	for _, rec := range r.List {
		if strings.EqualFold(rec.Path(), path) {
			return rec, true
		}
	}
	return nil, false
}

func (r *FakeRecordings) NumTV() int {
	return r.count(func(rec *FakeRecording) bool { return !rec.Radio && !rec.Deleted })
}

func (r *FakeRecordings) NumRadio() int {
	return r.count(func(rec *FakeRecording) bool { return rec.Radio && !rec.Deleted })
}

func (r *FakeRecordings) HasDeletedTV() bool {
	return r.count(func(rec *FakeRecording) bool { return !rec.Radio && rec.Deleted }) > 0
}

func (r *FakeRecordings) HasDeletedRadio() bool {
	return r.count(func(rec *FakeRecording) bool { return rec.Radio && rec.Deleted }) > 0
}

func (r *FakeRecordings) HasRecordingForProvider(radio bool, clientID, providerID int) bool {
	return r.RecordingCountByProvider(radio, clientID, providerID) > 0
}

func (r *FakeRecordings) RecordingCountByProvider(radio bool, clientID, providerID int) int {
	return r.count(func(rec *FakeRecording) bool {
		return rec.Radio == radio && rec.Client == clientID && rec.Provider == providerID
	})
}

func (r *FakeRecordings) count(match func(*FakeRecording) bool) int {
	n := 0
	for _, rec := range r.List {
		if match(rec) {
			n++
		}
	}
	return n
}

// FakeTimer implements directory.Timer.
type FakeTimer struct {
	Client   int
	Index    int
	TTitle   string
	Radio    bool
	Rule     bool
	Disabled bool
	Parent   int // 0 = no parent
	Channel  int // pvrpath.AnyChannelUID for unbound rules
}

func (t *FakeTimer) ClientID() int    { return t.Client }
func (t *FakeTimer) ClientIndex() int { return t.Index }
func (t *FakeTimer) Title() string    { return t.TTitle }
func (t *FakeTimer) IsRadio() bool    { return t.Radio }
func (t *FakeTimer) IsRule() bool     { return t.Rule }
func (t *FakeTimer) IsDisabled() bool { return t.Disabled }
func (t *FakeTimer) HasParent() bool  { return t.Parent != 0 }
func (t *FakeTimer) ParentIndex() int { return t.Parent }
func (t *FakeTimer) ChannelUID() int  { return t.Channel }

// FakeTimers implements directory.Timers.
type FakeTimers struct {
	List []*FakeTimer
}

func (t *FakeTimers) All() []directory.Timer {
	out := make([]directory.Timer, 0, len(t.List))
	for _, timer := range t.List {
		out = append(out, timer)
	}
	return out
}

// FakeProvider implements directory.Provider.
type FakeProvider struct {
	Client int
	ID     int
	PName  string
}

func (p *FakeProvider) ClientID() int { return p.Client }
func (p *FakeProvider) UID() int      { return p.ID }
func (p *FakeProvider) Name() string  { return p.PName }

// FakeProviders implements directory.Providers.
type FakeProviders struct {
	List []*FakeProvider
}

func (p *FakeProviders) All() []directory.Provider {
	out := make([]directory.Provider, 0, len(p.List))
	for _, prov := range p.List {
		out = append(out, prov)
	}
	return out
}

func (p *FakeProviders) Count() int { return len(p.List) }

// FakeSavedSearch implements directory.SavedSearch.
type FakeSavedSearch struct {
	SearchID int
	Radio    bool
	STitle   string
}

func (s *FakeSavedSearch) ID() int       { return s.SearchID }
func (s *FakeSavedSearch) IsRadio() bool { return s.Radio }
func (s *FakeSavedSearch) Title() string { return s.STitle }

// FakeGuideEntry implements directory.GuideEntry.
type FakeGuideEntry struct {
	EntryPath string
	ETitle    string
	StartT    time.Time
	EndT      time.Time
}

func (g *FakeGuideEntry) Path() string     { return g.EntryPath }
func (g *FakeGuideEntry) Title() string    { return g.ETitle }
func (g *FakeGuideEntry) Start() time.Time { return g.StartT }
func (g *FakeGuideEntry) End() time.Time   { return g.EndT }

// FakeGuide implements directory.Guide. Results maps saved search ids to
// the entries the search yields.
type FakeGuide struct {
	Searches  []*FakeSavedSearch
	Results   map[int][]*FakeGuideEntry
	SearchErr error
	Entries   []*FakeGuideEntry
}

func (g *FakeGuide) SavedSearches(radio bool) []directory.SavedSearch {
	var out []directory.SavedSearch
	for _, s := range g.Searches {
		if s.Radio == radio {
			out = append(out, s)
		}
	}
	return out
}

func (g *FakeGuide) SavedSearchByID(radio bool, id int) (directory.SavedSearch, bool) {
	for _, s := range g.Searches {
		if s.Radio == radio && s.SearchID == id {
			return s, true
		}
	}
	return nil, false
}

func (g *FakeGuide) Search(_ context.Context, search directory.SavedSearch) ([]directory.GuideEntry, error) {
	if g.SearchErr != nil {
		return nil, g.SearchErr
	}
	var out []directory.GuideEntry
	for _, e := range g.Results[search.ID()] {
		out = append(out, e)
	}
	return out, nil
}

func (g *FakeGuide) EntryByPath(path string) (directory.GuideEntry, bool) {
	for _, e := range g.Entries {
		if strings.EqualFold(e.EntryPath, path) {
			return e, true
		}
	}
	return nil, false
}

// FakeClient implements directory.Client.
type FakeClient struct {
	CID        int
	FirstAdded time.Time
}

func (c *FakeClient) ID() int                       { return c.CID }
func (c *FakeClient) FirstChannelsAdded() time.Time { return c.FirstAdded }

// FakeClients implements directory.Clients.
type FakeClients struct {
	List       []*FakeClient
	EPG        bool
	Recordings bool
}

func (c *FakeClients) ByID(id int) (directory.Client, bool) {
	for _, client := range c.List {
		if client.CID == id {
			return client, true
		}
	}
	return nil, false
}

func (c *FakeClients) AnySupportsEPG() bool        { return c.EPG }
func (c *FakeClients) AnySupportsRecordings() bool { return c.Recordings }

// FakeSettings implements directory.Settings.
type FakeSettings struct {
	Grouped      bool
	HideDisabled bool
}

func (s *FakeSettings) GroupRecordings() bool    { return s.Grouped }
func (s *FakeSettings) HideDisabledTimers() bool { return s.HideDisabled }

// SyncQueue runs submitted jobs immediately on the caller's goroutine,
// making deferred work deterministic in tests.
type SyncQueue struct{}

func (SyncQueue) Submit(job directory.Job) {
	_ = job.Run(context.Background())
}

// CapturingNotifier records entry updates for later assertions.
type CapturingNotifier struct {
	mu      sync.Mutex
	updates []directory.EntryUpdate
}

func (n *CapturingNotifier) ItemUpdated(update directory.EntryUpdate) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.updates = append(n.updates, update)
}

// Updates returns a copy of the recorded updates.
func (n *CapturingNotifier) Updates() []directory.EntryUpdate {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]directory.EntryUpdate(nil), n.updates...)
}

// FakePlayback implements directory.PlaybackState.
type FakePlayback struct {
	Err      error
	Prepared []*directory.PlayableItem
}

func (p *FakePlayback) OnPreparePlayback(item *directory.PlayableItem) error {
	p.Prepared = append(p.Prepared, item)
	return p.Err
}
