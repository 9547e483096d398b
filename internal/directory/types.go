// Package directory resolves pvr:// virtual paths into listings of
// channels, channel groups, recordings, timers, providers and saved EPG
// searches. All backend state is supplied through the collaborator
// interfaces below; the package holds no collections of its own and treats
// every snapshot it reads as frozen for the duration of one scan.
package directory

import (
	"context"
	"time"
)

// ChannelKey identifies a channel across groups: the originating client
// plus the client's unique channel id.
type ChannelKey struct {
	ClientID   int
	ChannelUID int
}

// Channel is one live TV or radio channel owned by a backend client.
type Channel interface {
	Key() ChannelKey
	ClientID() int
	ProviderID() int
	Name() string
	IsRadio() bool
	IsHidden() bool
	// LastWatched is zero if the channel was never played.
	LastWatched() time.Time
	// LastWatchedGroupID is pvrpath.InvalidGroupID if unknown.
	LastWatchedGroupID() int
	// DateAdded is zero if the backend did not record it.
	DateAdded() time.Time
}

// GroupMember is a channel's membership in one group. The same channel can
// be a member of several groups, each membership carrying its own path.
type GroupMember interface {
	Channel() Channel
	GroupID() int
	Path() string
}

// MemberInclude selects which members a group enumeration yields.
type MemberInclude int

const (
	IncludeAll MemberInclude = iota
	IncludeVisible
)

// ChannelGroup is an ordered set of group members of one kind (TV/radio).
type ChannelGroup interface {
	ID() int
	Name() string
	ClientID() int
	IsRadio() bool
	IsHidden() bool
	IsDeleted() bool
	Path() string
	Members(include MemberInclude) []GroupMember
	MemberByKey(key ChannelKey) (GroupMember, bool)
}

// ChannelGroups is the container of all channel groups of both kinds.
type ChannelGroups interface {
	Groups(radio bool, excludeHidden bool) []ChannelGroup
	// AllGroup returns the designated "all channels" group of one kind.
	AllGroup(radio bool) (ChannelGroup, bool)
	GroupByID(id int) (ChannelGroup, bool)
	GroupByName(radio bool, name string, clientID int) (ChannelGroup, bool)
	MemberByPath(path string) (GroupMember, bool)
	HasChannelForProvider(radio bool, clientID, providerID int) bool
	ChannelCountByProvider(radio bool, clientID, providerID int) int
}

// Recording is one recording owned by a backend client.
type Recording interface {
	ClientID() int
	ProviderID() int
	Title() string
	Path() string
	// Directory is the backend-supplied folder the recording lives in,
	// relative to the recordings view root.
	Directory() string
	IsRadio() bool
	IsDeleted() bool
	RecordedAt() time.Time
	SizeInBytes() int64
	PlayCount() int
	// PartiallyWatched may require a call into the backend client.
	PartiallyWatched() bool
	// PartiallyWatchedLocal answers from locally cached resume state only
	// and is safe on the interactive listing path.
	PartiallyWatchedLocal() bool
}

// Recordings is the container of all recordings across clients.
type Recordings interface {
	All() []Recording
	ByPath(path string) (Recording, bool)
	NumTV() int
	NumRadio() int
	HasDeletedTV() bool
	HasDeletedRadio() bool
	HasRecordingForProvider(radio bool, clientID, providerID int) bool
	RecordingCountByProvider(radio bool, clientID, providerID int) int
}

// Timer is one timer or timer rule owned by a backend client.
type Timer interface {
	ClientID() int
	// ClientIndex is the timer's per-client index.
	ClientIndex() int
	Title() string
	IsRadio() bool
	IsRule() bool
	IsDisabled() bool
	// HasParent reports whether the timer was spawned by a rule.
	HasParent() bool
	// ParentIndex is the per-client index of the spawning rule.
	ParentIndex() int
	// ChannelUID is pvrpath.AnyChannelUID for rules not bound to a channel.
	ChannelUID() int
}

// Timers is the container of all timers and rules across clients.
type Timers interface {
	All() []Timer
}

// Provider is a logical content source registered by a backend client.
type Provider interface {
	ClientID() int
	UID() int
	Name() string
}

// Providers is the container of all registered providers.
type Providers interface {
	All() []Provider
	Count() int
}

// SavedSearch is a persisted EPG query definition.
type SavedSearch interface {
	ID() int
	IsRadio() bool
	Title() string
}

// GuideEntry is one EPG program entry.
type GuideEntry interface {
	Path() string
	Title() string
	Start() time.Time
	End() time.Time
}

// Guide gives access to saved searches and live guide data.
type Guide interface {
	SavedSearches(radio bool) []SavedSearch
	SavedSearchByID(radio bool, id int) (SavedSearch, bool)
	// Search re-runs the saved query live against the guide data.
	Search(ctx context.Context, search SavedSearch) ([]GuideEntry, error)
	EntryByPath(path string) (GuideEntry, bool)
}

// Client exposes the per-client facts the builders need.
type Client interface {
	ID() int
	// FirstChannelsAdded is the time the client's initial channel
	// population completed, zero if not recorded.
	FirstChannelsAdded() time.Time
}

// Clients answers capability queries across all backend clients.
type Clients interface {
	ByID(id int) (Client, bool)
	AnySupportsEPG() bool
	AnySupportsRecordings() bool
}

// Settings supplies the listing defaults used when a path carries no
// explicit view option.
type Settings interface {
	GroupRecordings() bool
	HideDisabledTimers() bool
}

// Job is a deferred unit of work handed to the job queue.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// JobQueue accepts fire-and-forget background jobs.
type JobQueue interface {
	Submit(job Job)
}

// EntryUpdate carries a recomputed aggregate for one already-listed entry.
type EntryUpdate struct {
	Path               string
	InProgressEpisodes int
}

// Notifier receives per-entry refresh notifications from background jobs.
type Notifier interface {
	ItemUpdated(update EntryUpdate)
}

// PlaybackState is the external playback-preparation collaborator.
type PlaybackState interface {
	OnPreparePlayback(item *PlayableItem) error
}

// Deps wires a Directory to its backend collaborators. Started, Clients,
// Groups, Recordings, Timers, Providers, Guide and Settings are required;
// Jobs, Notifier and Playback may be nil, disabling the respective feature.
type Deps struct {
	Started    func() bool
	Clients    Clients
	Groups     ChannelGroups
	Recordings Recordings
	Timers     Timers
	Providers  Providers
	Guide      Guide
	Settings   Settings
	Jobs       JobQueue
	Notifier   Notifier
	Playback   PlaybackState
}
