package testutil

import "github.com/openpvr/pvrfs/internal/directory"

// Backend bundles a full fake collaborator set with sensible defaults: a
// started backend, a synchronous job queue and a capturing notifier.
type Backend struct {
	StartedFlag bool
	Clients     *FakeClients
	Groups      *FakeGroups
	Recordings  *FakeRecordings
	Timers      *FakeTimers
	Providers   *FakeProviders
	Guide       *FakeGuide
	Settings    *FakeSettings
	Queue       directory.JobQueue
	Notifier    *CapturingNotifier
	Playback    *FakePlayback
}

func NewBackend() *Backend {
	return &Backend{
		StartedFlag: true,
		Clients:     &FakeClients{EPG: true, Recordings: true},
		Groups:      &FakeGroups{},
		Recordings:  &FakeRecordings{},
		Timers:      &FakeTimers{},
		Providers:   &FakeProviders{},
		Guide:       &FakeGuide{},
		Settings:    &FakeSettings{Grouped: true},
		Queue:       SyncQueue{},
		Notifier:    &CapturingNotifier{},
		Playback:    &FakePlayback{},
	}
}

// Deps wires the fakes into a directory.Deps.
func (b *Backend) Deps() directory.Deps {
	return directory.Deps{
		Started:    func() bool { return b.StartedFlag },
		Clients:    b.Clients,
		Groups:     b.Groups,
		Recordings: b.Recordings,
		Timers:     b.Timers,
		Providers:  b.Providers,
		Guide:      b.Guide,
		Settings:   b.Settings,
		Jobs:       b.Queue,
		Notifier:   b.Notifier,
		Playback:   b.Playback,
	}
}
