// Command pvrls lists pvr:// virtual paths against a built-in demo backend.
// It exists to exercise the directory provider end to end from a shell:
//
//	pvrls pvr://
//	pvrls -json "pvr://recordings/tv/active/?view=flat"
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openpvr/pvrfs/internal/config"
	"github.com/openpvr/pvrfs/internal/directory"
	"github.com/openpvr/pvrfs/internal/jobs"
	"github.com/openpvr/pvrfs/internal/log"
	"github.com/openpvr/pvrfs/internal/pvrpath"
	"github.com/openpvr/pvrfs/internal/testutil"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to settings file (YAML)")
	level := flag.String("level", "info", "log level")
	asJSON := flag.Bool("json", false, "print entries as JSON")
	flag.Parse()

	if *showVersion {
		fmt.Printf("pvrls %s (commit: %s, built: %s)\n", version, commit, buildDate)
		return 0
	}

	log.Configure(log.Config{Level: *level, Output: os.Stderr, Service: "pvrls"})
	logger := log.WithComponent("pvrls")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	settings, err := config.Load(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("load settings")
		return 1
	}

	queue := jobs.NewQueue(2, 32)
	defer queue.Close()

	backend := demoBackend()
	deps := backend.Deps()
	deps.Settings = settings
	deps.Jobs = jobs.NewDirectoryQueue(queue)
	deps.Notifier = logNotifier{}
	dir := directory.New(deps)

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{pvrpath.Scheme}
	}

	for _, path := range paths {
		listing, err := dir.List(ctx, path)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("listing failed")
			return 1
		}
		if err := printListing(path, listing, *asJSON); err != nil {
			logger.Error().Err(err).Msg("print listing")
			return 1
		}
	}
	return 0
}

// row is the JSON shape of one printed entry.
type row struct {
	Path     string    `json:"path"`
	Label    string    `json:"label"`
	Folder   bool      `json:"folder"`
	DateTime time.Time `json:"datetime,omitzero"`
	Size     int64     `json:"size,omitempty"`
	Episodes int       `json:"episodes,omitempty"`
}

func printListing(path string, listing *directory.Listing, asJSON bool) error {
	if asJSON {
		rows := make([]row, 0, listing.Len())
		for _, e := range listing.Items() {
			r := row{
				Path:     e.Path,
				Label:    e.Label,
				Folder:   e.IsFolder,
				DateTime: e.DateTime,
				Size:     e.SizeInBytes,
			}
			if e.Folder != nil {
				r.Episodes = e.Folder.TotalEpisodes
			}
			rows = append(rows, r)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%s (%d entries)\n", path, listing.Len())
	for _, e := range listing.Items() {
		marker := " "
		if e.IsFolder {
			marker = "d"
		}
		fmt.Printf("  %s %-30s %s\n", marker, e.Label, e.Path)
	}
	return nil
}

// logNotifier surfaces deferred listing updates on the log.
type logNotifier struct{}

func (logNotifier) ItemUpdated(update directory.EntryUpdate) {
	logger := log.WithComponent("pvrls")
	logger.Info().
		Str("path", update.Path).
		Int("in_progress", update.InProgressEpisodes).
		Msg("entry updated")
}

// demoBackend seeds a small fixture line-up: two TV groups, a radio group,
// a show recorded into folders, a couple of timers and one saved search.
func demoBackend() *testutil.Backend {
	b := testutil.NewBackend()

	all := &testutil.FakeGroup{GroupID: 1, GName: pvrpath.AllChannelsGroup, Client: 1}
	favourites := &testutil.FakeGroup{GroupID: 2, GName: "Favourites", Client: 1}
	stations := &testutil.FakeGroup{GroupID: 3, GName: "Stations", Client: 1, Radio: true}

	one := &testutil.FakeChannel{Client: 1, Provider: 10, UID: 1, ChannelName: "One HD",
		WatchedGroup: 2, Watched: time.Now().Add(-2 * time.Hour)}
	two := &testutil.FakeChannel{Client: 1, Provider: 10, UID: 2, ChannelName: "Two"}
	news := &testutil.FakeChannel{Client: 1, Provider: 20, UID: 3, ChannelName: "News 24"}
	fm := &testutil.FakeChannel{Client: 1, Provider: 10, UID: 4, ChannelName: "Classic FM", Radio: true}

	all.AddMember(one)
	all.AddMember(two)
	all.AddMember(news)
	favourites.AddMember(one)
	stations.AddMember(fm)

	allRadio := &testutil.FakeGroup{GroupID: 4, GName: pvrpath.AllChannelsGroup, Client: 1, Radio: true}
	allRadio.AddMember(fm)

	b.Groups.List = []*testutil.FakeGroup{all, favourites, stations, allRadio}
	b.Groups.AllTV = all
	b.Groups.AllRadio = allRadio

	now := time.Now().Truncate(time.Second)
	b.Recordings.List = []*testutil.FakeRecording{
		{Client: 1, Provider: 10, RecTitle: "Pilot", Dir: "Show", Time: now.Add(-72 * time.Hour),
			Size: 1 << 30, Plays: 1},
		{Client: 1, Provider: 10, RecTitle: "Episode 2", Dir: "Show", Time: now.Add(-24 * time.Hour),
			Size: 1 << 30, PartWayLocal: true, PartWay: true},
		{Client: 1, Provider: 20, RecTitle: "Evening News", Time: now.Add(-3 * time.Hour),
			Size: 512 << 20},
	}

	b.Timers.List = []*testutil.FakeTimer{
		{Client: 1, Index: 1, TTitle: "Evening News", Channel: 3},
		{Client: 1, Index: 2, TTitle: "Show", Rule: true, Channel: 1},
		{Client: 1, Index: 3, TTitle: "Show: Episode 3", Parent: 2, Channel: 1},
	}

	b.Providers.List = []*testutil.FakeProvider{
		{Client: 1, ID: 10, PName: "Main DVB"},
		{Client: 1, ID: 20, PName: "News Network"},
	}

	b.Guide.Searches = []*testutil.FakeSavedSearch{{SearchID: 1, STitle: "Movies tonight"}}
	b.Guide.Results = map[int][]*testutil.FakeGuideEntry{
		1: {{EntryPath: "pvr://guide/tv/1@1/100.epg", ETitle: "Heat",
			StartT: now.Add(2 * time.Hour), EndT: now.Add(5 * time.Hour)}},
	}

	b.Clients.List = []*testutil.FakeClient{{CID: 1, FirstAdded: now.Add(-30 * 24 * time.Hour)}}
	return b
}
