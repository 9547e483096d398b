package directory

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/openpvr/pvrfs/internal/log"
	"github.com/openpvr/pvrfs/internal/metrics"
	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// rescanParallelism bounds concurrent folder rescans. Each rescan may issue
// one backend call per recording, so the limit keeps pressure off slow
// addons without serializing everything.
const rescanParallelism = 4

// inProgressCountJob recomputes the in-progress-episode count of already
// listed recordings folders. It operates on private copies of the folder
// entries plus a shared reference to the recordings snapshot, so the
// original listing can be read or released concurrently. Once queued it
// always runs to completion; there is no cancellation.
type inProgressCountJob struct {
	folders    []*Entry
	recordings []Recording
	notifier   Notifier
}

func newInProgressCountJob(folders []*Entry, recordings []Recording, notifier Notifier) *inProgressCountJob {
	return &inProgressCountJob{
		folders:    folders,
		recordings: recordings,
		notifier:   notifier,
	}
}

func (j *inProgressCountJob) Name() string { return "recordings-inprogress-count" }

func (j *inProgressCountJob) Run(ctx context.Context) error {
	if len(j.folders) == 0 || len(j.recordings) == 0 {
		return nil
	}

	var (
		mu      sync.Mutex
		updates []EntryUpdate
	)

	g := new(errgroup.Group)
	g.SetLimit(rescanParallelism)
	for _, folder := range j.folders {
		g.Go(func() error {
			update, changed := j.rescanFolder(folder)
			if changed {
				mu.Lock()
				updates = append(updates, update)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(updates, func(i, k int) bool { return updates[i].Path < updates[k].Path })

	for _, update := range updates {
		if j.notifier != nil {
			j.notifier.ItemUpdated(update)
		}
	}

	metrics.ObserveRefreshJob(len(j.folders), len(updates))
	logger := log.WithComponentFromContext(ctx, "directory")
	logger.Debug().
		Int("folders", len(j.folders)).
		Int("updates", len(updates)).
		Msg("in-progress episode counts refreshed")
	return nil
}

// rescanFolder recounts in-progress episodes for one folder by re-scanning
// all recordings matching the folder's directory, flags and filter. The
// partially-watched test here is the potentially expensive one.
func (j *inProgressCountJob) rescanFolder(folder *Entry) (EntryUpdate, bool) {
	base, opts := pvrpath.Split(folder.Path)
	recPath := pvrpath.ParseRecordingsPath(base)
	if !recPath.IsValid() || folder.Folder == nil {
		return EntryUpdate{}, false
	}

	filter := newClientProviderFilter(opts)
	dir := recPath.DirectoryPath()

	inProgress := 0
	for _, rec := range j.recordings {
		if rec.IsDeleted() != recPath.IsDeleted() ||
			rec.IsRadio() != recPath.IsRadio() ||
			filter.Excludes(rec.ClientID(), rec.ProviderID()) ||
			!pvrpath.IsDirectoryMember(dir, rec.Directory(), true) {
			continue
		}
		if rec.PartiallyWatched() {
			inProgress++
		}
	}

	if inProgress == folder.Folder.InProgressEpisodes {
		return EntryUpdate{}, false
	}
	folder.Folder.InProgressEpisodes = inProgress
	return EntryUpdate{Path: folder.Path, InProgressEpisodes: inProgress}, true
}
