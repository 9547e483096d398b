package directory

import (
	"context"
	"fmt"
	"net/url"

	"github.com/openpvr/pvrfs/internal/log"
	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// recordingsDirectory builds the listing of one recordings tree location.
func (d *Directory) recordingsDirectory(ctx context.Context, base string, opts url.Values, results *Listing) error {
	grouped, err := groupedView(opts, d.deps.Settings.GroupRecordings())
	if err != nil {
		return err
	}

	recPath := pvrpath.ParseRecordingsPath(base)
	if !recPath.IsValid() {
		return fmt.Errorf("%w: %q", ErrMalformedPath, base)
	}

	filter := newClientProviderFilter(opts)
	recordings := d.deps.Recordings.All()

	// The directory structure exists only for a grouped, active view; the
	// deleted view is always flattened.
	if !recPath.IsDeleted() && grouped {
		recordingsSubDirectories(recPath, recordings, filter, results)
	}

	if results.Len() > 0 && d.deps.Jobs != nil {
		// Recompute folder in-progress counts asynchronously; the check can
		// involve one backend call per recording.
		d.deps.Jobs.Submit(newInProgressCountJob(results.Folders(), recordings, d.deps.Notifier))
	}

	// Leaf recordings of the current directory; in flat mode recursively
	// everything below it.
	dir := recPath.DirectoryPath()
	for _, rec := range recordings {
		if filter.Excludes(rec.ClientID(), rec.ProviderID()) {
			continue
		}
		if rec.IsDeleted() != recPath.IsDeleted() ||
			rec.IsRadio() != recPath.IsRadio() ||
			!pvrpath.IsDirectoryMember(dir, rec.Directory(), grouped) {
			continue
		}

		e := &Entry{
			Path:        rec.Path(),
			Label:       rec.Title(),
			DateTime:    rec.RecordedAt(),
			SizeInBytes: rec.SizeInBytes(),
			Recording:   rec,
			Overlay:     OverlayUnwatched,
		}
		if rec.PlayCount() > 0 {
			e.Overlay = OverlayWatched
		}
		results.Add(e)
	}

	return nil
}

// groupedView resolves the effective grouping mode from the view option,
// falling back to the configured default.
func groupedView(opts url.Values, fallback bool) (bool, error) {
	view := opts.Get("view")
	switch view {
	case "":
		return fallback, nil
	case "grouped":
		return true, nil
	case "flat":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnsupportedView, view)
}

// recordingsSubDirectories derives one synthetic folder per distinct
// immediate sub-directory segment below recPath, accumulating per-folder
// aggregates. The first recording seen for a segment creates the folder;
// later ones increment its counters and may advance its timestamp.
func recordingsSubDirectories(recPath pvrpath.RecordingsPath, recordings []Recording, filter clientProviderFilter, results *Listing) {
	radio := recPath.IsRadio()

	for _, rec := range recordings {
		if filter.Excludes(rec.ClientID(), rec.ProviderID()) {
			continue
		}
		if rec.IsDeleted() || rec.IsRadio() != radio {
			continue
		}

		segment := recPath.SubDirectoryPath(rec.Directory())
		if segment == "" {
			continue
		}

		childPath := recPath.AppendSegment(segment).String() + filter.Query()
		folder, ok := results.Get(childPath)
		if !ok {
			folder = &Entry{
				Path:     childPath,
				Label:    segment,
				IsFolder: true,
				DateTime: rec.RecordedAt(),
				Folder:   &FolderStats{},
				// Assume watched; flipped below when an unwatched entry shows up.
				Overlay: OverlayWatched,
			}
			results.Add(folder)
		} else if folder.DateTime.Before(rec.RecordedAt()) {
			// The most recent recording determines the folder's sort time.
			folder.DateTime = rec.RecordedAt()
		}

		stats := folder.Folder
		stats.TotalEpisodes++
		if rec.PlayCount() == 0 {
			stats.UnwatchedEpisodes++
		} else {
			stats.WatchedEpisodes++
		}
		// The cached resume state is used here; the authoritative count is
		// recomputed by the deferred refresh job.
		if rec.PartiallyWatchedLocal() {
			stats.InProgressEpisodes++
		}
		stats.SizeInBytes += rec.SizeInBytes()
	}

	for _, folder := range results.Items() {
		if folder.Folder == nil {
			continue
		}
		folder.SizeInBytes = folder.Folder.SizeInBytes
		if folder.Folder.UnwatchedEpisodes > 0 {
			folder.Overlay = OverlayUnwatched
		}
	}
}

// RecordingsDirectoryInfo synchronously computes the aggregate stats of one
// recordings folder path, for a UI that needs them for a focused folder.
func (d *Directory) RecordingsDirectoryInfo(ctx context.Context, rawPath string) (*Entry, error) {
	listing, err := d.List(ctx, rawPath)
	if err != nil {
		return nil, err
	}

	info := &Entry{
		Path:     rawPath,
		IsFolder: true,
		Folder:   &FolderStats{},
	}
	for _, e := range listing.Items() {
		rec := e.Recording
		if rec == nil {
			continue
		}

		if info.DateTime.Before(rec.RecordedAt()) {
			info.DateTime = rec.RecordedAt()
		}

		info.Folder.TotalEpisodes++
		if rec.PlayCount() == 0 {
			info.Folder.UnwatchedEpisodes++
		} else {
			info.Folder.WatchedEpisodes++
		}
		if rec.PartiallyWatched() {
			info.Folder.InProgressEpisodes++
		}
		info.Folder.SizeInBytes += rec.SizeInBytes()
	}

	info.SizeInBytes = info.Folder.SizeInBytes
	if info.Folder.UnwatchedEpisodes > 0 {
		info.Overlay = OverlayUnwatched
	} else {
		info.Overlay = OverlayWatched
	}

	logger := log.WithComponentFromContext(ctx, "directory")
	logger.Debug().
		Str("path", rawPath).
		Int("total", info.Folder.TotalEpisodes).
		Msg("computed recordings directory info")
	return info, nil
}
