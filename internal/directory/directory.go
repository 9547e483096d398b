package directory

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/openpvr/pvrfs/internal/log"
	"github.com/openpvr/pvrfs/internal/metrics"
	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// Directory is the virtual-filesystem directory provider. One instance is
// shared by all callers; it is stateless apart from its injected
// collaborators and safe for concurrent use.
type Directory struct {
	deps Deps
}

// New builds a Directory. It panics on missing required collaborators,
// since that is a wiring error, not a runtime condition.
func New(deps Deps) *Directory {
	switch {
	case deps.Started == nil:
		panic("directory: Deps.Started is required")
	case deps.Clients == nil:
		panic("directory: Deps.Clients is required")
	case deps.Groups == nil:
		panic("directory: Deps.Groups is required")
	case deps.Recordings == nil:
		panic("directory: Deps.Recordings is required")
	case deps.Timers == nil:
		panic("directory: Deps.Timers is required")
	case deps.Providers == nil:
		panic("directory: Deps.Providers is required")
	case deps.Guide == nil:
		panic("directory: Deps.Guide is required")
	case deps.Settings == nil:
		panic("directory: Deps.Settings is required")
	}
	return &Directory{deps: deps}
}

// List resolves the given virtual path into a listing.
//
// When the backend subsystem is not started, recognized namespaces yield an
// empty but successful listing. Unroutable paths fail with ErrNotPVRPath,
// malformed namespace paths with ErrMalformedPath; no partial results are
// returned on failure.
func (d *Directory) List(ctx context.Context, rawPath string) (*Listing, error) {
	start := time.Now()
	base, opts := pvrpath.Split(rawPath)
	segs, ok := pvrpath.Segments(base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotPVRPath, rawPath)
	}

	namespace := "root"
	if len(segs) > 0 {
		namespace = strings.ToLower(segs[0])
	}

	results, err := d.dispatch(ctx, namespace, base, opts)
	metrics.ObserveListing(namespace, err, time.Since(start))
	if err != nil {
		logger := log.WithComponentFromContext(ctx, "directory")
		logger.Error().
			Err(err).
			Str("path", rawPath).
			Msg("listing failed")
		return nil, err
	}
	return results, nil
}

func (d *Directory) dispatch(ctx context.Context, namespace, base string, opts url.Values) (*Listing, error) {
	results := NewListing()
	started := d.deps.Started()

	switch namespace {
	case "root":
		if started {
			d.topMenu(results)
		}
		return results, nil
	case "tv":
		if started {
			d.kindMenu(false, results)
		}
		return results, nil
	case "radio":
		if started {
			d.kindMenu(true, results)
		}
		return results, nil
	case "recordings":
		if !started {
			return results, nil
		}
		return results, d.recordingsDirectory(ctx, base, opts, results)
	case "channels":
		if !started {
			return results, nil
		}
		return results, d.channelsDirectory(ctx, base, opts, results)
	case "providers":
		if !started {
			return results, nil
		}
		return results, d.providersDirectory(ctx, base, results)
	case "timers":
		if !started {
			return results, nil
		}
		return results, d.timersDirectory(ctx, base, opts, results)
	}

	if path := pvrpath.ParseSearchPath(base); path.IsValid() {
		if !started {
			return results, nil
		}
		switch {
		case path.IsSavedSearchesRoot():
			d.savedSearchesDirectory(path.IsRadio(), results)
			return results, nil
		case path.IsSavedSearch():
			return results, d.savedSearchResults(ctx, path.IsRadio(), path.ID(), results)
		}
		return results, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNotPVRPath, base)
}

// Exists reports whether the path denotes a location this provider can
// answer for; only the recordings tree of a started backend qualifies.
func (d *Directory) Exists(rawPath string) bool {
	return d.deps.Started() && pvrpath.IsRecordingsTree(rawPath)
}

// SupportsWriteOperations reports whether the path addresses a writable
// entity, i.e. a single recording of a started backend.
func (d *Directory) SupportsWriteOperations(rawPath string) bool {
	return d.deps.Started() && pvrpath.IsRecording(rawPath)
}

// Capability probes used by the outer UI to decide which nodes to offer.

func (d *Directory) HasTVRecordings() bool {
	return d.deps.Started() && d.deps.Recordings.NumTV() > 0
}

func (d *Directory) HasDeletedTVRecordings() bool {
	return d.deps.Started() && d.deps.Recordings.HasDeletedTV()
}

func (d *Directory) HasRadioRecordings() bool {
	return d.deps.Started() && d.deps.Recordings.NumRadio() > 0
}

func (d *Directory) HasDeletedRadioRecordings() bool {
	return d.deps.Started() && d.deps.Recordings.HasDeletedRadio()
}
