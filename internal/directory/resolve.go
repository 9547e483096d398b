package directory

import (
	"context"

	"github.com/openpvr/pvrfs/internal/log"
	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// PlayableItem is an item about to be handed to playback preparation. Its
// primary Path may be foreign (a generic plugin URL, for instance) while
// DynPath carries a recognized virtual path.
type PlayableItem struct {
	Path    string
	DynPath string

	// Canonical backend identity, filled in by Resolve.
	Member    GroupMember
	Recording Recording
	Guide     GuideEntry
}

// Resolve canonicalizes an item carrying a foreign primary path into its
// backend-typed identity, then hands it to the playback-state collaborator.
// It reports false when the item is not resolvable here or playback
// preparation declined it.
func (d *Directory) Resolve(ctx context.Context, item *PlayableItem) bool {
	if !pvrpath.IsPVR(item.Path) {
		if !pvrpath.IsPVR(item.DynPath) {
			// Neither path is ours; not resolvable here.
			return false
		}
		d.resolveForeignItem(ctx, item)
	}

	if d.deps.Playback == nil {
		return false
	}
	return d.deps.Playback.OnPreparePlayback(item) == nil
}

// resolveForeignItem looks up the item's alternate path in the matching
// backend collection. Unresolvable paths are logged and left untouched.
func (d *Directory) resolveForeignItem(ctx context.Context, item *PlayableItem) {
	dyn := item.DynPath
	switch {
	case pvrpath.IsChannel(dyn):
		if member, ok := d.deps.Groups.MemberByPath(dyn); ok {
			item.Path = member.Path()
			item.Member = member
			return
		}
	case pvrpath.IsRecording(dyn):
		if rec, ok := d.deps.Recordings.ByPath(dyn); ok {
			item.Path = rec.Path()
			item.Recording = rec
			return
		}
	case pvrpath.IsGuideEntry(dyn):
		if tag, ok := d.deps.Guide.EntryByPath(dyn); ok {
			item.Path = tag.Path()
			item.Guide = tag
			return
		}
	}

	logger := log.WithComponentFromContext(ctx, "directory")
	logger.Warn().
		Str("path", dyn).
		Msg("unhandled item")
}
