package directory

import (
	"context"
	"fmt"
	"net/url"

	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// timersDirectory builds the listing of the timers or rules tree.
func (d *Directory) timersDirectory(ctx context.Context, base string, opts url.Values, results *Listing) error {
	path := pvrpath.ParseTimersPath(base)
	if !path.IsValid() {
		return fmt.Errorf("%w: %q", ErrMalformedPath, base)
	}

	hideDisabled := d.deps.Settings.HideDisabledTimers()
	switch view := opts.Get("view"); view {
	case "":
	case "hidedisabled":
		hideDisabled = true
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedView, view)
	}

	timers := d.deps.Timers.All()
	if path.IsTimersRoot() {
		timersRootDirectory(path, hideDisabled, timers, results)
	} else {
		timersSubDirectory(path, hideDisabled, timers, results)
	}
	return nil
}

// timersRootDirectory lists all timers (or rules) of the path's kind. A
// rule targeting "any channel" matches regardless of kind.
func timersRootDirectory(path pvrpath.TimersPath, hideDisabled bool, timers []Timer, results *Listing) {
	radio := path.IsRadio()
	rules := path.IsRules()

	for _, timer := range timers {
		kindMatch := timer.IsRadio() == radio ||
			(rules && timer.ChannelUID() == pvrpath.AnyChannelUID)
		if !kindMatch || timer.IsRule() != rules {
			continue
		}
		if hideDisabled && timer.IsDisabled() {
			continue
		}
		results.Add(timerEntry(path, timer))
	}
}

// timersSubDirectory lists the timers spawned by the rule the path
// addresses.
func timersSubDirectory(path pvrpath.TimersPath, hideDisabled bool, timers []Timer, results *Listing) {
	radio := path.IsRadio()
	clientID := path.ClientID()
	parentIndex := path.ParentIndex()

	for _, timer := range timers {
		if timer.IsRadio() != radio || !timer.HasParent() {
			continue
		}
		if clientID != pvrpath.InvalidClientID && timer.ClientID() != clientID {
			continue
		}
		if timer.ParentIndex() != parentIndex {
			continue
		}
		if hideDisabled && timer.IsDisabled() {
			continue
		}
		results.Add(timerEntry(path, timer))
	}
}

// timerEntry builds the entry of one timer; its path encodes the origin
// client and per-client index for later re-resolution.
func timerEntry(path pvrpath.TimersPath, timer Timer) *Entry {
	return &Entry{
		Path:     path.WithTimer(timer.ClientID(), timer.ClientIndex()).String(),
		Label:    timer.Title(),
		IsFolder: timer.IsRule(),
		Timer:    timer,
	}
}
