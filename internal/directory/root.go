package directory

import (
	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// Display labels. Localization is the embedding application's concern; the
// labels here are stable identifiers for the fixed menu nodes.
const (
	labelGuide             = "Guide"
	labelChannels          = "Channels"
	labelRecordings        = "Recordings"
	labelDeletedRecordings = "Deleted recordings"
	labelProviders         = "Providers"
	labelTimers            = "Timers"
	labelTimerRules        = "Timer rules"
	labelSearch            = "Search"
	labelTV                = "TV"
	labelRadio             = "Radio"
)

// topMenu fills the fixed pvr:// root menu.
func (d *Directory) topMenu(results *Listing) {
	results.Add(&Entry{Path: pvrpath.PathChannelsRoot, Label: labelChannels, IsFolder: true})
	results.Add(&Entry{Path: pvrpath.PathActiveTVRecordings, Label: labelRecordings, IsFolder: true})
	results.Add(&Entry{Path: pvrpath.PathDeletedTVRecordings, Label: labelDeletedRecordings, IsFolder: true})
}

// kindMenu fills the tv/ or radio/ namespace root menu. Inclusion of each
// node depends only on backend capability flags.
func (d *Directory) kindMenu(radio bool, results *Listing) {
	anyEPG := d.deps.Clients.AnySupportsEPG()

	if anyEPG {
		results.Add(&Entry{
			Path:     pvrpath.Scheme + "guide/" + kindSegment(radio) + "/",
			Label:    labelGuide,
			IsFolder: true,
		})
	}

	results.Add(&Entry{
		Path:     pick(radio, pvrpath.PathRadioChannels, pvrpath.PathTVChannels),
		Label:    labelChannels,
		IsFolder: true,
	})

	if d.deps.Clients.AnySupportsRecordings() {
		results.Add(&Entry{
			Path:     pick(radio, pvrpath.PathActiveRadioRecordings, pvrpath.PathActiveTVRecordings),
			Label:    labelRecordings,
			IsFolder: true,
		})
	}

	// Providers only once there is something to distinguish.
	if d.deps.Providers.Count() > 1 {
		results.Add(&Entry{
			Path:     pick(radio, pvrpath.PathRadioProviders, pvrpath.PathTVProviders),
			Label:    labelProviders,
			IsFolder: true,
		})
	}

	// Timers and timer rules are always offered; reminders need no client
	// support.
	results.Add(&Entry{
		Path:     pick(radio, pvrpath.PathRadioTimers, pvrpath.PathTVTimers),
		Label:    labelTimers,
		IsFolder: true,
	})
	results.Add(&Entry{
		Path:     pick(radio, pvrpath.PathRadioTimerRules, pvrpath.PathTVTimerRules),
		Label:    labelTimerRules,
		IsFolder: true,
	})

	if anyEPG {
		results.Add(&Entry{
			Path:     pick(radio, pvrpath.PathRadioSearch, pvrpath.PathTVSearch),
			Label:    labelSearch,
			IsFolder: true,
		})
	}
}

func kindSegment(radio bool) string {
	if radio {
		return "radio"
	}
	return "tv"
}

func pick(radio bool, radioPath, tvPath string) string {
	if radio {
		return radioPath
	}
	return tvPath
}
