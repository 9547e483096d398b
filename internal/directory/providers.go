package directory

import (
	"context"
	"fmt"

	"github.com/openpvr/pvrfs/internal/log"
	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// providersDirectory builds the listing of one providers tree location.
func (d *Directory) providersDirectory(ctx context.Context, base string, results *Listing) error {
	path := pvrpath.ParseProvidersPath(base)
	if !path.IsValid() {
		return fmt.Errorf("%w: %q", ErrMalformedPath, base)
	}

	switch {
	case path.IsProvidersRoot():
		d.providersRoot(path, results)
	case path.IsProvider():
		d.providerMenu(path, results)
	case path.IsChannels():
		d.providerChannels(ctx, path, results)
	case path.IsRecordings():
		d.providerRecordings(path, results)
	}
	return nil
}

// providersRoot lists every provider that serves at least one matching
// channel or recording for the requested kind; the rest are omitted.
func (d *Directory) providersRoot(path pvrpath.ProvidersPath, results *Listing) {
	radio := path.IsRadio()
	for _, provider := range d.deps.Providers.All() {
		if !d.deps.Groups.HasChannelForProvider(radio, provider.ClientID(), provider.UID()) &&
			!d.deps.Recordings.HasRecordingForProvider(radio, provider.ClientID(), provider.UID()) {
			continue
		}
		results.Add(&Entry{
			Path:     pvrpath.NewProvidersPath(radio, provider.ClientID(), provider.UID()).String(),
			Label:    provider.Name(),
			IsFolder: true,
			Provider: provider,
		})
	}
}

// providerMenu lists the channels/recordings folders of one provider, each
// only if its collection is non-empty, each carrying its total count.
func (d *Directory) providerMenu(path pvrpath.ProvidersPath, results *Listing) {
	radio := path.IsRadio()

	channelCount := d.deps.Groups.ChannelCountByProvider(radio, path.ClientID(), path.ProviderID())
	if channelCount > 0 {
		results.Add(&Entry{
			Path:       path.WithSub(pvrpath.ProvidersSubChannels).String(),
			Label:      labelChannels,
			IsFolder:   true,
			TotalCount: channelCount,
		})
	}

	recordingCount := d.deps.Recordings.RecordingCountByProvider(radio, path.ClientID(), path.ProviderID())
	if recordingCount > 0 {
		results.Add(&Entry{
			Path:       path.WithSub(pvrpath.ProvidersSubRecordings).String(),
			Label:      labelRecordings,
			IsFolder:   true,
			TotalCount: recordingCount,
		})
	}
}

// providerChannels lists all visible channels served by the provider.
func (d *Directory) providerChannels(ctx context.Context, path pvrpath.ProvidersPath, results *Listing) {
	group, ok := d.deps.Groups.AllGroup(path.IsRadio())
	if !ok {
		logger := log.WithComponentFromContext(ctx, "directory")
		logger.Error().
			Bool("radio", path.IsRadio()).
			Msg("all channels group unavailable")
		return
	}

	checkUID := path.ProviderID() != pvrpath.InvalidProviderID
	for _, member := range group.Members(IncludeVisible) {
		channel := member.Channel()
		if channel.ClientID() != path.ClientID() {
			continue
		}
		if checkUID && channel.ProviderID() != path.ProviderID() {
			continue
		}
		results.Add(&Entry{
			Path:   member.Path(),
			Label:  channel.Name(),
			Member: member,
		})
	}
}

// providerRecordings lists all recordings served by the provider.
func (d *Directory) providerRecordings(path pvrpath.ProvidersPath, results *Listing) {
	checkUID := path.ProviderID() != pvrpath.InvalidProviderID
	for _, rec := range d.deps.Recordings.All() {
		if rec.IsRadio() != path.IsRadio() {
			continue
		}
		if rec.ClientID() != path.ClientID() {
			continue
		}
		if checkUID && rec.ProviderID() != path.ProviderID() {
			continue
		}
		results.Add(&Entry{
			Path:        rec.Path(),
			Label:       rec.Title(),
			DateTime:    rec.RecordedAt(),
			SizeInBytes: rec.SizeInBytes(),
			Recording:   rec,
		})
	}
}
