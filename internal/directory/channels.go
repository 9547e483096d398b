package directory

import (
	"context"
	"fmt"
	"net/url"

	"github.com/openpvr/pvrfs/internal/log"
	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// channelsDirectory builds the listing of one channels tree location.
func (d *Directory) channelsDirectory(ctx context.Context, base string, opts url.Values, results *Listing) error {
	path := pvrpath.ParseChannelsPath(base)
	if !path.IsValid() {
		return fmt.Errorf("%w: %q", ErrMalformedPath, base)
	}

	if path.IsEmpty() {
		results.Add(&Entry{Path: pvrpath.PathTVChannels, Label: labelTV, IsFolder: true})
		results.Add(&Entry{Path: pvrpath.PathRadioChannels, Label: labelRadio, IsFolder: true})
		return nil
	}

	if path.IsChannelsRoot() {
		d.channelGroupsDirectory(path.IsRadio(), true, results)
		return nil
	}

	var playedOnly, dateAdded bool
	switch view := opts.Get("view"); view {
	case "":
	case "lastplayed":
		playedOnly = true
	case "dateadded":
		dateAdded = true
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedView, view)
	}

	filter := newClientProviderFilter(opts)
	showHidden := path.IsHiddenChannelGroup()

	for _, member := range d.channelGroupMembers(ctx, path) {
		channel := member.Channel()

		if filter.Excludes(channel.ClientID(), channel.ProviderID()) {
			continue
		}
		if showHidden != channel.IsHidden() {
			continue
		}
		if playedOnly && channel.LastWatched().IsZero() {
			continue
		}

		hideable := false
		if dateAdded {
			added := channel.DateAdded()
			if added.IsZero() {
				continue
			}
			if client, ok := d.deps.Clients.ByID(channel.ClientID()); ok {
				// Channels added on the client's very first channel import
				// carry no meaningful added date; skip them.
				first := client.FirstChannelsAdded()
				if !first.IsZero() && !added.After(first) {
					continue
				}
			}
			hideable = true
		}

		results.Add(&Entry{
			Path:     member.Path(),
			Label:    channel.Name(),
			Member:   member,
			Hideable: hideable,
		})
	}
	return nil
}

// channelGroupsDirectory lists all member groups of one kind as folders.
func (d *Directory) channelGroupsDirectory(radio, excludeHidden bool, results *Listing) {
	for _, group := range d.deps.Groups.Groups(radio, excludeHidden) {
		results.Add(&Entry{
			Path:     group.Path(),
			Label:    group.Name(),
			IsFolder: true,
		})
	}
}

// channelGroupMembers resolves the member set addressed by a channel group
// path. A group that cannot be resolved is logged and yields an empty set;
// absence is an expected condition here.
func (d *Directory) channelGroupMembers(ctx context.Context, path pvrpath.ChannelsPath) []GroupMember {
	groupName := path.GroupName()

	var group ChannelGroup
	var ok bool
	switch {
	case path.IsHiddenChannelGroup():
		// Hidden channels live in the "all channels" group.
		group, ok = d.deps.Groups.AllGroup(path.IsRadio())

	case groupName == pvrpath.AllChannelsGroup:
		group, ok = d.deps.Groups.AllGroup(path.IsRadio())
		if ok {
			return d.allChannelsMembers(group)
		}

	default:
		group, ok = d.deps.Groups.GroupByName(path.IsRadio(), groupName, path.GroupClientID())
	}

	if ok && group != nil {
		return group.Members(IncludeAll)
	}

	logger := log.WithComponentFromContext(ctx, "directory")
	logger.Error().
		Str("group", groupName).
		Msg("unable to obtain members for channel group")
	return nil
}

// allChannelsMembers resolves the "all channels across all groups" view.
// For each member of the "all channels" group the entry substituted is, in
// order of precedence:
//  1. the member of the group the user last watched the channel in, if that
//     group is visible and not deleted;
//  2. if "all channels" itself is hidden, the member of the first visible,
//     non-deleted group containing the channel ("all channels" members must
//     not leak out, their paths name the hidden group);
//  3. the "all channels" member itself.
func (d *Directory) allChannelsMembers(allGroup ChannelGroup) []GroupMember {
	var result []GroupMember
	for _, allMember := range allGroup.Members(IncludeVisible) {
		if member, ok := d.lastWatchedGroupMember(allMember.Channel()); ok {
			result = append(result, member)
			continue
		}

		if allGroup.IsHidden() {
			if member, ok := d.firstMatchingGroupMember(allMember.Channel()); ok {
				result = append(result, member)
			}
		} else {
			result = append(result, allMember)
		}
	}
	return result
}

func (d *Directory) lastWatchedGroupMember(channel Channel) (GroupMember, bool) {
	groupID := channel.LastWatchedGroupID()
	if groupID == pvrpath.InvalidGroupID {
		return nil, false
	}
	group, ok := d.deps.Groups.GroupByID(groupID)
	if !ok || group.IsHidden() || group.IsDeleted() {
		return nil, false
	}
	return group.MemberByKey(channel.Key())
}

func (d *Directory) firstMatchingGroupMember(channel Channel) (GroupMember, bool) {
	for _, group := range d.deps.Groups.Groups(channel.IsRadio(), true) {
		// Deleted groups never win the fallback scan.
		if group.IsDeleted() {
			continue
		}
		if member, ok := group.MemberByKey(channel.Key()); ok {
			return member, true
		}
	}
	return nil, false
}
