package pvrpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Well-known channels paths.
const (
	PathChannelsRoot  = Scheme + "channels/"
	PathTVChannels    = Scheme + "channels/tv/"
	PathRadioChannels = Scheme + "channels/radio/"
)

// ChannelsPath is the typed decomposition of a pvr://channels/... path.
// The zero value is invalid.
type ChannelsPath struct {
	valid         bool
	hasKind       bool
	radio         bool
	groupName     string
	groupClientID int
}

// NewChannelsPath builds the path of one channel group.
func NewChannelsPath(radio bool, groupName string, groupClientID int) ChannelsPath {
	return ChannelsPath{
		valid:         true,
		hasKind:       true,
		radio:         radio,
		groupName:     groupName,
		groupClientID: groupClientID,
	}
}

// ParseChannelsPath parses a channels namespace path, options stripped.
func ParseChannelsPath(base string) ChannelsPath {
	segs, ok := Segments(base)
	if !ok || len(segs) == 0 || !strings.EqualFold(segs[0], "channels") {
		return ChannelsPath{}
	}
	p := ChannelsPath{groupClientID: InvalidClientID}
	switch len(segs) {
	case 1:
		p.valid = true
		return p
	case 2:
		radio, ok := parseKind(segs[1])
		if !ok {
			return ChannelsPath{}
		}
		p.valid = true
		p.hasKind = true
		p.radio = radio
		return p
	case 3:
		radio, ok := parseKind(segs[1])
		if !ok {
			return ChannelsPath{}
		}
		name, clientID := splitGroupSegment(unescapeSegment(segs[2]))
		if name == "" {
			return ChannelsPath{}
		}
		p.valid = true
		p.hasKind = true
		p.radio = radio
		p.groupName = name
		p.groupClientID = clientID
		return p
	}
	return ChannelsPath{}
}

// splitGroupSegment splits "<name>@<clientid>" into its parts. A missing or
// malformed client id suffix leaves the whole segment as the group name.
func splitGroupSegment(seg string) (string, int) {
	if i := strings.LastIndexByte(seg, '@'); i > 0 {
		if id, err := strconv.Atoi(seg[i+1:]); err == nil {
			return seg[:i], id
		}
	}
	return seg, InvalidClientID
}

func (p ChannelsPath) IsValid() bool { return p.valid }

// IsEmpty reports the channels namespace root (no tv/radio kind yet).
func (p ChannelsPath) IsEmpty() bool { return p.valid && !p.hasKind }

// IsChannelsRoot reports the group listing root of one kind.
func (p ChannelsPath) IsChannelsRoot() bool {
	return p.valid && p.hasKind && p.groupName == ""
}

// IsChannelGroup reports a concrete group's channel listing.
func (p ChannelsPath) IsChannelGroup() bool {
	return p.valid && p.hasKind && p.groupName != ""
}

// IsHiddenChannelGroup reports the hidden-channels pseudo group.
func (p ChannelsPath) IsHiddenChannelGroup() bool {
	return p.IsChannelGroup() && strings.EqualFold(p.groupName, HiddenGroup)
}

// IsAllChannelsGroup reports the "all channels across all groups" group.
func (p ChannelsPath) IsAllChannelsGroup() bool {
	return p.IsChannelGroup() && p.groupName == AllChannelsGroup
}

func (p ChannelsPath) IsRadio() bool { return p.radio }

func (p ChannelsPath) GroupName() string { return p.groupName }

func (p ChannelsPath) GroupClientID() int { return p.groupClientID }

// String serializes the path canonically.
func (p ChannelsPath) String() string {
	if !p.valid {
		return ""
	}
	if !p.hasKind {
		return PathChannelsRoot
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%schannels/%s/", Scheme, kindSegment(p.radio))
	if p.groupName != "" {
		// The reserved "*" name stays literal; PathEscape would turn it
		// into %2A and break the well-known all-channels path.
		if p.groupName == AllChannelsGroup {
			b.WriteString(AllChannelsGroup)
		} else {
			b.WriteString(escapeSegment(p.groupName))
		}
		if p.groupClientID != InvalidClientID {
			fmt.Fprintf(&b, "@%d", p.groupClientID)
		}
		b.WriteByte('/')
	}
	return b.String()
}
