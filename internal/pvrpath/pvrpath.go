// Package pvrpath parses and serializes the pvr:// virtual path scheme.
//
// Each namespace (channels, recordings, timers, providers, search) has its
// own typed path value. Parsing never fails with an error; malformed input
// yields a value whose IsValid reports false. Serialization round-trips to
// an equivalent path. Segment matching is case-insensitive.
package pvrpath

import (
	"net/url"
	"strconv"
	"strings"
)

// Scheme is the URL scheme prefix of all virtual PVR paths.
const Scheme = "pvr://"

// Invalid identifier sentinels shared across namespaces.
const (
	InvalidClientID   = -1
	InvalidProviderID = -1
	InvalidGroupID    = -1

	// AnyChannelUID marks a timer rule that is not bound to one channel.
	AnyChannelUID = -1
)

// Reserved channel group names.
const (
	AllChannelsGroup = "*"
	HiddenGroup      = ".hidden"
)

// IsPVR reports whether raw carries the pvr:// scheme.
func IsPVR(raw string) bool {
	return strings.HasPrefix(strings.ToLower(raw), Scheme)
}

// Split separates a raw virtual path into its base (scheme plus segments,
// options stripped) and its parsed query options.
func Split(raw string) (string, url.Values) {
	base := raw
	var opts url.Values
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		base = raw[:i]
		if v, err := url.ParseQuery(raw[i+1:]); err == nil {
			opts = v
		}
	}
	return base, opts
}

// Segments returns the slash-separated segments after the scheme, with
// empty segments dropped. The second result is false if raw does not carry
// the pvr:// scheme.
func Segments(raw string) ([]string, bool) {
	if !IsPVR(raw) {
		return nil, false
	}
	rest := raw[len(Scheme):]
	var segs []string
	for _, s := range strings.Split(rest, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs, true
}

// TrimSlashes removes all leading and trailing slashes.
func TrimSlashes(s string) string {
	return strings.Trim(s, "/")
}

// IsDirectoryMember reports whether an entry that lives in entryDir belongs
// to a listing of dir. Grouped mode requires an exact match, flat mode a
// prefix match. Comparison is case-insensitive since sub folders are
// derived with case-insensitive matching.
func IsDirectoryMember(dir, entryDir string, grouped bool) bool {
	d := TrimSlashes(dir)
	e := TrimSlashes(entryDir)
	if grouped {
		return strings.EqualFold(d, e)
	}
	return hasFoldPrefix(e, d)
}

// hasFoldPrefix reports whether s starts with prefix, ignoring case.
func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// ClientProviderFromOptions extracts the clientid/providerid selector pair
// from query options. The filter applies only when a client id is present;
// the provider id defaults to InvalidProviderID.
func ClientProviderFromOptions(opts url.Values) (clientID, providerID int, ok bool) {
	clientID = InvalidClientID
	providerID = InvalidProviderID
	if opts == nil {
		return clientID, providerID, false
	}
	c := opts.Get("clientid")
	if c == "" {
		return clientID, providerID, false
	}
	id, err := strconv.Atoi(c)
	if err != nil {
		return InvalidClientID, InvalidProviderID, false
	}
	clientID = id
	if p := opts.Get("providerid"); p != "" {
		if id, err := strconv.Atoi(p); err == nil {
			providerID = id
		}
	}
	return clientID, providerID, true
}

func kindSegment(radio bool) string {
	if radio {
		return "radio"
	}
	return "tv"
}

func parseKind(seg string) (radio, ok bool) {
	switch strings.ToLower(seg) {
	case "tv":
		return false, true
	case "radio":
		return true, true
	}
	return false, false
}

func escapeSegment(s string) string {
	return url.PathEscape(s)
}

func unescapeSegment(s string) string {
	u, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return u
}
