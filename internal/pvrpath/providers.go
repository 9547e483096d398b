package pvrpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Well-known providers paths.
const (
	PathTVProviders    = Scheme + "providers/tv/"
	PathRadioProviders = Scheme + "providers/radio/"
)

// Sub-collections below one provider.
const (
	ProvidersSubChannels   = "channels"
	ProvidersSubRecordings = "recordings"
)

// ProvidersPath is the typed decomposition of a pvr://providers/... path.
// The zero value is invalid.
type ProvidersPath struct {
	valid       bool
	radio       bool
	hasProvider bool
	clientID    int
	providerID  int
	sub         string // "", ProvidersSubChannels or ProvidersSubRecordings
}

// NewProvidersPath builds the path of one provider. providerID may be
// InvalidProviderID to address all providers of a client.
func NewProvidersPath(radio bool, clientID, providerID int) ProvidersPath {
	return ProvidersPath{valid: true, radio: radio, hasProvider: true,
		clientID: clientID, providerID: providerID}
}

// ParseProvidersPath parses a providers namespace path, options stripped.
func ParseProvidersPath(base string) ProvidersPath {
	segs, ok := Segments(base)
	if !ok || len(segs) < 2 || len(segs) > 4 || !strings.EqualFold(segs[0], "providers") {
		return ProvidersPath{}
	}
	radio, ok := parseKind(segs[1])
	if !ok {
		return ProvidersPath{}
	}
	p := ProvidersPath{valid: true, radio: radio,
		clientID: InvalidClientID, providerID: InvalidProviderID}
	if len(segs) == 2 {
		return p
	}

	clientID, providerID, ok := splitProviderSegment(segs[2])
	if !ok {
		return ProvidersPath{}
	}
	p.hasProvider = true
	p.clientID = clientID
	p.providerID = providerID
	if len(segs) == 3 {
		return p
	}

	switch strings.ToLower(segs[3]) {
	case ProvidersSubChannels:
		p.sub = ProvidersSubChannels
	case ProvidersSubRecordings:
		p.sub = ProvidersSubRecordings
	default:
		return ProvidersPath{}
	}
	return p
}

// splitProviderSegment splits "<clientid>-<providerid>". The provider part
// may be "all", addressing every provider of the client.
func splitProviderSegment(seg string) (clientID, providerID int, ok bool) {
	i := strings.IndexByte(seg, '-')
	if i <= 0 {
		return 0, 0, false
	}
	clientID, err := strconv.Atoi(seg[:i])
	if err != nil {
		return 0, 0, false
	}
	rest := seg[i+1:]
	if strings.EqualFold(rest, "all") {
		return clientID, InvalidProviderID, true
	}
	providerID, err = strconv.Atoi(rest)
	if err != nil {
		return 0, 0, false
	}
	return clientID, providerID, true
}

func (p ProvidersPath) IsValid() bool { return p.valid }
func (p ProvidersPath) IsRadio() bool { return p.radio }

// IsProvidersRoot reports the provider listing root of one kind.
func (p ProvidersPath) IsProvidersRoot() bool { return p.valid && !p.hasProvider }

// IsProvider reports the sub-menu of one provider.
func (p ProvidersPath) IsProvider() bool { return p.valid && p.hasProvider && p.sub == "" }

// IsChannels reports the channel listing of one provider.
func (p ProvidersPath) IsChannels() bool { return p.valid && p.sub == ProvidersSubChannels }

// IsRecordings reports the recording listing of one provider.
func (p ProvidersPath) IsRecordings() bool { return p.valid && p.sub == ProvidersSubRecordings }

func (p ProvidersPath) ClientID() int   { return p.clientID }
func (p ProvidersPath) ProviderID() int { return p.providerID }

// WithSub returns a copy of the path descended into the given
// sub-collection (ProvidersSubChannels or ProvidersSubRecordings).
func (p ProvidersPath) WithSub(sub string) ProvidersPath {
	child := p
	child.sub = sub
	return child
}

// String serializes the path canonically.
func (p ProvidersPath) String() string {
	if !p.valid {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%sproviders/%s/", Scheme, kindSegment(p.radio))
	if p.hasProvider {
		if p.providerID == InvalidProviderID {
			fmt.Fprintf(&b, "%d-all/", p.clientID)
		} else {
			fmt.Fprintf(&b, "%d-%d/", p.clientID, p.providerID)
		}
		if p.sub != "" {
			b.WriteString(p.sub)
			b.WriteByte('/')
		}
	}
	return b.String()
}
