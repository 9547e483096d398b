package directory

import (
	"fmt"
	"net/url"

	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// clientProviderFilter excludes entities not originating from the client
// (and optionally provider) selected via path query options. The zero
// filter excludes nothing.
type clientProviderFilter struct {
	apply      bool
	clientID   int
	providerID int
}

func newClientProviderFilter(opts url.Values) clientProviderFilter {
	clientID, providerID, ok := pvrpath.ClientProviderFromOptions(opts)
	return clientProviderFilter{apply: ok, clientID: clientID, providerID: providerID}
}

// Query returns the option suffix that reproduces the filter on a derived
// path, so folder entries keep their listing's filter when re-resolved
// later. Empty for the zero filter.
func (f clientProviderFilter) Query() string {
	if !f.apply {
		return ""
	}
	q := fmt.Sprintf("?clientid=%d", f.clientID)
	if f.providerID != pvrpath.InvalidProviderID {
		q += fmt.Sprintf("&providerid=%d", f.providerID)
	}
	return q
}

// Excludes reports whether an entity with the given origin must be omitted.
func (f clientProviderFilter) Excludes(clientID, providerID int) bool {
	if !f.apply {
		return false
	}
	if clientID != f.clientID {
		return true
	}
	if f.providerID != pvrpath.InvalidProviderID && providerID != f.providerID {
		return true
	}
	return false
}
