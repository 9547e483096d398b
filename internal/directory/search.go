package directory

import (
	"context"
	"fmt"

	"github.com/openpvr/pvrfs/internal/pvrpath"
)

// savedSearchesDirectory lists the saved search definitions of one kind.
func (d *Directory) savedSearchesDirectory(radio bool, results *Listing) {
	for _, search := range d.deps.Guide.SavedSearches(radio) {
		results.Add(&Entry{
			Path:     pvrpath.NewSavedSearchPath(radio, search.ID()).String(),
			Label:    search.Title(),
			IsFolder: true,
			Search:   search,
		})
	}
}

// savedSearchResults re-runs the addressed saved search live against the
// guide data. Results are never cached.
func (d *Directory) savedSearchResults(ctx context.Context, radio bool, id int, results *Listing) error {
	search, ok := d.deps.Guide.SavedSearchByID(radio, id)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrSearchNotFound, id)
	}

	entries, err := d.deps.Guide.Search(ctx, search)
	if err != nil {
		return fmt.Errorf("execute saved search %d: %w", id, err)
	}
	for _, tag := range entries {
		results.Add(&Entry{
			Path:     tag.Path(),
			Label:    tag.Title(),
			DateTime: tag.Start(),
			Guide:    tag,
		})
	}
	return nil
}
