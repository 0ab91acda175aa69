package domain

// SetPinned returns a copy of the collection with exactly the target
// listing pinned. An unknown target returns ErrListingNotFound and the
// original collection untouched, so a bad id can never clear the
// current pin as a side effect.
func SetPinned(listings []Listing, targetID string) ([]Listing, error) {
	found := false
	for i := range listings {
		if listings[i].ID == targetID {
			found = true
			break
		}
	}
	if !found {
		return listings, ErrListingNotFound
	}
	out := make([]Listing, len(listings))
	copy(out, listings)
	for i := range out {
		out[i].Pinned = out[i].ID == targetID
	}
	return out, nil
}

// ClearPinned returns a copy of the collection with no listing pinned.
func ClearPinned(listings []Listing) []Listing {
	out := make([]Listing, len(listings))
	copy(out, listings)
	for i := range out {
		out[i].Pinned = false
	}
	return out
}

// PinnedID returns the id of the pinned listing, empty when none is.
func PinnedID(listings []Listing) string {
	for i := range listings {
		if listings[i].Pinned {
			return listings[i].ID
		}
	}
	return ""
}
