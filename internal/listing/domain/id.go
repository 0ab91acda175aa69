package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewListingID builds an identifier from the creation instant plus a
// random fragment, so two listings created in the same millisecond
// still get distinct ids. The result is opaque and immutable once
// assigned.
func NewListingID() string {
	return fmt.Sprintf("p-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
