package domain

import "context"

// KVStore is the durable key-value medium behind the repository. One
// key holds the whole JSON-serialized collection; a second one the
// session token. Get returns (nil, nil) for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type ChangeKind string

const (
	ChangeCreated  ChangeKind = "created"
	ChangeDeleted  ChangeKind = "deleted"
	ChangePinned   ChangeKind = "pinned"
	ChangeUnpinned ChangeKind = "unpinned"
)

// Change describes a completed mutation of the collection.
type Change struct {
	Kind      ChangeKind `json:"kind"`
	ListingID string     `json:"listing_id"`
	Actor     string     `json:"actor,omitempty"`
}

// Notifier tells rendering surfaces and external consumers that the
// collection changed. Delivery failures must not fail the mutation
// that triggered them.
type Notifier interface {
	Notify(ctx context.Context, c Change) error
}

// ImageStorage turns raw image bytes into a URL before a listing is
// created. Listings are immutable after creation, so uploads always
// happen first.
type ImageStorage interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}
