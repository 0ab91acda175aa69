package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sohaum/nepalibazar/internal/listing/domain"
	"github.com/sohaum/nepalibazar/internal/platform/logger"
)

// ListingsKey is the store key holding the whole collection as one
// JSON array. It predates this module and must not change.
const ListingsKey = "nb_products_v1"

// CreateInput carries the sell-form fields for a new listing. ID and
// CreatedAt are normally left empty and assigned by the repository;
// seeding supplies both to stay reproducible.
type CreateInput struct {
	ID          string
	Title       string
	Price       int64
	Currency    string
	Category    string
	Location    string
	Seller      string
	Contact     string
	Description string
	Images      []string
	CreatedAt   time.Time
	ExpiryDate  *domain.Date
}

// ListingUsecase owns the persisted collection. Every read and write
// funnels through it; mutations persist before returning, and a failed
// persist keeps serving the in-memory collection until the next
// successful one.
type ListingUsecase struct {
	store    domain.KVStore
	policy   domain.Policy
	notifier domain.Notifier
	logger   *logger.Logger
	now      func() time.Time

	cache []domain.Listing // last known good collection
	dirty bool             // cache holds mutations the store does not
}

func NewListingUsecase(store domain.KVStore, policy domain.Policy, notifier domain.Notifier, log *logger.Logger) *ListingUsecase {
	return &ListingUsecase{
		store:    store,
		policy:   policy,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

// SetNow overrides the time source. Tests use it to pin the current day.
func (uc *ListingUsecase) SetNow(now func() time.Time) {
	uc.now = now
}

// Create validates the minimal shape, assigns id and creation time
// when absent, prepends the listing and persists. An existing id is
// never overwritten.
func (uc *ListingUsecase) Create(ctx context.Context, in CreateInput) (*domain.Listing, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidListingData)
	}

	listings := uc.load(ctx)

	id := in.ID
	if id == "" {
		id = domain.NewListingID()
	} else {
		for i := range listings {
			if listings[i].ID == id {
				uc.logger.Warn("create refused, id already exists", "listing_id", id)
				return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
			}
		}
	}

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = uc.now()
	}

	listing := domain.Listing{
		ID:          id,
		Title:       in.Title,
		Price:       in.Price,
		Currency:    in.Currency,
		Category:    in.Category,
		Location:    in.Location,
		Seller:      in.Seller,
		Contact:     in.Contact,
		Description: in.Description,
		Images:      in.Images,
		CreatedAt:   domain.Timestamp{Time: createdAt},
		ExpiryDate:  in.ExpiryDate,
	}

	uc.logger.Info("creating listing", "listing_id", id, "seller", listing.Seller, "title", listing.Title)
	uc.persist(ctx, append([]domain.Listing{listing}, listings...))
	uc.notify(ctx, domain.Change{Kind: domain.ChangeCreated, ListingID: id, Actor: listing.Seller})
	return &listing, nil
}

// ListVisible returns the collection with the expiry policy applied.
// This is the only read path rendering surfaces should use.
func (uc *ListingUsecase) ListVisible(ctx context.Context) []domain.Listing {
	all := uc.load(ctx)
	now := uc.now()
	visible := make([]domain.Listing, 0, len(all))
	for i := range all {
		if domain.IsVisible(&all[i], now) {
			visible = append(visible, all[i])
		}
	}
	return visible
}

// ListAll returns the raw collection, expired listings included. Admin
// pin bookkeeping needs it so an expired-but-pinned listing can still
// be unpinned.
func (uc *ListingUsecase) ListAll(ctx context.Context) []domain.Listing {
	return append([]domain.Listing(nil), uc.load(ctx)...)
}

// GetByID looks a listing up regardless of visibility.
func (uc *ListingUsecase) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	listings := uc.load(ctx)
	for i := range listings {
		if listings[i].ID == id {
			found := listings[i]
			return &found, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

// Pinned returns the currently pinned listing, nil when none is.
func (uc *ListingUsecase) Pinned(ctx context.Context) *domain.Listing {
	listings := uc.load(ctx)
	for i := range listings {
		if listings[i].Pinned {
			found := listings[i]
			return &found
		}
	}
	return nil
}

// Delete removes a listing after consulting the permission policy.
// Refusals mutate nothing.
func (uc *ListingUsecase) Delete(ctx context.Context, id, actor string, view domain.View) error {
	listings := uc.load(ctx)

	idx := -1
	for i := range listings {
		if listings[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		uc.logger.Warn("delete failed, listing not found", "listing_id", id, "actor", actor)
		return domain.ErrListingNotFound
	}

	if !uc.policy.CanDelete(&listings[idx], actor, view) {
		uc.logger.Warn("delete refused", "listing_id", id, "actor", actor, "view", string(view))
		return fmt.Errorf("%w: only the owner from their profile page may delete this listing", domain.ErrNotAuthorized)
	}

	out := make([]domain.Listing, 0, len(listings)-1)
	out = append(out, listings[:idx]...)
	out = append(out, listings[idx+1:]...)

	uc.logger.Info("deleting listing", "listing_id", id, "actor", actor)
	uc.persist(ctx, out)
	uc.notify(ctx, domain.Change{Kind: domain.ChangeDeleted, ListingID: id, Actor: actor})
	return nil
}

// Pin promotes the target to the single featured slot, clearing any
// previous pin in the same persisted write.
func (uc *ListingUsecase) Pin(ctx context.Context, id, actor string) error {
	if !uc.policy.CanPin(actor) {
		uc.logger.Warn("pin refused", "listing_id", id, "actor", actor)
		return fmt.Errorf("%w: only the administrator may pin listings", domain.ErrNotAuthorized)
	}

	pinned, err := domain.SetPinned(uc.load(ctx), id)
	if err != nil {
		uc.logger.Warn("pin failed, listing not found", "listing_id", id)
		return err
	}

	uc.logger.Info("pinning listing", "listing_id", id, "actor", actor)
	uc.persist(ctx, pinned)
	uc.notify(ctx, domain.Change{Kind: domain.ChangePinned, ListingID: id, Actor: actor})
	return nil
}

// Unpin clears the pin on the target only. Unpinning a listing that is
// not pinned is a no-op that touches neither storage nor other pins.
func (uc *ListingUsecase) Unpin(ctx context.Context, id, actor string) error {
	if !uc.policy.CanPin(actor) {
		uc.logger.Warn("unpin refused", "listing_id", id, "actor", actor)
		return fmt.Errorf("%w: only the administrator may unpin listings", domain.ErrNotAuthorized)
	}

	listings := uc.load(ctx)
	idx := -1
	for i := range listings {
		if listings[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		uc.logger.Warn("unpin failed, listing not found", "listing_id", id)
		return domain.ErrListingNotFound
	}
	if !listings[idx].Pinned {
		return nil
	}

	out := make([]domain.Listing, len(listings))
	copy(out, listings)
	out[idx].Pinned = false

	uc.logger.Info("unpinning listing", "listing_id", id, "actor", actor)
	uc.persist(ctx, out)
	uc.notify(ctx, domain.Change{Kind: domain.ChangeUnpinned, ListingID: id, Actor: actor})
	return nil
}

// load reads the collection from the store, falling back to the last
// known good in-memory copy when the store fails or holds a corrupt
// payload. While unsynced mutations are pending the memory copy wins.
func (uc *ListingUsecase) load(ctx context.Context) []domain.Listing {
	if uc.dirty {
		return uc.cache
	}
	raw, err := uc.store.Get(ctx, ListingsKey)
	if err != nil {
		uc.logger.Error("listing store read failed, serving last known collection", "error", err.Error())
		return uc.cache
	}
	if raw == nil {
		return uc.cache
	}
	var listings []domain.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		uc.logger.Error("listing store payload corrupt, serving last known collection", "error", err.Error())
		return uc.cache
	}
	uc.cache = listings
	return listings
}

// persist makes the new collection current in memory, then writes it
// through. A write failure is logged and absorbed; durability resumes
// with the next successful mutation.
func (uc *ListingUsecase) persist(ctx context.Context, listings []domain.Listing) {
	uc.cache = listings
	raw, err := json.Marshal(listings)
	if err != nil {
		uc.dirty = true
		uc.logger.Error("listing collection marshal failed, keeping collection in memory", "error", err.Error())
		return
	}
	if err := uc.store.Set(ctx, ListingsKey, raw); err != nil {
		uc.dirty = true
		uc.logger.Error("listing store write failed, keeping collection in memory", "error", err.Error())
		return
	}
	uc.dirty = false
}

func (uc *ListingUsecase) notify(ctx context.Context, c domain.Change) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Notify(ctx, c); err != nil {
		uc.logger.Warn("change notification failed", "kind", string(c.Kind), "listing_id", c.ListingID, "error", err.Error())
	}
}
