package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohaum/nepalibazar/internal/listing/domain"
	"github.com/sohaum/nepalibazar/internal/listing/notify"
	"github.com/sohaum/nepalibazar/internal/platform/logger"
)

type memStore struct {
	data   map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (s *memStore) Set(ctx context.Context, key string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	s.sets++
	return nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

const admin = "sohaum"

func newTestUsecase(store domain.KVStore, notifier domain.Notifier) *ListingUsecase {
	return NewListingUsecase(store, domain.Policy{Admin: admin}, notifier, logger.NewNop())
}

func TestCreate_AssignsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newTestUsecase(store, nil)
	fixed := time.Date(2025, time.September, 20, 10, 0, 0, 0, time.UTC)
	uc.SetNow(func() time.Time { return fixed })

	created, err := uc.Create(ctx, CreateInput{Title: "Old Guitar", Price: 5000, Seller: "ramesh", Contact: "9800000009"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, fixed, created.CreatedAt.Time)

	visible := uc.ListVisible(ctx)
	require.Len(t, visible, 1)
	assert.Equal(t, created.ID, visible[0].ID)
	assert.Equal(t, 1, store.sets, "every successful mutation persists exactly once")
}

func TestCreate_FreeListingKeepsPriceSemantics(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMemStore(), nil)

	_, err := uc.Create(ctx, CreateInput{Title: "Free Sofa", Price: 0, Seller: "anita", Contact: "9800000004"})
	require.NoError(t, err)

	visible := uc.ListVisible(ctx)
	require.Len(t, visible, 1)
	assert.Equal(t, int64(0), visible[0].Price)
	assert.Equal(t, "FREE", visible[0].PriceLabel("Rs."), "price 0 renders FREE, never blank or suppressed")
}

func TestCreate_RejectsEmptyTitle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newTestUsecase(store, nil)

	_, err := uc.Create(ctx, CreateInput{Title: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidListingData)
	assert.Equal(t, 0, store.sets, "failures must not touch storage")
}

func TestCreate_NeverOverwritesExistingID(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newTestUsecase(store, nil)

	_, err := uc.Create(ctx, CreateInput{ID: "p1", Title: "first"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, CreateInput{ID: "p1", Title: "second"})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	all := uc.ListAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "first", all[0].Title)
}

func TestCreate_KeepsSuppliedCreatedAt(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMemStore(), nil)
	supplied := time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC)

	created, err := uc.Create(ctx, CreateInput{ID: "p004", Title: "Study Table", CreatedAt: supplied})
	require.NoError(t, err)
	assert.Equal(t, supplied, created.CreatedAt.Time)
}

func TestListVisible_AppliesExpiryPolicy(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMemStore(), nil)
	today := time.Date(2025, time.September, 20, 12, 0, 0, 0, time.UTC)
	uc.SetNow(func() time.Time { return today })

	expired := domain.DateOf(today.AddDate(0, 0, -1))
	expiresToday := domain.DateOf(today)
	_, err := uc.Create(ctx, CreateInput{ID: "expired", Title: "gone", ExpiryDate: &expired})
	require.NoError(t, err)
	_, err = uc.Create(ctx, CreateInput{ID: "today", Title: "still here", ExpiryDate: &expiresToday})
	require.NoError(t, err)
	_, err = uc.Create(ctx, CreateInput{ID: "forever", Title: "never expires"})
	require.NoError(t, err)

	visible := uc.ListVisible(ctx)
	ids := make([]string, 0, len(visible))
	for _, l := range visible {
		ids = append(ids, l.ID)
	}
	assert.ElementsMatch(t, []string{"today", "forever"}, ids)
	assert.Len(t, uc.ListAll(ctx), 3, "expired listings stay in storage until explicitly deleted")

	// The next day the boundary listing disappears too.
	uc.SetNow(func() time.Time { return today.AddDate(0, 0, 1) })
	visible = uc.ListVisible(ctx)
	require.Len(t, visible, 1)
	assert.Equal(t, "forever", visible[0].ID)
}

func seedDeleteFixture(t *testing.T, uc *ListingUsecase) {
	t.Helper()
	_, err := uc.Create(context.Background(), CreateInput{ID: "p1", Title: "bike", Seller: "ramesh"})
	require.NoError(t, err)
}

func TestDelete_AdminFromAnyView(t *testing.T) {
	ctx := context.Background()
	for _, view := range []domain.View{domain.ViewHome, domain.ViewBrowse, domain.ViewProfile} {
		uc := newTestUsecase(newMemStore(), nil)
		seedDeleteFixture(t, uc)

		require.NoError(t, uc.Delete(ctx, "p1", admin, view), "admin deletes from %s", view)
		assert.Empty(t, uc.ListAll(ctx))
	}
}

func TestDelete_OwnerOnlyFromProfile(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMemStore(), nil)
	seedDeleteFixture(t, uc)

	err := uc.Delete(ctx, "p1", "ramesh", domain.ViewHome)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.Len(t, uc.ListAll(ctx), 1, "refused delete must not mutate the collection")

	require.NoError(t, uc.Delete(ctx, "p1", "ramesh", domain.ViewProfile))
	assert.Empty(t, uc.ListAll(ctx))
}

func TestDelete_StrangerAndAnonymousDenied(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMemStore(), nil)
	seedDeleteFixture(t, uc)

	assert.ErrorIs(t, uc.Delete(ctx, "p1", "anita", domain.ViewProfile), domain.ErrNotAuthorized)
	assert.ErrorIs(t, uc.Delete(ctx, "p1", "", domain.ViewProfile), domain.ErrNotAuthorized)
	assert.Len(t, uc.ListAll(ctx), 1)
}

func TestDelete_NotFound(t *testing.T) {
	uc := newTestUsecase(newMemStore(), nil)
	assert.ErrorIs(t, uc.Delete(context.Background(), "nope", admin, domain.ViewHome), domain.ErrListingNotFound)
}

func TestDelete_PinnedListingClearsPin(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMemStore(), nil)
	seedDeleteFixture(t, uc)

	require.NoError(t, uc.Pin(ctx, "p1", admin))
	require.NotNil(t, uc.Pinned(ctx))

	require.NoError(t, uc.Delete(ctx, "p1", admin, domain.ViewHome))
	assert.Nil(t, uc.Pinned(ctx))
}

func TestPin_SingleFeaturedSlot(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMemStore(), nil)
	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := uc.Create(ctx, CreateInput{ID: id, Title: id})
		require.NoError(t, err)
	}

	for _, id := range []string{"p1", "p3", "p2", "p2"} {
		require.NoError(t, uc.Pin(ctx, id, admin))
		assert.Equal(t, id, domain.PinnedID(uc.ListAll(ctx)))

		pinned := 0
		for _, l := range uc.ListAll(ctx) {
			if l.Pinned {
				pinned++
			}
		}
		assert.Equal(t, 1, pinned, "at most one pinned listing after each operation")
	}
}

func TestPin_UnknownTargetKeepsCurrentPin(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMemStore(), nil)
	_, err := uc.Create(ctx, CreateInput{ID: "p1", Title: "one"})
	require.NoError(t, err)
	require.NoError(t, uc.Pin(ctx, "p1", admin))

	assert.ErrorIs(t, uc.Pin(ctx, "ghost", admin), domain.ErrListingNotFound)
	assert.Equal(t, "p1", domain.PinnedID(uc.ListAll(ctx)))
}

func TestPin_NonAdminDenied(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMemStore(), nil)
	_, err := uc.Create(ctx, CreateInput{ID: "p1", Title: "one", Seller: "ramesh"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Pin(ctx, "p1", "ramesh"), domain.ErrNotAuthorized)
	assert.ErrorIs(t, uc.Unpin(ctx, "p1", "ramesh"), domain.ErrNotAuthorized)
}

func TestUnpin_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newTestUsecase(store, nil)
	_, err := uc.Create(ctx, CreateInput{ID: "p1", Title: "one"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, CreateInput{ID: "p2", Title: "two"})
	require.NoError(t, err)
	require.NoError(t, uc.Pin(ctx, "p2", admin))

	writes := store.sets
	require.NoError(t, uc.Unpin(ctx, "p1", admin), "unpinning an unpinned listing succeeds")
	assert.Equal(t, "p2", domain.PinnedID(uc.ListAll(ctx)), "the other listing's pin stays")
	assert.Equal(t, writes, store.sets, "a no-op unpin does not touch storage")

	require.NoError(t, uc.Unpin(ctx, "p2", admin))
	assert.Empty(t, domain.PinnedID(uc.ListAll(ctx)))
}

func TestPersistFailure_ServesFromMemoryUntilRecovery(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newTestUsecase(store, nil)

	_, err := uc.Create(ctx, CreateInput{ID: "p1", Title: "durable"})
	require.NoError(t, err)

	store.setErr = assert.AnError
	_, err = uc.Create(ctx, CreateInput{ID: "p2", Title: "memory only"})
	require.NoError(t, err, "a failed persist is absorbed, not escalated")
	assert.Len(t, uc.ListVisible(ctx), 2, "reads keep seeing the mutation")

	// Durability resumes with the next successful mutation.
	store.setErr = nil
	_, err = uc.Create(ctx, CreateInput{ID: "p3", Title: "durable again"})
	require.NoError(t, err)

	fresh := newTestUsecase(store, nil)
	assert.Len(t, fresh.ListAll(ctx), 3)
}

func TestReadFailure_ServesLastKnownGood(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newTestUsecase(store, nil)

	_, err := uc.Create(ctx, CreateInput{ID: "p1", Title: "cached"})
	require.NoError(t, err)

	store.getErr = assert.AnError
	visible := uc.ListVisible(ctx)
	require.Len(t, visible, 1)
	assert.Equal(t, "p1", visible[0].ID)
}

func TestCorruptPayload_FallsBackWithoutPanic(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.data[ListingsKey] = []byte("{not json")

	uc := newTestUsecase(store, nil)
	assert.Empty(t, uc.ListVisible(ctx))
}

func TestMutations_NotifyListeners(t *testing.T) {
	ctx := context.Background()
	var kinds []domain.ChangeKind
	fanout := notify.NewMulti(func(ctx context.Context, c domain.Change) {
		kinds = append(kinds, c.Kind)
	})
	uc := newTestUsecase(newMemStore(), fanout)

	_, err := uc.Create(ctx, CreateInput{ID: "p1", Title: "one", Seller: "ramesh"})
	require.NoError(t, err)
	require.NoError(t, uc.Pin(ctx, "p1", admin))
	require.NoError(t, uc.Unpin(ctx, "p1", admin))
	require.NoError(t, uc.Delete(ctx, "p1", admin, domain.ViewHome))

	assert.Equal(t, []domain.ChangeKind{
		domain.ChangeCreated,
		domain.ChangePinned,
		domain.ChangeUnpinned,
		domain.ChangeDeleted,
	}, kinds)
}
