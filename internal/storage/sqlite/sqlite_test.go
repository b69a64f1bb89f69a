package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ArtysFactory/proofy/internal/models"
	"github.com/ArtysFactory/proofy/internal/rights"
	"github.com/ArtysFactory/proofy/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "proofy-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()
	user := models.NewUser(email, "Test User", "$2a$10$hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func musicPayload() *rights.Payload {
	l := rights.NewLedger()
	l.AddAuthorshipHolder(rights.Authors, 40)
	l.UpdateHolder(rights.Authors, 0, rights.FieldName, "Ada")
	l.AddNeighboringHolder(rights.Others, 10)
	l.UpdateNeighboringHolder(rights.Others, 0, rights.FieldName, "Rudy")
	l.UpdateNeighboringHolder(rights.Others, 0, rights.FieldRole, "mixing engineer")
	p := l.ToSubmissionPayload()
	return &p
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := createUser(t, store, "Ada@Example.com ")

	t.Run("GetUserByEmail is case-insensitive", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "ada@example.COM")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("ID mismatch: got %s, want %s", got.ID, user.ID)
		}
	})

	t.Run("GetUserByID", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got.Email != "ada@example.com" {
			t.Errorf("Email = %s, want normalized address", got.Email)
		}
	})

	t.Run("missing user is ErrNotFound", func(t *testing.T) {
		if _, err := store.GetUserByID(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
		if _, err := store.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("duplicate email is ErrDuplicate", func(t *testing.T) {
		dup := models.NewUser("ada@example.com", "Other", "hash")
		if err := store.CreateUser(ctx, dup); !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("error = %v, want ErrDuplicate", err)
		}
	})
}

func TestWorks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner@example.com")

	t.Run("CreateWork generates identifiers", func(t *testing.T) {
		work := &models.Work{
			OwnerID:     owner.ID,
			Title:       "Blue in Green",
			ProjectType: "music",
			FileHash:    strings.Repeat("a", 64),
			Rights:      musicPayload(),
		}
		if err := store.CreateWork(ctx, work); err != nil {
			t.Fatalf("CreateWork failed: %v", err)
		}

		if work.ID == "" {
			t.Error("Expected work ID to be generated")
		}
		if !strings.HasPrefix(work.PublicID, models.PublicIDPrefix) || len(work.PublicID) != len(models.PublicIDPrefix)+12 {
			t.Errorf("Unexpected public ID %q", work.PublicID)
		}
		if work.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if work.AnchorStatus != models.AnchorUnanchored {
			t.Errorf("AnchorStatus = %s, want unanchored", work.AnchorStatus)
		}
	})

	t.Run("lookups return the stored rights", func(t *testing.T) {
		original := &models.Work{
			OwnerID:     owner.ID,
			Title:       "So What",
			ProjectType: "music",
			FileHash:    strings.Repeat("b", 64),
			FileName:    "so-what.wav",
			Description: "Take 3",
			Rights:      musicPayload(),
		}
		if err := store.CreateWork(ctx, original); err != nil {
			t.Fatalf("CreateWork failed: %v", err)
		}

		lookups := map[string]func() (*models.Work, error){
			"GetWork":           func() (*models.Work, error) { return store.GetWork(ctx, original.ID) },
			"GetWorkByPublicID": func() (*models.Work, error) { return store.GetWorkByPublicID(ctx, original.PublicID) },
			"GetWorkByFileHash": func() (*models.Work, error) { return store.GetWorkByFileHash(ctx, original.FileHash) },
		}
		wantDigest, _ := original.Rights.Digest()

		for name, lookup := range lookups {
			retrieved, err := lookup()
			if err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}
			if retrieved.ID != original.ID || retrieved.Title != original.Title || retrieved.FileName != original.FileName {
				t.Errorf("%s: got %+v, want %+v", name, retrieved, original)
			}
			if retrieved.Rights == nil {
				t.Fatalf("%s: rights not returned", name)
			}
			if got, _ := retrieved.Rights.Digest(); got != wantDigest {
				t.Errorf("%s: rights digest = %s, want %s", name, got, wantDigest)
			}
			if retrieved.Rights.NeighboringRights.Others[0].Role != "mixing engineer" {
				t.Errorf("%s: role not preserved: %+v", name, retrieved.Rights.NeighboringRights.Others)
			}
		}
	})

	t.Run("work without rights", func(t *testing.T) {
		work := &models.Work{OwnerID: owner.ID, Title: "Sketch", ProjectType: "art", FileHash: strings.Repeat("c", 64)}
		if err := store.CreateWork(ctx, work); err != nil {
			t.Fatalf("CreateWork failed: %v", err)
		}
		got, err := store.GetWork(ctx, work.ID)
		if err != nil {
			t.Fatalf("GetWork failed: %v", err)
		}
		if got.Rights != nil {
			t.Errorf("Rights = %+v, want nil", got.Rights)
		}
	})

	t.Run("duplicate file hash is ErrDuplicate", func(t *testing.T) {
		work := &models.Work{OwnerID: owner.ID, Title: "Copy", ProjectType: "art", FileHash: strings.Repeat("c", 64)}
		if err := store.CreateWork(ctx, work); !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("public id collision is not a duplicate hash", func(t *testing.T) {
		first := &models.Work{OwnerID: owner.ID, Title: "First", ProjectType: "art", FileHash: strings.Repeat("7", 64)}
		if err := store.CreateWork(ctx, first); err != nil {
			t.Fatalf("CreateWork failed: %v", err)
		}
		clash := &models.Work{
			OwnerID:     owner.ID,
			PublicID:    first.PublicID,
			Title:       "Second",
			ProjectType: "art",
			FileHash:    strings.Repeat("8", 64),
		}
		err := store.CreateWork(ctx, clash)
		if err == nil {
			t.Fatal("CreateWork with a taken public id succeeded")
		}
		if errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("error = %v, must not be ErrDuplicate", err)
		}
		if _, err := store.GetWorkByFileHash(ctx, clash.FileHash); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetWorkByFileHash error = %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown work is ErrNotFound", func(t *testing.T) {
		if _, err := store.GetWorkByPublicID(ctx, "PRF-000000000000"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListWorksByOwner is newest first", func(t *testing.T) {
		other := createUser(t, store, "other@example.com")
		for i, ts := range []int64{100, 300, 200} {
			work := &models.Work{
				OwnerID:     other.ID,
				Title:       "Track",
				ProjectType: "music",
				FileHash:    strings.Repeat(string(rune('d'+i)), 64),
				CreatedAt:   ts,
			}
			if err := store.CreateWork(ctx, work); err != nil {
				t.Fatalf("CreateWork failed: %v", err)
			}
		}

		works, err := store.ListWorksByOwner(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListWorksByOwner failed: %v", err)
		}
		if len(works) != 3 {
			t.Fatalf("Expected 3 works, got %d", len(works))
		}
		for i, want := range []int64{300, 200, 100} {
			if works[i].CreatedAt != want {
				t.Errorf("works[%d].CreatedAt = %d, want %d", i, works[i].CreatedAt, want)
			}
		}
	})

	t.Run("UpdateAnchor", func(t *testing.T) {
		work := &models.Work{OwnerID: owner.ID, Title: "Anchored", ProjectType: "art", FileHash: strings.Repeat("9", 64)}
		if err := store.CreateWork(ctx, work); err != nil {
			t.Fatalf("CreateWork failed: %v", err)
		}
		if err := store.UpdateAnchor(ctx, work.ID, models.AnchorAnchored, "0xabc"); err != nil {
			t.Fatalf("UpdateAnchor failed: %v", err)
		}
		got, _ := store.GetWork(ctx, work.ID)
		if got.AnchorStatus != models.AnchorAnchored || got.AnchorTxHash != "0xabc" {
			t.Errorf("anchor = %s/%s, want anchored/0xabc", got.AnchorStatus, got.AnchorTxHash)
		}
		if err := store.UpdateAnchor(ctx, "missing", models.AnchorAnchored, "0x1"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}
