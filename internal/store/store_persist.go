package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// SnapshotVersion is bumped when the persisted layout changes shape.
const SnapshotVersion = 1

// DefaultKey is the namespace slot the storefront persists under.
const DefaultKey = "amby-luxe-store"

// Snapshot is the persisted state layout. It round-trips: decoding an
// encoded snapshot yields element-wise equal collections in the same order.
type Snapshot struct {
	Version  int            `json:"version"`
	Cart     []CartItem     `json:"cart"`
	Wishlist []WishlistItem `json:"wishlist"`
}

// ErrNoSnapshot reports that no state has ever been persisted. The Store
// treats it as the empty default rather than a failure.
var ErrNoSnapshot = errors.New("store: no snapshot")

//go:generate mockgen -source=store_persist.go -destination=../mock/store/persister_mock.go -package=mock

// Persister saves and loads store snapshots. Implementations must return
// ErrNoSnapshot from Load when the slot is empty.
type Persister interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}

func decodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("store: decode snapshot: %w", err)
	}
	if snap.Version > SnapshotVersion {
		return Snapshot{}, fmt.Errorf("store: snapshot version %d not supported", snap.Version)
	}
	return snap, nil
}

// ========================
// file persister
// ========================

// FilePersister keeps the snapshot in a single JSON file on local disk.
type FilePersister struct {
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (f *FilePersister) Load(_ context.Context) (Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, err
	}
	return decodeSnapshot(data)
}

// Save writes to a sibling temp file and renames it over the slot so a crash
// mid-write never leaves a torn snapshot.
func (f *FilePersister) Save(_ context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// ========================
// redis persister
// ========================

// RedisPersister keeps the snapshot under a single redis key.
type RedisPersister struct {
	rdb *redis.Client
	key string
}

func NewRedisPersister(rdb *redis.Client, key string) *RedisPersister {
	if key == "" {
		key = DefaultKey
	}
	return &RedisPersister{rdb: rdb, key: key}
}

func (r *RedisPersister) Load(ctx context.Context) (Snapshot, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, err
	}
	return decodeSnapshot(data)
}

func (r *RedisPersister) Save(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key, data, 0).Err()
}
