package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"
)

// PreferenceRepository keeps the single "remember me" e-mail of the login
// screen. An unset value reads as "".
type PreferenceRepository interface {
	RememberedEmail(ctx context.Context) (string, error)
	SetRememberedEmail(ctx context.Context, email string) error
	ClearRememberedEmail(ctx context.Context) error
}

// ── File ─────────────────────────────────────────────────────────────────────

type preferences struct {
	RememberedEmail string `json:"rememberedEmail,omitempty"`
}

type filePreferenceRepo struct {
	mu   sync.Mutex
	path string
}

// NewFilePreferenceRepository stores preferences as JSON in path. The file
// and its directory are created on first write.
func NewFilePreferenceRepository(path string) PreferenceRepository {
	return &filePreferenceRepo{path: path}
}

func (r *filePreferenceRepo) RememberedEmail(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := r.read()
	return p.RememberedEmail, err
}

func (r *filePreferenceRepo) SetRememberedEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := r.read()
	if err != nil {
		return err
	}
	p.RememberedEmail = email
	return r.write(p)
}

func (r *filePreferenceRepo) ClearRememberedEmail(ctx context.Context) error {
	return r.SetRememberedEmail(ctx, "")
}

func (r *filePreferenceRepo) read() (preferences, error) {
	var p preferences
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("preferences: read %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("preferences: decode %s: %w", r.path, err)
	}
	return p, nil
}

// write replaces the file through a rename so readers never see half a file.
func (r *filePreferenceRepo) write(p preferences) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("preferences: mkdir: %w", err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("preferences: write: %w", err)
	}
	return os.Rename(tmp, r.path)
}

// ── Redis ────────────────────────────────────────────────────────────────────

// RememberedEmailKey is the Redis key holding the remembered e-mail.
const RememberedEmailKey = "exploraneiva:remembered_email"

type redisPreferenceRepo struct{ rdb redis.Cmdable }

func NewRedisPreferenceRepository(rdb redis.Cmdable) PreferenceRepository {
	return &redisPreferenceRepo{rdb: rdb}
}

func (r *redisPreferenceRepo) RememberedEmail(ctx context.Context) (string, error) {
	email, err := r.rdb.Get(ctx, RememberedEmailKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return email, err
}

func (r *redisPreferenceRepo) SetRememberedEmail(ctx context.Context, email string) error {
	if email == "" {
		return r.ClearRememberedEmail(ctx)
	}
	return r.rdb.Set(ctx, RememberedEmailKey, email, 0).Err()
}

func (r *redisPreferenceRepo) ClearRememberedEmail(ctx context.Context) error {
	return r.rdb.Del(ctx, RememberedEmailKey).Err()
}
