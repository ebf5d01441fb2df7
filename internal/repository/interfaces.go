package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("not found")

// Blob keys. Each persisted collection lives under one fixed key.
const (
	KeyProjects       = "projects"
	KeySchedule       = "schedule"
	KeyCategoryConfig = "category_config"
	KeyAppSettings    = "app_settings"
	KeyHistory        = "history"
)

// AllKeys lists every key the planner persists, in save order.
var AllKeys = []string{KeyProjects, KeySchedule, KeyCategoryConfig, KeyAppSettings, KeyHistory}

// Blob is one stored value with its last write time.
type Blob struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

type BlobRepo interface {
	Get(ctx context.Context, key string) (*Blob, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]Blob, error)
}
