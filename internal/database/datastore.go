package database

import (
	"context"
	"errors"
)

// Backend is the key-value persistence medium behind the task store.
// Values are whole serialized collections; Set overwrites, Get of a
// missing key reports found=false rather than an error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ErrClosed is returned by backends used after Close
var ErrClosed = errors.New("backend is closed")

// Compile-time verification that every backend implements Backend
var (
	_ Backend = (*MemoryBackend)(nil)
	_ Backend = (*SQLiteBackend)(nil)
	_ Backend = (*RedisBackend)(nil)
	_ Backend = (*MongoBackend)(nil)
	_ Backend = (*PostgresBackend)(nil)
)
