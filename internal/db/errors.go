package db

import "errors"

// Sentinel errors for storage operations.
var (
	ErrKeyNotFound = errors.New("db: key not found")
	ErrKeyExists   = errors.New("db: key already exists")
)

// Op constants name the failing storage operation for error context.
const (
	OpRead   = "READ"
	OpWrite  = "WRITE"
	OpRename = "RENAME"
	OpPing   = "PING"
	OpHSetNX = "HSETNX"
	OpHGet   = "HGET"
	OpHDel   = "HDEL"
	OpHMGet  = "HMGET"
	OpRPush  = "RPUSH"
	OpLRem   = "LREM"
	OpLRange = "LRANGE"
)

// Error wraps an underlying storage failure with the operation name for
// diagnostics. Transport maps it to a storage error, never an empty result.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
