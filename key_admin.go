package redisutils

import (
	"fmt"
)

// KeyAdmin covers key-level metadata: lifetime, existence, type, rename and removal.
type KeyAdmin struct {
	ops
}

func NewKeyAdmin(op RedisOperator, opts Options) *KeyAdmin {
	return &KeyAdmin{ops{op: op, opts: opts, name: "KeyAdmin"}}
}

// ExpireResult carries why an expiry was not applied.
type ExpireResult struct {
	Applied bool
	Err     error
}

// TryExpire applies a TTL in seconds. Non-positive timeouts and empty keys
// are rejected locally with ErrInvalidArgument. A key the store does not hold
// comes back as not applied with RedisNotFound.
func (k *KeyAdmin) TryExpire(key string, seconds int64) ExpireResult {
	if key == "" || seconds <= 0 {
		return ExpireResult{Err: fmt.Errorf("expire %q %d: %w", key, seconds, ErrInvalidArgument)}
	}

	resp := k.op.Expire(key, seconds)
	if !k.check("Expire", resp) {
		return ExpireResult{Err: resp.Error}
	}

	if resp.GetReply() != ReplyTrue {
		return ExpireResult{Err: RedisNotFound}
	}

	return ExpireResult{Applied: true}
}

// Expire is TryExpire without the cause.
func (k *KeyAdmin) Expire(key string, seconds int64) bool {
	return k.TryExpire(key, seconds).Applied
}

// TTL returns the remaining seconds, -1 for a key without expiry and -2 for
// an empty key, a missing key or a failed call.
func (k *KeyAdmin) TTL(key string) int64 {
	if key == "" {
		return -2
	}

	return k.int64Or("TTL", k.op.TTL(key), -2)
}

// PTTL is TTL in milliseconds.
func (k *KeyAdmin) PTTL(key string) int64 {
	if key == "" {
		return -2
	}

	return k.int64Or("PTTL", k.op.PTTL(key), -2)
}

func (k *KeyAdmin) Exists(key string) bool {
	if key == "" {
		return false
	}

	return k.opts.Bool(k.replyOf("Exists", k.op.Exists(key)))
}

// Type returns "" for an empty key or a failed call.
func (k *KeyAdmin) Type(key string) DataType {
	if key == "" {
		return ""
	}

	if t, ok := k.stringOf("Type", k.op.Type(key)); ok {
		return DataType(t)
	}

	return ""
}

// AllKeys hands the glob pattern to the store unchanged.
func (k *KeyAdmin) AllKeys(pattern string) []string {
	return k.stringsOf("AllKeys", k.op.Keys(pattern))
}

func (k *KeyAdmin) Move(key string, db int) bool {
	if key == "" || db < 0 {
		return false
	}

	return k.opts.Bool(k.replyOf("Move", k.op.Move(key, db)))
}

func (k *KeyAdmin) Persist(key string) bool {
	if key == "" {
		return false
	}

	return k.okOf("Persist", k.op.Persist(key))
}

func (k *KeyAdmin) Rename(oldKey, newKey string) bool {
	if oldKey == "" || newKey == "" {
		return false
	}

	return k.okOf("Rename", k.op.Rename(oldKey, newKey))
}

// RenameNX renames only when newKey does not exist yet.
func (k *KeyAdmin) RenameNX(oldKey, newKey string) bool {
	if oldKey == "" || newKey == "" {
		return false
	}

	return k.okOf("RenameNX", k.op.RenameNX(oldKey, newKey))
}

// Delete removes one key and returns how many keys went away (0 or 1).
func (k *KeyAdmin) Delete(key string) int64 {
	if key == "" {
		return 0
	}

	return k.int64Or("Delete", k.op.Delete(key), 0)
}

// DeleteMany deletes the keys one command at a time; it is not atomic.
func (k *KeyAdmin) DeleteMany(keys ...string) int64 {
	var deleted int64
	for _, key := range keys {
		deleted += k.Delete(key)
	}

	return deleted
}
