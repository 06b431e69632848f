package redisutils

// HashOps covers field/value maps stored under one key.
type HashOps struct {
	ops
}

func NewHashOps(op RedisOperator, opts Options) *HashOps {
	return &HashOps{ops{op: op, opts: opts, name: "HashOps"}}
}

func (h *HashOps) HSet(key, field, value string) bool {
	if key == "" || field == "" {
		return false
	}

	return h.check("HSet", h.op.HSet(key, field, value))
}

func (h *HashOps) HMSet(key string, values map[string]string) bool {
	if key == "" || len(values) == 0 {
		return false
	}

	fields := make(map[string]interface{}, len(values))
	for f, v := range values {
		if f == "" {
			return false
		}

		fields[f] = v
	}

	return h.okOf("HMSet", h.op.HMSet(key, fields))
}

// HSetNX writes the field only when the field itself is absent.
func (h *HashOps) HSetNX(key, field, value string) bool {
	if key == "" || field == "" {
		return false
	}

	return h.opts.Bool(h.replyOf("HSetNX", h.op.HSetNX(key, field, value)))
}

func (h *HashOps) HGet(key, field string) (string, bool) {
	if key == "" || field == "" {
		return "", false
	}

	return h.stringOf("HGet", h.op.HGet(key, field))
}

// HMGet returns one slot per field, in the order given.
func (h *HashOps) HMGet(key string, fields ...string) []NullString {
	if key == "" || len(fields) == 0 || hasEmpty(fields) {
		return nil
	}

	resp := h.op.HMGet(key, fields...)
	if !h.check("HMGet", resp) {
		return nil
	}

	return resp.GetNullStrings()
}

// HGetAll returns nil for an empty key or a failed call, an empty map for a missing hash.
func (h *HashOps) HGetAll(key string) map[string]string {
	if key == "" {
		return nil
	}

	resp := h.op.HGetAll(key)
	if !h.check("HGetAll", resp) {
		return nil
	}

	if m := resp.GetStringMap(); m != nil {
		return m
	}

	return map[string]string{}
}

func (h *HashOps) HExists(key, field string) bool {
	if key == "" || field == "" {
		return false
	}

	return h.opts.Bool(h.replyOf("HExists", h.op.HExists(key, field)))
}

func (h *HashOps) HLen(key string) int64 {
	if key == "" {
		return -1
	}

	return h.int64Or("HLen", h.op.HLen(key), -1)
}

func (h *HashOps) HStrLen(key, field string) int64 {
	if key == "" || field == "" {
		return -1
	}

	return h.int64Or("HStrLen", h.op.HStrLen(key, field), -1)
}

// HIncrBy fails with ErrNotANumber when the field does not hold an integer.
func (h *HashOps) HIncrBy(key, field string, delta int64) (int64, error) {
	if key == "" || field == "" {
		return -1, nil
	}

	resp := h.op.HIncrBy(key, field, delta)
	if err := h.numeric("HIncrBy", resp); err != nil {
		return -1, err
	}

	return resp.GetInt64(), nil
}

func (h *HashOps) HIncrByFloat(key, field string, delta float64) (float64, error) {
	if key == "" || field == "" {
		return -1, nil
	}

	resp := h.op.HIncrByFloat(key, field, delta)
	if err := h.numeric("HIncrByFloat", resp); err != nil {
		return -1, err
	}

	return resp.GetFloat64(), nil
}

func (h *HashOps) HKeys(key string) []string {
	if key == "" {
		return nil
	}

	return h.stringsOf("HKeys", h.op.HKeys(key))
}

func (h *HashOps) HValues(key string) []string {
	if key == "" {
		return nil
	}

	return h.stringsOf("HValues", h.op.HVals(key))
}

// HDel returns how many fields were removed, -1 on failure.
func (h *HashOps) HDel(key string, fields ...string) int64 {
	if key == "" || len(fields) == 0 || hasEmpty(fields) {
		return -1
	}

	return h.int64Or("HDel", h.op.HDel(key, fields...), -1)
}
