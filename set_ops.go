package redisutils

// SetOps covers unordered sets and the algebra across them.
type SetOps struct {
	ops
}

func NewSetOps(op RedisOperator, opts Options) *SetOps {
	return &SetOps{ops{op: op, opts: opts, name: "SetOps"}}
}

// SAdd returns how many members were new, -1 on failure.
func (s *SetOps) SAdd(key string, members ...string) int64 {
	if key == "" || len(members) == 0 || hasEmpty(members) {
		return -1
	}

	return s.int64Or("SAdd", s.op.SAdd(key, toArgs(members)...), -1)
}

func (s *SetOps) SMembers(key string) []string {
	if key == "" {
		return nil
	}

	return s.stringsOf("SMembers", s.op.SMembers(key))
}

func (s *SetOps) SIsMember(key, member string) bool {
	if key == "" || member == "" {
		return false
	}

	return s.opts.Bool(s.replyOf("SIsMember", s.op.SIsMember(key, member)))
}

func (s *SetOps) SCard(key string) int64 {
	if key == "" {
		return -1
	}

	return s.int64Or("SCard", s.op.SCard(key), -1)
}

// SRem returns how many members were removed, -1 on failure.
func (s *SetOps) SRem(key string, members ...string) int64 {
	if key == "" || len(members) == 0 || hasEmpty(members) {
		return -1
	}

	return s.int64Or("SRem", s.op.SRem(key, toArgs(members)...), -1)
}

func (s *SetOps) SRandMember(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	return s.stringOf("SRandMember", s.op.SRandMember(key))
}

// SRandMembers samples count distinct members without removing them.
func (s *SetOps) SRandMembers(key string, count int64) []string {
	if key == "" || count <= 0 {
		return nil
	}

	return s.stringsOf("SRandMembers", s.op.SRandMemberN(key, count))
}

// SPop removes and returns up to count random members.
func (s *SetOps) SPop(key string, count int64) []string {
	if key == "" || count <= 0 {
		return nil
	}

	return s.stringsOf("SPop", s.op.SPopN(key, count))
}

// SMove moves member from src to dest.
func (s *SetOps) SMove(src, dest, member string) bool {
	if src == "" || dest == "" || member == "" {
		return false
	}

	return s.opts.Bool(s.replyOf("SMove", s.op.SMove(src, dest, member)))
}

func (s *SetOps) SDiff(k1, k2 string) []string {
	if k1 == "" || k2 == "" {
		return nil
	}

	return s.stringsOf("SDiff", s.op.SDiff(k1, k2))
}

// SDiffMany returns the members of keys[0] found in none of the other keys.
func (s *SetOps) SDiffMany(keys ...string) []string {
	if len(keys) == 0 || hasEmpty(keys) {
		return nil
	}

	return s.stringsOf("SDiffMany", s.op.SDiff(keys...))
}

func (s *SetOps) SInter(k1, k2 string) []string {
	if k1 == "" || k2 == "" {
		return nil
	}

	return s.stringsOf("SInter", s.op.SInter(k1, k2))
}

// SInterMany intersects every key. With Options.LegacySetAlgebra the result is
// computed by the store and then dropped.
func (s *SetOps) SInterMany(keys ...string) []string {
	if len(keys) == 0 || hasEmpty(keys) {
		return nil
	}

	members := s.stringsOf("SInterMany", s.op.SInter(keys...))
	if s.opts.LegacySetAlgebra {
		return nil
	}

	return members
}

func (s *SetOps) SUnion(k1, k2 string) []string {
	if k1 == "" || k2 == "" {
		return nil
	}

	return s.stringsOf("SUnion", s.op.SUnion(k1, k2))
}

// SUnionMany unions every key; see SInterMany for the legacy behaviour.
func (s *SetOps) SUnionMany(keys ...string) []string {
	if len(keys) == 0 || hasEmpty(keys) {
		return nil
	}

	members := s.stringsOf("SUnionMany", s.op.SUnion(keys...))
	if s.opts.LegacySetAlgebra {
		return nil
	}

	return members
}
