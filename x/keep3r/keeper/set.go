package keeper

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
)

var (
	setIndexPrefix  = []byte{0x00}
	setMemberPrefix = []byte{0x01}
	setLengthKey    = []byte{0x02}
)

// enumerableSet is a KV-backed set with O(1) membership checks and stable enumeration.
// Members are addressed by a 1-based index; removal moves the last member into the freed
// slot.
type enumerableSet struct {
	store storetypes.KVStore
}

func (k Keeper) set(ctx context.Context, p []byte) enumerableSet {
	return enumerableSet{store: prefix.NewStore(k.getStore(ctx), p)}
}

func indexBytes(i uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, i)
	return bz
}

func (s enumerableSet) indexKey(member []byte) []byte {
	return append(append([]byte{}, setIndexPrefix...), member...)
}

func (s enumerableSet) memberKey(i uint64) []byte {
	return append(append([]byte{}, setMemberPrefix...), indexBytes(i)...)
}

// Len returns the number of members.
func (s enumerableSet) Len() uint64 {
	bz := s.store.Get(setLengthKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (s enumerableSet) setLen(n uint64) {
	if n == 0 {
		s.store.Delete(setLengthKey)
		return
	}
	s.store.Set(setLengthKey, indexBytes(n))
}

// Contains reports membership.
func (s enumerableSet) Contains(member []byte) bool {
	return s.store.Has(s.indexKey(member))
}

// Add appends member and reports whether it was absent.
func (s enumerableSet) Add(member []byte) bool {
	if s.Contains(member) {
		return false
	}
	n := s.Len() + 1
	s.store.Set(s.indexKey(member), indexBytes(n))
	s.store.Set(s.memberKey(n), member)
	s.setLen(n)
	return true
}

// Remove deletes member and reports whether it was present.
func (s enumerableSet) Remove(member []byte) bool {
	bz := s.store.Get(s.indexKey(member))
	if bz == nil {
		return false
	}
	idx := binary.BigEndian.Uint64(bz)
	last := s.Len()

	if idx != last {
		moved := s.store.Get(s.memberKey(last))
		s.store.Set(s.memberKey(idx), moved)
		s.store.Set(s.indexKey(moved), indexBytes(idx))
	}
	s.store.Delete(s.memberKey(last))
	s.store.Delete(s.indexKey(member))
	s.setLen(last - 1)
	return true
}

// At returns the member at the 0-based position i.
func (s enumerableSet) At(i uint64) []byte {
	return s.store.Get(s.memberKey(i + 1))
}

// Values returns all members in set order.
func (s enumerableSet) Values() [][]byte {
	n := s.Len()
	values := make([][]byte, 0, n)
	for i := uint64(1); i <= n; i++ {
		values = append(values, s.store.Get(s.memberKey(i)))
	}
	return values
}
