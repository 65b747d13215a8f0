package keeper

import (
	"fmt"
	"sort"
	"testing"

	"cosmossdk.io/store/dbadapter"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestSet() enumerableSet {
	return enumerableSet{store: &dbadapter.Store{DB: dbm.NewMemDB()}}
}

func TestEnumerableSetSwapRemove(t *testing.T) {
	s := newTestSet()
	for _, m := range []string{"a", "b", "c", "d"} {
		require.True(t, s.Add([]byte(m)))
	}
	require.False(t, s.Add([]byte("b")))
	require.Equal(t, uint64(4), s.Len())

	require.True(t, s.Remove([]byte("b")))
	require.False(t, s.Remove([]byte("b")))
	require.Equal(t, [][]byte{[]byte("a"), []byte("d"), []byte("c")}, s.Values())
	require.Equal(t, []byte("d"), s.At(1))

	require.True(t, s.Remove([]byte("c")))
	require.True(t, s.Remove([]byte("a")))
	require.True(t, s.Remove([]byte("d")))
	require.Zero(t, s.Len())
	require.Empty(t, s.Values())
}

func TestEnumerableSetMatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newTestSet()
		model := make(map[string]bool)

		ops := rapid.SliceOfN(rapid.IntRange(0, 15), 1, 60).Draw(t, "ops")
		for _, op := range ops {
			member := fmt.Sprintf("m%d", op%8)
			if op < 8 {
				require.Equal(t, !model[member], s.Add([]byte(member)))
				model[member] = true
			} else {
				require.Equal(t, model[member], s.Remove([]byte(member)))
				delete(model, member)
			}
		}

		require.Equal(t, uint64(len(model)), s.Len())
		got := make([]string, 0, len(model))
		for _, v := range s.Values() {
			require.True(t, s.Contains(v))
			got = append(got, string(v))
		}
		want := make([]string, 0, len(model))
		for m := range model {
			want = append(want, m)
		}
		sort.Strings(got)
		sort.Strings(want)
		require.Equal(t, want, got)
	})
}
