package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackendID(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		id := BackendID("3f1b8a47-9d0e-4a3c-b1f2-6d5e7c8a9b0c")
		for i := 0; i < 10; i++ {
			assert.Equal(t, id, BackendID("3f1b8a47-9d0e-4a3c-b1f2-6d5e7c8a9b0c"))
		}
	})

	t.Run("Range", func(t *testing.T) {
		inputs := []string{
			"",
			"a",
			"user@example.com",
			"3f1b8a47-9d0e-4a3c-b1f2-6d5e7c8a9b0c",
			"ffffffff-ffff-ffff-ffff-ffffffffffff",
			"00000000-0000-0000-0000-000000000000",
		}
		for _, in := range inputs {
			id := BackendID(in)
			assert.GreaterOrEqual(t, id, int32(0), "input %q", in)
			assert.Less(t, id, int32(1_000_000), "input %q", in)
		}
	})

	t.Run("Known values", func(t *testing.T) {
		// Fixed points of the 31-multiplier rolling hash, verified against
		// the browser implementation: ((h<<5)-h)+c over int32, abs, mod 1e6.
		assert.Equal(t, int32(0), BackendID(""))
		assert.Equal(t, int32(97), BackendID("a"))
		assert.Equal(t, int32(96354), BackendID("abc"))
	})

	t.Run("Distinct inputs usually differ", func(t *testing.T) {
		assert.NotEqual(t, BackendID("alice"), BackendID("bob"))
	})
}

func TestNonZeroBackendID(t *testing.T) {
	t.Run("Empty input defaults to 1", func(t *testing.T) {
		assert.Equal(t, int32(1), NonZeroBackendID(""))
	})

	t.Run("Offset by one from BackendID", func(t *testing.T) {
		assert.Equal(t, BackendID("alice")+1, NonZeroBackendID("alice"))
	})

	t.Run("Never zero", func(t *testing.T) {
		for _, in := range []string{"", "a", "alice", "3f1b8a47"} {
			assert.Greater(t, NonZeroBackendID(in), int32(0))
		}
	})
}
