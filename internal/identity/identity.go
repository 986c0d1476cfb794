// Package identity derives the matching engine's small integer user ids
// from opaque account UUIDs. The derivation must stay bit-for-bit equal to
// the hash the browser clients shipped with: a 31-multiplier rolling hash
// truncated to a signed 32-bit integer, then abs mod 1,000,000. Distinct
// accounts can collide; the engine does not detect or resolve that.
package identity

const idRange = 1_000_000

// BackendID maps an account identifier into [0, 1_000_000).
// Deterministic and pure; same input always yields the same id.
func BackendID(accountID string) int32 {
	var h int32
	for _, c := range []byte(accountID) {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		// abs via int64 so MinInt32 does not overflow
		return int32((-int64(h)) % idRange)
	}
	return h % idRange
}

// NonZeroBackendID maps into [1, 1_000_000]. The messaging call sites use
// this variant so an id of zero never reaches the store.
func NonZeroBackendID(accountID string) int32 {
	if accountID == "" {
		return 1
	}
	return BackendID(accountID) + 1
}
