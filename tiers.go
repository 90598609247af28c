// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Byte storage tiers for NewStaticByteStorage, mirroring the fixed-size
// tier steps code.hybscloud.com/iobuf uses for pooled buffers. Callers
// who want a ring buffer backed by one of these fixed sizes avoid a
// bespoke make([]byte, n) at every call site; callers who want an
// arbitrary capacity should use [New] or [NewLocal] directly instead.
const (
	ByteTierPico   = 1 << 5  // 32 B - control/handshake framing
	ByteTierNano   = 1 << 7  // 128 B - small protocol frames
	ByteTierMicro  = 1 << 9  // 512 B - line-oriented protocols
	ByteTierSmall  = 1 << 11 // 2 KiB - small message staging
	ByteTierMedium = 1 << 13 // 8 KiB - stream buffering
)

// ByteTier identifies one of the fixed byte-storage sizes above.
type ByteTier int

const (
	ByteTierIDPico ByteTier = iota
	ByteTierIDNano
	ByteTierIDMicro
	ByteTierIDSmall
	ByteTierIDMedium
)

var byteTierSizes = [...]int{
	ByteTierIDPico:   ByteTierPico,
	ByteTierIDNano:   ByteTierNano,
	ByteTierIDMicro:  ByteTierMicro,
	ByteTierIDSmall:  ByteTierSmall,
	ByteTierIDMedium: ByteTierMedium,
}

// ByteTierBySize returns the smallest tier that can hold size bytes.
// Returns ByteTierIDMedium for sizes larger than ByteTierMedium.
func ByteTierBySize(size int) ByteTier {
	for tier, n := range byteTierSizes {
		if size <= n {
			return ByteTier(tier)
		}
	}
	return ByteTierIDMedium
}

// NewStaticByteStorage allocates a Storage[byte] sized to the given
// tier, for use with [FromRawParts] or anywhere a caller wants ring
// buffer capacity to snap to one of the fixed steps above instead of an
// arbitrary size.
func NewStaticByteStorage(tier ByteTier) Storage[byte] {
	return newStaticStorage(make([]byte, byteTierSizes[tier]))
}
