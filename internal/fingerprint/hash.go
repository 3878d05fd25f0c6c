package fingerprint

import (
	"strconv"
	"strings"
)

const nibblesPerWord = wordBits / 4

// Hash is a finalized, immutable bit sequence.
type Hash struct {
	words []uint64
	size  int
}

// Size returns the number of significant bits.
func (h Hash) Size() int { return h.size }

// IsZero reports whether h is the zero value (no bits).
func (h Hash) IsZero() bool { return h.size == 0 }

// Words returns a copy of the packed words in fill order.
func (h Hash) Words() []uint64 {
	out := make([]uint64, len(h.words))
	copy(out, h.words)
	return out
}

// Equal reports whether both hashes carry the same bits.
func (h Hash) Equal(other Hash) bool {
	if h.size != other.size || len(h.words) != len(other.words) {
		return false
	}
	for i := range h.words {
		if h.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// String renders the hash as ceil(size/4) hexadecimal digits. Each word
// contributes min(remaining, 16) digits, zero padded on the left. When size is
// not a multiple of four the last digit carries fewer than four real bits;
// historical hashes were rendered this way, so the layout must not change.
func (h Hash) String() string {
	remaining := (h.size + 3) / 4
	if remaining == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(remaining)
	for _, word := range h.words {
		if remaining <= 0 {
			break
		}
		width := min(remaining, nibblesPerWord)
		digits := strconv.FormatUint(word, 16)
		for pad := width - len(digits); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.WriteString(digits)
		remaining -= nibblesPerWord
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
