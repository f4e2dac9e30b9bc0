package project

import (
	"crypto/sha256"
)

// Digest - фиксированный 256 битный хеш содержимого
type Digest [32]byte

// HashBytes хеширует сырое содержимое файла.
func HashBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// Combine строит агрегированный хеш: H( content || extra1 || extra2 ... ).
// Порядок extras должен быть детерминированным.
func Combine(content Digest, extras ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range extras {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// IsZero reports whether the digest is all zeroes.
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}
