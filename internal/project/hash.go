package project

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Combine строит составной хеш: H( content || part1 || part2 ... ).
// Порядок parts должен быть детерминированным.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// DigestOf hashes arbitrary bytes.
func DigestOf(b []byte) Digest {
	return sha256.Sum256(b)
}

// DigestUint hashes a number in a fixed-width encoding.
func DigestUint(v uint64) Digest {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return sha256.Sum256(buf[:])
}

// IsZero reports whether d was never computed.
func (d Digest) IsZero() bool {
	return d == Digest{}
}
