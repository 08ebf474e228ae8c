// Copyright (c) 2023 BVK Chaitanya

// Package clientid derives reproducible client order ids from a seed string.
//
// Orders placed with ids from the same seed and offset carry the same client
// order ids, so a rerun of a partially failed batch can be recognized by the
// exchange as a duplicate instead of a new order.
package clientid

import (
	"crypto/md5"
	"encoding/binary"
	"sync"

	"github.com/google/uuid"
)

// Sequence is a sequence of client order ids. It is safe for concurrent use.
type Sequence struct {
	base uuid.UUID

	mu   sync.Mutex
	next uint64
}

// New returns a sequence for seed that starts at the given offset.
func New(seed string, offset uint64) *Sequence {
	return &Sequence{
		base: uuid.UUID(md5.Sum([]byte(seed))),
		next: offset,
	}
}

// Offset returns the offset of the next id.
func (s *Sequence) Offset() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Next returns the id at current offset and advances the offset.
func (s *Sequence) Next() string {
	s.mu.Lock()
	n := s.next
	s.next++
	s.mu.Unlock()
	return s.At(n).String()
}

// At returns the id at offset n without changing the sequence.
func (s *Sequence) At(n uint64) uuid.UUID {
	var buf [16 + 8]byte
	copy(buf[:16], s.base[:])
	binary.BigEndian.PutUint64(buf[16:], n)
	return uuid.UUID(md5.Sum(buf[:]))
}

// Fill assigns an id from the sequence to every empty string in ids.
func (s *Sequence) Fill(ids ...*string) {
	for _, p := range ids {
		if p != nil && len(*p) == 0 {
			*p = s.Next()
		}
	}
}
