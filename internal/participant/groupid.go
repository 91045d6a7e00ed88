package participant

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	groupIDPrefix  = "GRP-"
	groupIDLength  = 8
	groupIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GroupIDGenerator produces the shared identifier stamped on every member of
// one registration batch. Collisions are improbable, not impossible; no
// lookup against stored ids is made.
type GroupIDGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGroupIDGenerator builds a generator over the given source so tests can
// supply a deterministic one.
func NewGroupIDGenerator(src rand.Source) *GroupIDGenerator {
	return &GroupIDGenerator{rnd: rand.New(src)}
}

// DefaultGroupIDGenerator seeds from the clock.
func DefaultGroupIDGenerator() *GroupIDGenerator {
	return NewGroupIDGenerator(rand.NewSource(time.Now().UnixNano()))
}

// Next returns a fresh group id: fixed prefix plus a fixed-length random
// alphanumeric suffix.
func (g *GroupIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var sb strings.Builder
	sb.Grow(len(groupIDPrefix) + groupIDLength)
	sb.WriteString(groupIDPrefix)
	for i := 0; i < groupIDLength; i++ {
		sb.WriteByte(groupIDCharset[g.rnd.Intn(len(groupIDCharset))])
	}
	return sb.String()
}
