package todo

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultIDPrefix is prepended to generated task ids.
const DefaultIDPrefix = "todo-"

// IDGenerator supplies fresh task ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates ids of the form "<prefix><uuid>".
type UUIDGenerator struct {
	Prefix string
}

// NewID returns a new random id.
func (g UUIDGenerator) NewID() string {
	return g.Prefix + uuid.NewString()
}

// SequenceGenerator generates "<prefix><n>" ids from a counter.
// It is deterministic and meant for tests and scripted runs.
type SequenceGenerator struct {
	Prefix string
	next   int
}

// NewID returns the next id in the sequence.
func (g *SequenceGenerator) NewID() string {
	id := fmt.Sprintf("%s%d", g.Prefix, g.next)
	g.next++
	return id
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

// NewID calls f.
func (f IDGeneratorFunc) NewID() string {
	return f()
}
