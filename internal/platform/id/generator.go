package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for persisted entities.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues random (v4) UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// IsValid reports whether raw parses as a UUID.
func IsValid(raw string) bool {
	_, err := uuid.Parse(raw)
	return err == nil
}

// SequenceGenerator returns deterministic ids, for seeds and tests.
type SequenceGenerator struct {
	Prefix string
	next   int
}

func (g *SequenceGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s%d", g.Prefix, g.next), nil
}
