// Package idgenerator produces message identifiers for payment instructions.
// Identifiers combine a timestamp with a hex-encoded UUID fragment, which
// keeps them inside the character set (alphanumeric) and length (35) the
// pain.001 schema allows, while staying unique per export call.
package idgenerator

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate() string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

// Generate returns an 8-digit MMDDHHMM timestamp followed by 16 hex
// characters taken from a fresh UUID: 24 characters, alphanumeric.
func (g *IDGenerator) Generate() string {
	return time.Now().Format("01021504") + randomHexSuffix()
}

func randomHexSuffix() string {
	id := uuid.New()
	return hex.EncodeToString(id[:8])
}
