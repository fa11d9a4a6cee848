package utils

import (
	"strings"

	"github.com/google/uuid"
)

const candidateCodeLen = 6

// NewInterviewID returns a random v4 UUID string.
func NewInterviewID() string {
	return uuid.NewString()
}

// NewCandidateCode returns a short shareable code for the candidate,
// like an invitation. Uniqueness is enforced by the store, not here.
func NewCandidateCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:candidateCodeLen])
}
