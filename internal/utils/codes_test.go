package utils

import (
	"regexp"
	"testing"
)

func TestNewCandidateCodeShape(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	for i := 0; i < 100; i++ {
		code := NewCandidateCode()
		if !re.MatchString(code) {
			t.Fatalf("code %q does not match ^[A-Z0-9]{6}$", code)
		}
	}
}

func TestNewInterviewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewInterviewID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
