package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashCredentialDeterministic(t *testing.T) {
	a := HashCredential("admin123")
	b := HashCredential("admin123")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, HashCredential("admin124"))
}

func TestCheckCredential(t *testing.T) {
	hash := HashCredential("C0DE")
	assert.True(t, CheckCredential(hash, "C0DE"))
	assert.False(t, CheckCredential(hash, "c0de"))
	assert.False(t, CheckCredential("", "C0DE"))
}
