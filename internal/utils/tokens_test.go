package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "unexpected rune %q in %q", c, code)
		}
		seen[code] = true
	}
	// 50 кодов подряд не могут совпасть все до одного
	assert.Greater(t, len(seen), 1)
}

func TestNewSessionTokenIsURLSafe(t *testing.T) {
	token, err := NewSessionToken()
	require.NoError(t, err)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
	assert.GreaterOrEqual(t, len(token), 43)

	other, err := NewSessionToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestHashOTPDeterministic(t *testing.T) {
	assert.Equal(t, HashOTP("123456"), HashOTP("123456"))
	assert.NotEqual(t, HashOTP("123456"), HashOTP("654321"))
	assert.Len(t, HashOTP("000000"), 64)
}
