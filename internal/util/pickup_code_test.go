package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePickupCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code, err := GeneratePickupCode()
		require.NoError(t, err)

		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit %q", code, r)
		}
		seen[code] = true
	}

	// 100 draws from a million values collide with negligible probability.
	assert.Greater(t, len(seen), 90)
}
