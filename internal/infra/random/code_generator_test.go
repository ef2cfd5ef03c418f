package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafemeetup/internal/domain/entity"
)

func TestCodeGenerator_ConfirmationCode(t *testing.T) {
	t.Parallel()

	gen := NewCodeGenerator()

	seen := make(map[string]struct{})
	for range 200 {
		code, err := gen.ConfirmationCode()
		require.NoError(t, err)
		assert.Len(t, code, entity.ConfirmationCodeLength)
		assert.True(t, entity.ValidConfirmationCode(code), "code %q should be all digits", code)
		seen[code] = struct{}{}
	}

	// 200 draws from a 10000 value space should not collapse to a handful.
	assert.Greater(t, len(seen), 150)
}
