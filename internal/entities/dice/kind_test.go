package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/sheet-api/internal/entities/dice"
	"github.com/KirkDiggler/sheet-api/internal/errors"
)

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"d4", "d6", "d20"} {
		k, err := dice.ParseKind(valid)
		require.NoError(t, err)
		assert.Equal(t, dice.Kind(valid), k)
	}

	for _, invalid := range []string{"", "d8", "d12", "d100", "all", "D20"} {
		_, err := dice.ParseKind(invalid)
		require.Error(t, err, "kind %q", invalid)
		assert.True(t, errors.IsUnsupportedDiceKind(err), "kind %q", invalid)
	}
}

func TestKindSides(t *testing.T) {
	assert.Equal(t, int32(4), dice.KindD4.Sides())
	assert.Equal(t, int32(6), dice.KindD6.Sides())
	assert.Equal(t, int32(20), dice.KindD20.Sides())
	assert.Equal(t, int32(0), dice.Kind("d8").Sides())
}

func TestKindFromCode(t *testing.T) {
	assert.Equal(t, dice.KindD4, dice.KindFromCode(4))
	assert.Equal(t, dice.KindD6, dice.KindFromCode(6))
	assert.Equal(t, dice.KindD20, dice.KindFromCode(20))

	// Unknown wire codes keep the legacy d20 fallback
	assert.Equal(t, dice.KindD20, dice.KindFromCode(8))
	assert.Equal(t, dice.KindD20, dice.KindFromCode(0))
}

func TestKindCodeRoundTrip(t *testing.T) {
	for _, k := range dice.Kinds() {
		assert.Equal(t, k, dice.KindFromCode(k.Code()))
	}
}
