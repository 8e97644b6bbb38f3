package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDecodeMasterSkills(t *testing.T) {
	t.Run("mapping shape", func(t *testing.T) {
		skills, err := DecodeMasterSkills(datatypes.JSON(`{"React": 5, "Node.js": 3}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"React": 5, "Node.js": 3}, skills)
	})

	t.Run("legacy list shape", func(t *testing.T) {
		skills, err := DecodeMasterSkills(datatypes.JSON(`["React", "AWS"]`))
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"React": 0, "AWS": 0}, skills)
	})

	t.Run("empty column", func(t *testing.T) {
		skills, err := DecodeMasterSkills(nil)
		require.NoError(t, err)
		assert.Empty(t, skills)
		assert.NotNil(t, skills)
	})

	t.Run("null json", func(t *testing.T) {
		skills, err := DecodeMasterSkills(datatypes.JSON(`null`))
		require.NoError(t, err)
		assert.Empty(t, skills)
		assert.NotNil(t, skills)
	})

	t.Run("unrecognized shape", func(t *testing.T) {
		_, err := DecodeMasterSkills(datatypes.JSON(`"React"`))
		assert.Error(t, err)
	})
}

func TestEncodeMasterSkills(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		raw, err := EncodeMasterSkills(map[string]float64{"Go": 4})
		require.NoError(t, err)

		skills, err := DecodeMasterSkills(raw)
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"Go": 4}, skills)
	})

	t.Run("nil becomes empty object", func(t *testing.T) {
		raw, err := EncodeMasterSkills(nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(raw))
	})
}
