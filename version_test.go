package flowsheet_test

import (
	"testing"

	"github.com/fwojciec/flowsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	t.Run("parses a release tag", func(t *testing.T) {
		t.Parallel()

		v, err := flowsheet.ParseVersion("v0.83.0")

		require.NoError(t, err)
		assert.Equal(t, flowsheet.Version{Major: 0, Minor: 83, Patch: 0}, v)
		assert.Equal(t, "v0.83.0", v.String())
	})

	for _, bad := range []string{"", "0.83.0", "v0.83", "v0", "v0.83.0-rc1", "v0.83.0+meta", "v0.083.0", "latest"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			t.Parallel()

			_, err := flowsheet.ParseVersion(bad)

			require.Error(t, err)
			assert.Equal(t, flowsheet.EINVALID, flowsheet.ErrorCode(err))
		})
	}
}

func TestParseVersions(t *testing.T) {
	t.Parallel()

	t.Run("keeps declared order", func(t *testing.T) {
		t.Parallel()

		vs, err := flowsheet.ParseVersions([]string{"v0.83.0", "v0.29.0"})

		require.NoError(t, err)
		assert.Equal(t, []string{"v0.83.0", "v0.29.0"}, []string{vs[0].String(), vs[1].String()})
	})

	t.Run("fails on the first invalid tag", func(t *testing.T) {
		t.Parallel()

		_, err := flowsheet.ParseVersions([]string{"v0.83.0", "v0.x.0"})

		assert.Equal(t, flowsheet.EINVALID, flowsheet.ErrorCode(err))
	})
}

func TestVersion_Includes(t *testing.T) {
	t.Parallel()

	v59 := flowsheet.Version{Minor: 59}

	assert.True(t, v59.Includes(0))
	assert.True(t, v59.Includes(59))
	assert.True(t, v59.Includes(30))
	assert.False(t, v59.Includes(60))
	assert.True(t, flowsheet.Version{Major: 1}.Includes(200))
}

func TestVersion_Compare(t *testing.T) {
	t.Parallel()

	a := flowsheet.Version{Minor: 9}
	b := flowsheet.Version{Minor: 10}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, b, flowsheet.Latest([]flowsheet.Version{a, b, {Minor: 2}}))
}
