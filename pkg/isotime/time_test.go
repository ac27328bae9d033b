package isotime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/isotime/pkg/isotime"
)

func TestNormalizeTime(t *testing.T) {
	n := newNormalizer()

	t.Run("valid times collapse to six digits", func(t *testing.T) {
		cases := []struct {
			in   string
			want string
		}{
			{"05", "050000"},
			{"05:35", "053500"},
			{"0535", "053500"},
			{"05:35:00", "053500"},
			{"053500", "053500"},
			{"23:59:59", "235959"},
			{"00", "000000"},
		}

		for _, tc := range cases {
			got, err := n.NormalizeTime(tc.in)
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("padding never alters present fields", func(t *testing.T) {
		got, err := n.NormalizeTime("05:35")
		require.NoError(t, err)
		assert.Equal(t, "0535", got[:4])
		assert.Equal(t, "00", got[4:])
	})

	t.Run("non-time input is rejected with the value in the message", func(t *testing.T) {
		_, err := n.NormalizeTime("noon")
		require.ErrorIs(t, err, isotime.ErrInvalidFormat)
		assert.Contains(t, err.Error(), "noon")
	})

	t.Run("digit counts other than 2, 4 or 6 are rejected", func(t *testing.T) {
		for _, in := range []string{"5", "053", "05350", "0535000"} {
			_, err := n.NormalizeTime(in)
			assert.ErrorIs(t, err, isotime.ErrInvalidLength, "input %q", in)
		}
	})

	t.Run("hour boundaries", func(t *testing.T) {
		_, err := n.NormalizeTime("24")
		assert.ErrorIs(t, err, isotime.ErrInvalidComponent)

		got, err := n.NormalizeTime("23")
		require.NoError(t, err)
		assert.Equal(t, "230000", got)
	})

	t.Run("minute boundaries", func(t *testing.T) {
		_, err := n.NormalizeTime("0560")
		assert.ErrorIs(t, err, isotime.ErrInvalidComponent)

		got, err := n.NormalizeTime("0559")
		require.NoError(t, err)
		assert.Equal(t, "055900", got)
	})

	t.Run("second boundaries", func(t *testing.T) {
		_, err := n.NormalizeTime("055960")
		assert.ErrorIs(t, err, isotime.ErrInvalidComponent)

		got, err := n.NormalizeTime("055959")
		require.NoError(t, err)
		assert.Equal(t, "055959", got)
	})
}
