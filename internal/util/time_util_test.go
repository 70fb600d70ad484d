package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	expected := NewDate(2024, 3, 7)
	for _, in := range []string{
		"2024-03-07",
		"2024-03-07T00:00:00Z",
		"2024-03-07 00:00:00",
		"2024/03/07",
		"03/07/2024",
		"3/7/2024",
		"07-Mar-2024",
		"Mar 7, 2024",
		"7 Mar 2024",
		" 2024-03-07 ",
	} {
		t.Run(in, func(t *testing.T) {
			got, err := ParseDate(in)
			require.NoError(t, err)
			require.True(t, expected.Equal(got), got.String())
		})
	}

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("not a date")
		require.Error(t, err)
	})
}

func TestDateLte(t *testing.T) {
	require.True(t, DateLte(NewDate(2020, 1, 1), NewDate(2020, 1, 2)))
	require.True(t, DateLte(NewDate(2020, 1, 1), NewDate(2020, 1, 1)))
	require.False(t, DateLte(NewDate(2020, 1, 2), NewDate(2020, 1, 1)))
}
