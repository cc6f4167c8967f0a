package numwords_test

import (
	"testing"

	"astramaie-backoffice/internal/numwords"

	"github.com/stretchr/testify/assert"
)

func TestToWords(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Zero"},
		{5, "Five"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{305, "Three Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1_000, "One Thousand"},
		{1_001, "One Thousand One"},
		{19_999, "Nineteen Thousand Nine Hundred Ninety Nine"},
		{81_525, "Eighty One Thousand Five Hundred Twenty Five"},
		{100_000, "One Lakh"},
		{150_000, "One Lakh Fifty Thousand"},
		{1_234_567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven"},
		{10_000_000, "One Hundred Lakh"},
	}

	for _, tc := range cases {
		got, err := numwords.ToWords(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %d", tc.in)
	}
}

func TestToWordsNegative(t *testing.T) {
	_, err := numwords.ToWords(-1)
	assert.ErrorIs(t, err, numwords.ErrNegativeAmount)
}
