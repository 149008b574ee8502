package terbilang

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromInt_TierBoundaries(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "nol"},
		{1, "satu"},
		{9, "sembilan"},
		{10, "sepuluh"},
		{11, "sebelas"},
		{12, "dua belas"},
		{19, "sembilan belas"},
		{20, "dua puluh"},
		{21, "dua puluh satu"},
		{99, "sembilan puluh sembilan"},
		{100, "seratus"},
		{101, "seratus satu"},
		{111, "seratus sebelas"},
		{199, "seratus sembilan puluh sembilan"},
		{200, "dua ratus"},
		{250, "dua ratus lima puluh"},
		{999, "sembilan ratus sembilan puluh sembilan"},
		{1000, "seribu"},
		{1001, "seribu satu"},
		{1999, "seribu sembilan ratus sembilan puluh sembilan"},
		{2000, "dua ribu"},
		{2500, "dua ribu lima ratus"},
		{11000, "sebelas ribu"},
		{999_999, "sembilan ratus sembilan puluh sembilan ribu sembilan ratus sembilan puluh sembilan"},
		{1_000_000, "satu juta"},
		{1_500_000, "satu juta lima ratus ribu"},
		{4_900_000, "empat juta sembilan ratus ribu"},
		{999_999_999, "sembilan ratus sembilan puluh sembilan juta sembilan ratus sembilan puluh sembilan ribu sembilan ratus sembilan puluh sembilan"},
		{1_000_000_000, "satu miliar"},
		{2_750_000_000, "dua miliar tujuh ratus lima puluh juta"},
		{1_000_000_000_000, "satu triliun"},
		{1_000_000_001_000, "satu triliun seribu"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FromInt(tc.n), "n=%d", tc.n)
	}
}

func TestFromInt_NoDanglingWhitespace(t *testing.T) {
	// Zero remainders at every tier used to leave a trailing space
	// ("seribu " + nol-tail); the result must always be trimmed and
	// never contain doubled spaces.
	for _, n := range []int64{10, 20, 100, 1000, 2000, 1_000_000, 1_000_000_000} {
		got := FromInt(n)
		assert.Equal(t, strings.TrimSpace(got), got, "n=%d", n)
		assert.NotContains(t, got, "  ", "n=%d", n)
	}
}

func TestFromInt_Bounds(t *testing.T) {
	assert.Equal(t, "", FromInt(-1))
	assert.Equal(t, TooLarge, FromInt(1_000_000_000_000_000))
	assert.Equal(t, "sembilan ratus sembilan puluh sembilan triliun "+
		"sembilan ratus sembilan puluh sembilan miliar "+
		"sembilan ratus sembilan puluh sembilan juta "+
		"sembilan ratus sembilan puluh sembilan ribu "+
		"sembilan ratus sembilan puluh sembilan",
		FromInt(999_999_999_999_999))
}

func TestFromRupiah(t *testing.T) {
	assert.Equal(t, "empat juta sembilan ratus ribu rupiah",
		FromRupiah(decimal.NewFromInt(4_900_000)))
	// Amounts round to the nearest whole rupiah before spelling.
	assert.Equal(t, "seribu rupiah", FromRupiah(decimal.NewFromFloat(1000.4)))
	assert.Equal(t, "seribu satu rupiah", FromRupiah(decimal.NewFromFloat(1000.5)))
	assert.Equal(t, "nol rupiah", FromRupiah(decimal.Zero))
}
