// Package terbilang converts non-negative rupiah amounts into their
// spelled-out Indonesian form, as required on printed nota for
// legal/anti-fraud purposes ("terbilang" line).
package terbilang

import (
	"strings"

	"github.com/shopspring/decimal"
)

// satuan covers the literal words for 0..11. Indonesian has irregular
// "se-" forms (sepuluh, sebelas, seratus, seribu) that the tier rules
// below depend on.
var satuan = []string{
	"nol", "satu", "dua", "tiga", "empat", "lima",
	"enam", "tujuh", "delapan", "sembilan", "sepuluh", "sebelas",
}

// TooLarge is returned for amounts at or above one quadrillion rupiah,
// which no nota in this domain can reach.
const TooLarge = "angka terlalu besar"

// FromInt spells out a non-negative integer. Negative input yields "".
func FromInt(n int64) string {
	if n < 0 {
		return ""
	}
	if n >= 1_000_000_000_000_000 {
		return TooLarge
	}
	return strings.TrimSpace(convert(n))
}

// FromRupiah rounds an amount to the nearest whole rupiah and appends
// the " rupiah" suffix, matching the wording printed on the nota.
func FromRupiah(amount decimal.Decimal) string {
	words := FromInt(amount.Round(0).IntPart())
	if words == "" || words == TooLarge {
		return words
	}
	return words + " rupiah"
}

// convert decomposes n recursively per magnitude tier. Tail recursion on
// a zero remainder produces "nol", so every tier guards the remainder and
// callers trim the trailing space left by an empty tail.
func convert(n int64) string {
	switch {
	case n < 12:
		return satuan[n]
	case n < 20:
		return satuan[n-10] + " belas"
	case n < 100:
		return joinTier(satuan[n/10]+" puluh", n%10)
	case n < 200:
		return joinTier("seratus", n-100)
	case n < 1000:
		return joinTier(satuan[n/100]+" ratus", n%100)
	case n < 2000:
		return joinTier("seribu", n-1000)
	case n < 1_000_000:
		return joinTier(convert(n/1000)+" ribu", n%1000)
	case n < 1_000_000_000:
		return joinTier(convert(n/1_000_000)+" juta", n%1_000_000)
	case n < 1_000_000_000_000:
		return joinTier(convert(n/1_000_000_000)+" miliar", n%1_000_000_000)
	default:
		return joinTier(convert(n/1_000_000_000_000)+" triliun", n%1_000_000_000_000)
	}
}

func joinTier(head string, rest int64) string {
	if rest == 0 {
		return head
	}
	return head + " " + convert(rest)
}
