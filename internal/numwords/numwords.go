// Package numwords spells currency amounts in the Indian numbering system,
// grouping by thousand and lakh as printed on pay slips and contracts.
package numwords

import (
	"net/http"
	"strings"

	"astramaie-backoffice/internal/shared/apperror"
)

var ErrNegativeAmount = apperror.New(
	apperror.CodeInvalidInput,
	"amount must not be negative",
	http.StatusBadRequest,
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// ToWords converts a non-negative integer to words: "Zero", "Nineteen",
// "One Lakh Fifty Thousand". Amounts of a lakh (100,000) and above recurse
// on the lakh part, so crore-scale values read as lakhs of lakhs.
func ToWords(n int64) (string, error) {
	if n < 0 {
		return "", ErrNegativeAmount
	}
	if n == 0 {
		return "Zero", nil
	}
	return strings.TrimSpace(convert(n)), nil
}

func convert(n int64) string {
	switch {
	case n < 20:
		return ones[n]
	case n < 100:
		return join(tens[n/10], convert(n%10))
	case n < 1_000:
		return join(ones[n/100]+" Hundred", convert(n%100))
	case n < 100_000:
		return join(convert(n/1_000)+" Thousand", convert(n%1_000))
	default:
		return join(convert(n/100_000)+" Lakh", convert(n%100_000))
	}
}

func join(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}
