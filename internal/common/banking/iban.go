// Package banking validates the identifiers that go into a payment
// instruction: IBANs (ISO 13616, with the ISO 7064 MOD97-10 checksum) and
// BICs (ISO 9362). All functions are pure; normalization strips whitespace
// and upper-cases before checking.
package banking

import (
	"fmt"
	"strings"

	"github.com/finworks/go-sepa-export/internal/common"
)

const (
	ibanMinLength = 15
	ibanMaxLength = 34
)

// NormalizeIBAN strips whitespace, upper-cases and checksum-validates raw.
// The returned value is safe to place into a DbtrAcct/CdtrAcct element.
func NormalizeIBAN(raw string) (string, error) {
	iban := strings.ToUpper(strings.Join(strings.Fields(raw), ""))

	if len(iban) < ibanMinLength || len(iban) > ibanMaxLength {
		return "", fmt.Errorf("%w: length %d out of range", common.ErrInvalidIBAN, len(iban))
	}

	if !isLetter(iban[0]) || !isLetter(iban[1]) {
		return "", fmt.Errorf("%w: missing country code", common.ErrInvalidIBAN)
	}
	if !isDigit(iban[2]) || !isDigit(iban[3]) {
		return "", fmt.Errorf("%w: missing check digits", common.ErrInvalidIBAN)
	}
	for i := 4; i < len(iban); i++ {
		if !isLetter(iban[i]) && !isDigit(iban[i]) {
			return "", fmt.Errorf("%w: invalid character %q", common.ErrInvalidIBAN, iban[i])
		}
	}

	if mod97(iban[4:]+iban[:4]) != 1 {
		return "", fmt.Errorf("%w: checksum failed", common.ErrInvalidIBAN)
	}

	return iban, nil
}

// mod97 interprets the rearranged IBAN as a decimal numeral (A=10 .. Z=35)
// and reduces it modulo 97 incrementally, so no big-integer arithmetic is
// needed.
func mod97(s string) int {
	remainder := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
			remainder = (remainder*10 + int(c-'0')) % 97
		default:
			v := int(c-'A') + 10
			remainder = (remainder*100 + v) % 97
		}
	}
	return remainder
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
