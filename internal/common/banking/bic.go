package banking

import (
	"fmt"
	"strings"

	"github.com/finworks/go-sepa-export/internal/common"
	"github.com/finworks/go-sepa-export/internal/common/constants"
)

// NormalizeBIC strips whitespace, upper-cases and validates raw as an
// 8 or 11 character BIC. An empty input is not an error: SEPA messages mark
// an unknown counterparty institution with the NOTPROVIDED placeholder, so
// that is what gets returned.
func NormalizeBIC(raw string) (string, error) {
	bic := strings.ToUpper(strings.Join(strings.Fields(raw), ""))

	if bic == "" || bic == constants.BICNotProvided {
		return constants.BICNotProvided, nil
	}

	if len(bic) != 8 && len(bic) != 11 {
		return "", fmt.Errorf("%w: length must be 8 or 11, got %d", common.ErrInvalidBIC, len(bic))
	}

	// bank code (4 letters) + country code (2 letters)
	for i := 0; i < 6; i++ {
		if !isLetter(bic[i]) {
			return "", fmt.Errorf("%w: position %d must be a letter", common.ErrInvalidBIC, i+1)
		}
	}

	// location code (2) + optional branch code (3), alphanumeric
	for i := 6; i < len(bic); i++ {
		if !isLetter(bic[i]) && !isDigit(bic[i]) {
			return "", fmt.Errorf("%w: invalid character %q", common.ErrInvalidBIC, bic[i])
		}
	}

	return bic, nil
}
