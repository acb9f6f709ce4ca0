package banking

import (
	"errors"
	"testing"

	"github.com/finworks/go-sepa-export/internal/common"
	"github.com/finworks/go-sepa-export/internal/common/constants"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBIC(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "empty normalizes to placeholder",
			raw:  "",
			want: constants.BICNotProvided,
		},
		{
			name: "whitespace only normalizes to placeholder",
			raw:  "   ",
			want: constants.BICNotProvided,
		},
		{
			name: "placeholder passes through",
			raw:  "NOTPROVIDED",
			want: constants.BICNotProvided,
		},
		{
			name: "valid 8 char BIC",
			raw:  "GIBAATWW",
			want: "GIBAATWW",
		},
		{
			name: "valid 11 char BIC with branch",
			raw:  "GIBAATWWXXX",
			want: "GIBAATWWXXX",
		},
		{
			name: "lower case is normalized",
			raw:  "gibaatww",
			want: "GIBAATWW",
		},
		{
			name:    "wrong length",
			raw:     "GIBAATW",
			wantErr: true,
		},
		{
			name:    "digit in bank code",
			raw:     "G1BAATWW",
			wantErr: true,
		},
		{
			name:    "digit in country code",
			raw:     "GIBA4TWW",
			wantErr: true,
		},
		{
			name:    "special character in location code",
			raw:     "GIBAATW!",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBIC(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidBIC))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
