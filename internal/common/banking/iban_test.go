package banking

import (
	"errors"
	"testing"

	"github.com/finworks/go-sepa-export/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIBAN(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "valid austrian IBAN",
			raw:  "AT611904300234573201",
			want: "AT611904300234573201",
		},
		{
			name: "valid german IBAN",
			raw:  "DE89370400440532013000",
			want: "DE89370400440532013000",
		},
		{
			name: "normalizes spaces and case",
			raw:  "at61 1904 3002 3457 3201",
			want: "AT611904300234573201",
		},
		{
			name:    "checksum digits altered",
			raw:     "AT621904300234573201",
			wantErr: true,
		},
		{
			name:    "body character altered",
			raw:     "AT611904300234573202",
			wantErr: true,
		},
		{
			name:    "too short",
			raw:     "AT61190430",
			wantErr: true,
		},
		{
			name:    "too long",
			raw:     "AT61190430023457320119043002345732011",
			wantErr: true,
		},
		{
			name:    "missing country code",
			raw:     "1161904300234573201",
			wantErr: true,
		},
		{
			name:    "missing check digits",
			raw:     "ATAB1904300234573201",
			wantErr: true,
		},
		{
			name:    "special character in body",
			raw:     "AT61190430023457320!",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeIBAN(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidIBAN))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
