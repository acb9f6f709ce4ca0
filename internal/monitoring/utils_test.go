package monitoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSegmentName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "method with pointer receiver",
			in:   "github.com/finworks/go-sepa-export/internal/services.(*sepaExport).CreateExport",
			want: "services.sepaExport.CreateExport",
		},
		{
			name: "plain function",
			in:   "github.com/finworks/go-sepa-export/internal/repositories.injectTx",
			want: "repositories.injectTx",
		},
		{
			name: "no package path",
			in:   "main.main",
			want: "main.main",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getSegmentName(tt.in))
		})
	}
}
