package sepaexport

import (
	"os"
	"testing"

	"github.com/finworks/go-sepa-export/internal/common/log"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
