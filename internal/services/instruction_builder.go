package services

import (
	"fmt"
	"time"

	"github.com/finworks/go-sepa-export/internal/common/constants"
	"github.com/finworks/go-sepa-export/internal/models"
)

// paymentInfoIDLength is the MsgId prefix reused as PmtInfId, keeping the two
// identifiers visibly related in bank statements.
const paymentInfoIDLength = 16

// buildInstruction assembles the in-memory instruction from the resolved
// batch. Instruction ids are 1-based positions in the batch; end-to-end ids
// carry the invoice name through to the creditor's statement.
func (s *sepaExport) buildInstruction(
	debtor models.Party,
	in models.CreateSepaExportIn,
	resolved []models.ResolvedInvoice,
	now time.Time,
) models.PaymentInstruction {
	messageID := s.srv.idgenerator.Generate()
	if len(messageID) > constants.MaxIdentifierLength {
		messageID = messageID[:constants.MaxIdentifierLength]
	}

	paymentInfoID := messageID
	if len(paymentInfoID) > paymentInfoIDLength {
		paymentInfoID = paymentInfoID[:paymentInfoIDLength]
	}

	transactions := make([]models.PaymentTransaction, 0, len(resolved))
	for i, invoice := range resolved {
		transactions = append(transactions, models.PaymentTransaction{
			InstructionID:       fmt.Sprintf("%08d", i+1),
			EndToEndID:          truncateIdentifier(invoice.InvoiceName),
			Creditor:            invoice.Supplier,
			Amount:              invoice.Amount,
			Currency:            invoice.Currency,
			RemittanceReference: invoice.RemittanceReference,
			SourceInvoiceName:   invoice.InvoiceName,
		})
	}

	return models.NewPaymentInstruction(
		messageID,
		paymentInfoID,
		now,
		debtor,
		in.ExecutionDate,
		in.Currency,
		transactions,
	)
}

func truncateIdentifier(id string) string {
	if len(id) > constants.MaxIdentifierLength {
		return id[:constants.MaxIdentifierLength]
	}
	return id
}
