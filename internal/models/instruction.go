package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentTransaction is one credit transfer inside an instruction. One
// transaction is emitted per resolved invoice; transactions to the same
// creditor are never merged, so the remittance reference stays traceable to
// a single invoice.
type PaymentTransaction struct {
	InstructionID       string
	EndToEndID          string
	Creditor            Party
	Amount              Decimal
	Currency            string
	RemittanceReference string
	SourceInvoiceName   string
}

// PaymentInstruction is the debtor-side batch handed to the serializer. It
// lives only for the duration of one export call and is never persisted.
type PaymentInstruction struct {
	MessageID         string
	PaymentInfoID     string
	CreationDateTime  time.Time
	Debtor            Party
	ExecutionDate     time.Time
	Currency          string
	BatchBooking      bool
	InitiatingParty   string
	Transactions      []PaymentTransaction
	controlSum        decimal.Decimal
	numberOfTransfers int
}

// NewPaymentInstruction recomputes the control sum and transaction count
// from the transaction list; neither can be supplied independently.
func NewPaymentInstruction(
	messageID, paymentInfoID string,
	creationDateTime time.Time,
	debtor Party,
	executionDate time.Time,
	currency string,
	transactions []PaymentTransaction,
) PaymentInstruction {
	sum := decimal.Zero
	for _, tx := range transactions {
		sum = sum.Add(tx.Amount.Decimal)
	}

	return PaymentInstruction{
		MessageID:         messageID,
		PaymentInfoID:     paymentInfoID,
		CreationDateTime:  creationDateTime,
		Debtor:            debtor,
		ExecutionDate:     executionDate,
		Currency:          currency,
		BatchBooking:      true,
		InitiatingParty:   debtor.Name,
		Transactions:      transactions,
		controlSum:        sum,
		numberOfTransfers: len(transactions),
	}
}

// ControlSum is the exact decimal sum of all transaction amounts.
func (p PaymentInstruction) ControlSum() decimal.Decimal {
	return p.controlSum
}

// NumberOfTransactions is the count of transactions in the instruction.
func (p PaymentInstruction) NumberOfTransactions() int {
	return p.numberOfTransfers
}
