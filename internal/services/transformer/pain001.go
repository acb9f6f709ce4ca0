// Package transformer turns an in-memory payment instruction into the
// pain.001.001.03 customer credit transfer initiation document accepted by
// Austrian banks (STUZZA profile).
package transformer

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/finworks/go-sepa-export/internal/common/constants"
	"github.com/finworks/go-sepa-export/internal/common/log"
	"github.com/finworks/go-sepa-export/internal/models"
)

// Element order below follows the pain.001.001.03 schema sequence; the banks'
// validators reject reordered elements.
type (
	document struct {
		XMLName     xml.Name         `xml:"Document"`
		Xmlns       string           `xml:"xmlns,attr"`
		XmlnsXsi    string           `xml:"xmlns:xsi,attr"`
		CdtTrfInitn cstmrCdtTrfInitn `xml:"CstmrCdtTrfInitn"`
	}

	cstmrCdtTrfInitn struct {
		GrpHdr groupHeader `xml:"GrpHdr"`
		PmtInf paymentInfo `xml:"PmtInf"`
	}

	groupHeader struct {
		MsgID    string          `xml:"MsgId"`
		CreDtTm  string          `xml:"CreDtTm"`
		NbOfTxs  int             `xml:"NbOfTxs"`
		CtrlSum  string          `xml:"CtrlSum"`
		InitgPty initiatingParty `xml:"InitgPty"`
	}

	initiatingParty struct {
		Nm string `xml:"Nm"`
	}

	paymentInfo struct {
		PmtInfID    string           `xml:"PmtInfId"`
		PmtMtd      string           `xml:"PmtMtd"`
		BtchBookg   bool             `xml:"BtchBookg"`
		PmtTpInf    paymentTypeInfo  `xml:"PmtTpInf"`
		ReqdExctnDt string           `xml:"ReqdExctnDt"`
		Dbtr        party            `xml:"Dbtr"`
		DbtrAcct    account          `xml:"DbtrAcct"`
		DbtrAgt     agent            `xml:"DbtrAgt"`
		ChrgBr      string           `xml:"ChrgBr"`
		CdtTrfTxInf []creditTransfer `xml:"CdtTrfTxInf"`
	}

	paymentTypeInfo struct {
		SvcLvl serviceLevel `xml:"SvcLvl"`
	}

	serviceLevel struct {
		Cd string `xml:"Cd"`
	}

	party struct {
		Nm      string         `xml:"Nm"`
		PstlAdr *postalAddress `xml:"PstlAdr,omitempty"`
	}

	postalAddress struct {
		Ctry    string   `xml:"Ctry"`
		AdrLine []string `xml:"AdrLine"`
	}

	account struct {
		ID  accountID `xml:"Id"`
		Ccy string    `xml:"Ccy,omitempty"`
	}

	accountID struct {
		IBAN string `xml:"IBAN"`
	}

	agent struct {
		FinInstnID finInstitution `xml:"FinInstnId"`
	}

	finInstitution struct {
		BIC string `xml:"BIC"`
	}

	creditTransfer struct {
		PmtID    paymentID       `xml:"PmtId"`
		Amt      amount          `xml:"Amt"`
		CdtrAgt  agent           `xml:"CdtrAgt"`
		Cdtr     party           `xml:"Cdtr"`
		CdtrAcct account         `xml:"CdtrAcct"`
		RmtInf   *remittanceInfo `xml:"RmtInf,omitempty"`
	}

	paymentID struct {
		InstrID    string `xml:"InstrId"`
		EndToEndID string `xml:"EndToEndId"`
	}

	amount struct {
		InstdAmt instructedAmount `xml:"InstdAmt"`
	}

	instructedAmount struct {
		Ccy   string `xml:"Ccy,attr"`
		Value string `xml:",chardata"`
	}

	remittanceInfo struct {
		Ustrd string `xml:"Ustrd"`
	}
)

// Pain001 serializes the instruction into a complete XML document. The output
// is deterministic for a given instruction; the creation timestamp and ids
// already live inside it.
func Pain001(ctx context.Context, instruction models.PaymentInstruction) ([]byte, error) {
	doc := document{
		Xmlns:    constants.SepaNamespace,
		XmlnsXsi: constants.SepaNamespaceXSI,
		CdtTrfInitn: cstmrCdtTrfInitn{
			GrpHdr: groupHeader{
				MsgID:   instruction.MessageID,
				CreDtTm: instruction.CreationDateTime.Format(constants.DateTimeFormatISO8601),
				NbOfTxs: instruction.NumberOfTransactions(),
				CtrlSum: instruction.ControlSum().StringFixed(2),
				InitgPty: initiatingParty{
					Nm: truncateText(ctx, "GrpHdr.InitgPty.Nm", instruction.InitiatingParty),
				},
			},
			PmtInf: paymentInfo{
				PmtInfID:    instruction.PaymentInfoID,
				PmtMtd:      constants.PaymentMethodTransfer,
				BtchBookg:   instruction.BatchBooking,
				PmtTpInf:    paymentTypeInfo{SvcLvl: serviceLevel{Cd: constants.ServiceLevelSEPA}},
				ReqdExctnDt: instruction.ExecutionDate.Format(constants.DateFormatYYYYMMDD),
				Dbtr:        toXMLParty(ctx, "Dbtr", instruction.Debtor),
				// The debtor account carries the instruction currency; creditor
				// accounts do not.
				DbtrAcct: account{ID: accountID{IBAN: instruction.Debtor.Bank.IBAN}, Ccy: instruction.Currency},
				DbtrAgt:     agent{FinInstnID: finInstitution{BIC: instruction.Debtor.Bank.BIC}},
				ChrgBr:      constants.ChargeBearerSLEV,
				CdtTrfTxInf: toXMLTransfers(ctx, instruction.Transactions),
			},
		},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal pain.001 document: %w", err)
	}

	return append([]byte(xml.Header), append(body, '\n')...), nil
}

func toXMLTransfers(ctx context.Context, transactions []models.PaymentTransaction) []creditTransfer {
	transfers := make([]creditTransfer, 0, len(transactions))
	for _, tx := range transactions {
		transfer := creditTransfer{
			PmtID: paymentID{
				InstrID:    tx.InstructionID,
				EndToEndID: tx.EndToEndID,
			},
			Amt: amount{
				InstdAmt: instructedAmount{
					Ccy:   tx.Currency,
					Value: tx.Amount.StringFixed(2),
				},
			},
			CdtrAgt:  agent{FinInstnID: finInstitution{BIC: tx.Creditor.Bank.BIC}},
			Cdtr:     toXMLParty(ctx, "Cdtr", tx.Creditor),
			CdtrAcct: account{ID: accountID{IBAN: tx.Creditor.Bank.IBAN}},
		}
		if tx.RemittanceReference != "" {
			transfer.RmtInf = &remittanceInfo{
				Ustrd: truncateText(ctx, "RmtInf.Ustrd", tx.RemittanceReference),
			}
		}
		transfers = append(transfers, transfer)
	}
	return transfers
}

func toXMLParty(ctx context.Context, element string, p models.Party) party {
	result := party{
		Nm: truncateText(ctx, element+".Nm", p.Name),
	}

	if p.CountryCode != "" || len(p.AddressLines) > 0 {
		address := &postalAddress{Ctry: p.CountryCode}
		for _, line := range p.AddressLines {
			address.AdrLine = append(address.AdrLine, truncateText(ctx, element+".PstlAdr.AdrLine", line))
		}
		result.PstlAdr = address
	}

	return result
}

// truncateText enforces the schema maximum for free-text elements. Dropping
// the tail of a name or address line is preferable to the bank rejecting the
// whole file, but it is logged so the operator can shorten the source data.
func truncateText(ctx context.Context, element, text string) string {
	runes := []rune(text)
	if len(runes) <= constants.MaxTextFieldLength {
		return text
	}

	log.Warn(ctx, "[SEPA.EXPORT.FIELD_TRUNCATED]",
		log.String("element", element),
		log.Int("originalLength", len(runes)),
	)
	return string(runes[:constants.MaxTextFieldLength])
}
