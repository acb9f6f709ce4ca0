package models

// BankIdentifier holds a validated, normalized IBAN and BIC pair. BIC is
// never empty: an unknown institution carries the NOTPROVIDED placeholder
// so the mandatory agent elements can always be emitted.
type BankIdentifier struct {
	IBAN string
	BIC  string
}

// Party is one side of a payment: the debtor for the whole instruction, or
// an invoice's supplier on the creditor side.
type Party struct {
	Name         string
	AddressLines []string
	CountryCode  string
	Bank         BankIdentifier
}
