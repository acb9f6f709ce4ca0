package constants

const (
	DateFormatYYYYMMDD     = "2006-01-02"
	DateFormatCompact      = "20060102"
	TimestampFormatFile    = "20060102_150405"
	DateTimeFormatISO8601  = "2006-01-02T15:04:05"
	DefaultDatePlaceholder = "-"
)

// pain.001.001.03 constants, per the Austrian STUZZA profile the exports
// are delivered under.
const (
	SepaNamespace    = "ISO:pain.001.001.03:APC:STUZZA:payments:003"
	SepaNamespaceXSI = "http://www.w3.org/2001/XMLSchema-instance"

	PaymentMethodTransfer = "TRF"
	ServiceLevelSEPA      = "SEPA"
	ChargeBearerSLEV      = "SLEV"

	// BICNotProvided is the SEPA placeholder for an unknown counterparty
	// institution; the element is mandatory in the schema even when the BIC
	// is not known.
	BICNotProvided = "NOTPROVIDED"

	EURCurrency = "EUR"

	// MaxTextFieldLength is the schema maximum for free-text elements
	// (names, address lines, remittance info).
	MaxTextFieldLength = 70

	// MaxIdentifierLength bounds MsgId, PmtInfId, InstrId and EndToEndId.
	MaxIdentifierLength = 35
)
