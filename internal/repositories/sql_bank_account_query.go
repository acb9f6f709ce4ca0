package repositories

// query to bank account database
var (
	queryBankAccountGetByName = `
	SELECT
		ba."name",
		COALESCE(ba."iban", '') as "iban",
		COALESCE(ba."bic", '') as "bic",
		COALESCE(ba."country", '') as "country",
		COALESCE(ba."addressLines", '') as "addressLines"
	FROM "bankAccount" ba
	WHERE ba."name" = $1;`

	queryBankAccountGetDefaultForCompany = `
	SELECT
		ba."name",
		COALESCE(ba."iban", '') as "iban",
		COALESCE(ba."bic", '') as "bic",
		COALESCE(ba."country", '') as "country",
		COALESCE(ba."addressLines", '') as "addressLines"
	FROM "bankAccount" ba
	WHERE ba."company" = $1 AND ba."isCompanyAccount" = true AND ba."isDefault" = true
	LIMIT 1;`
)
