package repositories

// query to sepa settings and company database
var (
	querySepaSettingsGetByCompany = `
	SELECT
		ss."company",
		COALESCE(ss."debtorName", '') as "debtorName",
		COALESCE(ss."countryCode", '') as "countryCode",
		COALESCE(ss."defaultBankAccount", '') as "defaultBankAccount"
	FROM "sepaSettings" ss
	WHERE ss."company" = $1;`

	queryCompanyGetByName = `
	SELECT
		c."name",
		COALESCE(c."country", '') as "country"
	FROM "company" c
	WHERE c."name" = $1;`
)
