package repositories

// query to purchase invoice database
var (
	// Each invoice row is joined with the supplier's default bank account so
	// the export pipeline needs exactly one round trip for the whole batch.
	queryInvoiceListByNames = `
	SELECT
		pi."name",
		pi."grandTotal",
		COALESCE(pi."currency", '') as "currency",
		COALESCE(pi."status", '') as "status",
		pi."docStatus",
		COALESCE(pi."supplier", '') as "supplier",
		pi."postingDate",
		COALESCE(pi."remarks", '') as "remarks",
		COALESCE(ba."name", '') as "supplierBankAccount",
		COALESCE(ba."iban", '') as "supplierIban",
		COALESCE(ba."bic", '') as "supplierBic",
		COALESCE(ba."country", '') as "supplierCountry",
		COALESCE(ba."addressLines", '') as "supplierAddress"
	FROM "purchaseInvoice" pi
	LEFT JOIN "bankAccount" ba
		ON ba."party" = pi."supplier" AND ba."partyType" = 'Supplier' AND ba."isDefault" = true
	WHERE pi."name" = ANY($1);`
)
