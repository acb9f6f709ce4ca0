package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/finworks/go-sepa-export/cmd/setup"
	"github.com/finworks/go-sepa-export/internal/common/constants"
	"github.com/finworks/go-sepa-export/internal/common/log"
	"github.com/finworks/go-sepa-export/internal/models"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sepactl",
	Short: "Operational tool for generating SEPA payment files from the command line",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringSliceP(exportCmdInvoices, "i", nil, "invoice names to export")
	exportCmd.MarkFlagRequired(exportCmdInvoices)
	exportCmd.Flags().StringP(exportCmdDate, "d", "", "requested execution date (YYYY-MM-DD)")
	exportCmd.MarkFlagRequired(exportCmdDate)
	exportCmd.Flags().StringP(exportCmdDebtorName, "n", "", "debtor name")
	exportCmd.MarkFlagRequired(exportCmdDebtorName)
	exportCmd.Flags().String(exportCmdDebtorIBAN, "", "debtor IBAN")
	exportCmd.MarkFlagRequired(exportCmdDebtorIBAN)
	exportCmd.Flags().String(exportCmdDebtorBIC, "", "debtor BIC (optional)")
	exportCmd.Flags().StringSlice(exportCmdDebtorAddress, nil, "debtor address lines")
	exportCmd.MarkFlagRequired(exportCmdDebtorAddress)
	exportCmd.Flags().String(exportCmdDebtorCountry, "", "debtor country code (ISO 3166-1 alpha-2)")
	exportCmd.MarkFlagRequired(exportCmdDebtorCountry)
	exportCmd.Flags().StringP(exportCmdOutput, "o", "", "output file (defaults to the generated filename)")
}

var (
	exportCmd = &cobra.Command{
		Use:     "export",
		Short:   "Build a pain.001 payment file for the given invoices",
		Long:    ``,
		Example: "sepactl export -i ACC-PINV-2026-00001,ACC-PINV-2026-00002 -d 2026-09-01 -n 'ACME GmbH' --debtor-iban AT61... --debtor-address 'Main Street 1' --debtor-country AT",
		Run:     runExport,
	}
	exportCmdInvoices      = "invoices"
	exportCmdDate          = "date"
	exportCmdDebtorName    = "debtor-name"
	exportCmdDebtorIBAN    = "debtor-iban"
	exportCmdDebtorBIC     = "debtor-bic"
	exportCmdDebtorAddress = "debtor-address"
	exportCmdDebtorCountry = "debtor-country"
	exportCmdOutput        = "output"
)

func runExport(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	invoices, _ := ccmd.Flags().GetStringSlice(exportCmdInvoices)
	date, _ := ccmd.Flags().GetString(exportCmdDate)
	debtorName, _ := ccmd.Flags().GetString(exportCmdDebtorName)
	debtorIBAN, _ := ccmd.Flags().GetString(exportCmdDebtorIBAN)
	debtorBIC, _ := ccmd.Flags().GetString(exportCmdDebtorBIC)
	debtorAddress, _ := ccmd.Flags().GetStringSlice(exportCmdDebtorAddress)
	debtorCountry, _ := ccmd.Flags().GetString(exportCmdDebtorCountry)
	output, _ := ccmd.Flags().GetString(exportCmdOutput)

	executionDate, err := time.ParseInLocation(constants.DateFormatYYYYMMDD, date, time.Local)
	if err != nil {
		log.Fatalf(ctx, "invalid execution date %q, expected YYYY-MM-DD", date)
	}

	s, _, err := setup.Init("sepactl")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	defer func() {
		s.WriteDB.Close()
		s.ReadDB.Close()
	}()

	out, err := s.Service.SepaExport.CreateExport(ctx, models.CreateSepaExportIn{
		InvoiceNames:  invoices,
		ExecutionDate: executionDate,
		DebtorName:    debtorName,
		DebtorIBAN:    debtorIBAN,
		DebtorBIC:     debtorBIC,
		DebtorAddress: debtorAddress,
		DebtorCountry: strings.ToUpper(debtorCountry),
		Currency:      constants.EURCurrency,
	})
	if err != nil {
		log.Fatalf(ctx, "export failed: %v", err)
	}

	if output == "" {
		output = out.Filename
	}

	if err := os.WriteFile(output, out.Content, 0o644); err != nil {
		log.Fatalf(ctx, "failed to write %s: %v", output, err)
	}

	fmt.Printf("wrote %s (message id %s, %d transactions, control sum %s)\n",
		output, out.MessageID, out.NumberOfTransactions, out.ControlSum)
}
