package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finworks/go-sepa-export/internal/common"
	"github.com/finworks/go-sepa-export/internal/common/banking"
	"github.com/finworks/go-sepa-export/internal/common/constants"
	"github.com/finworks/go-sepa-export/internal/common/log"
	"github.com/finworks/go-sepa-export/internal/models"
	"github.com/finworks/go-sepa-export/internal/monitoring"
	"github.com/finworks/go-sepa-export/internal/repositories"
	"github.com/finworks/go-sepa-export/internal/services/transformer"
)

type SepaExportService interface {
	CreateExport(ctx context.Context, in models.CreateSepaExportIn) (out *models.SepaExportOut, err error)
	GetDebtorDefaults(ctx context.Context, company string) (out *models.DebtorDefaultsOut, err error)
}

type sepaExport service

var _ SepaExportService = (*sepaExport)(nil)

// CreateExport runs the whole export pipeline: normalize the debtor, check
// the execution date, resolve the invoice batch inside one transaction, build
// the instruction and serialize it. Any invoice failing a check fails the
// whole export; no partial document is ever produced.
func (s *sepaExport) CreateExport(ctx context.Context, in models.CreateSepaExportIn) (out *models.SepaExportOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	defer func() {
		if err != nil {
			s.srv.metrics.IncSepaExport("failed")
		}
	}()

	debtor, err := s.normalizeDebtor(in)
	if err != nil {
		return
	}

	if err = checkExecutionDate(in.ExecutionDate, time.Now()); err != nil {
		return
	}

	names := dedupeNames(in.InvoiceNames)
	if len(names) == 0 {
		err = common.ErrEmptyInvoiceSet
		return
	}

	// One transaction for the whole batch, so every invoice is read from the
	// same snapshot.
	var resolved []models.ResolvedInvoice
	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var stepErr error
		resolved, stepErr = s.resolveInvoices(ctx, r, names, in.Currency)
		return stepErr
	})
	if err != nil {
		return
	}

	instruction := s.buildInstruction(debtor, in, resolved, time.Now())

	content, err := transformer.Pain001(ctx, instruction)
	if err != nil {
		return
	}

	s.srv.metrics.IncSepaExport("success")
	s.srv.metrics.ObserveSepaExportTransactions(instruction.NumberOfTransactions())

	out = &models.SepaExportOut{
		Filename:             fmt.Sprintf("payment_instruction_%s.xml", time.Now().Format(constants.TimestampFormatFile)),
		Content:              content,
		MessageID:            instruction.MessageID,
		ControlSum:           instruction.ControlSum().StringFixed(2),
		NumberOfTransactions: instruction.NumberOfTransactions(),
	}

	log.Info(ctx, "[SEPA.EXPORT.CREATED]",
		log.String("messageId", out.MessageID),
		log.Int("transactions", out.NumberOfTransactions),
		log.String("controlSum", out.ControlSum),
	)

	return
}

func (s *sepaExport) normalizeDebtor(in models.CreateSepaExportIn) (models.Party, error) {
	iban, err := banking.NormalizeIBAN(in.DebtorIBAN)
	if err != nil {
		return models.Party{}, fmt.Errorf("debtor: %w", err)
	}

	bic, err := banking.NormalizeBIC(in.DebtorBIC)
	if err != nil {
		return models.Party{}, fmt.Errorf("debtor: %w", err)
	}

	return models.Party{
		Name:         in.DebtorName,
		AddressLines: in.DebtorAddress,
		CountryCode:  in.DebtorCountry,
		Bank: models.BankIdentifier{
			IBAN: iban,
			BIC:  bic,
		},
	}, nil
}

// checkExecutionDate compares calendar days, not instants; an execution date
// of today is allowed regardless of the current wall clock time.
func checkExecutionDate(executionDate, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requested := time.Date(executionDate.Year(), executionDate.Month(), executionDate.Day(), 0, 0, 0, 0, now.Location())

	if requested.Before(today) {
		return fmt.Errorf("%w: %s", common.ErrExecutionDateInPast, requested.Format(constants.DateFormatYYYYMMDD))
	}

	return nil
}

// dedupeNames drops repeated invoice names while keeping first-seen order, so
// a doubled selection cannot produce a doubled payment.
func dedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}
