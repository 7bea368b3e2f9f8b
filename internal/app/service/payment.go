package service

import (
	"context"
	"fmt"

	"revenue/internal/app/apperr"
	"revenue/internal/app/ds"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type PaymentOutcome int

const (
	// PaymentApplied - платёж учтён, договор ещё не оплачен полностью
	PaymentApplied PaymentOutcome = iota
	// PaymentCompleted - договор оплачен полностью и подписан
	PaymentCompleted
	// ContractExpired - окно подписания закрылось, деньги возвращаются клиенту
	ContractExpired
)

func (o PaymentOutcome) String() string {
	switch o {
	case PaymentApplied:
		return "accepted"
	case PaymentCompleted:
		return "completed"
	case ContractExpired:
		return "expired"
	default:
		return "unknown"
	}
}

type PaymentResult struct {
	Outcome  PaymentOutcome
	Contract *ds.Contract
	// Refund - сумма к возврату при истёкшем окне
	Refund decimal.Decimal
	// Removed - удалось ли убрать истёкший договор
	Removed bool
}

func (r PaymentResult) Message() string {
	switch r.Outcome {
	case ContractExpired:
		msg := fmt.Sprintf("Contract has expired. Refund of %s PLN will be processed.", r.Refund.StringFixed(2))
		if !r.Removed {
			msg += " The contract could not be removed."
		}
		return msg
	case PaymentCompleted:
		return "Payment processed successfully. Contract is now fully paid and signed."
	default:
		return fmt.Sprintf("Payment processed successfully. Remaining amount: %s PLN.", r.Contract.Remaining().StringFixed(2))
	}
}

// PayForContract применяет платёж к договору.
// Истёкшее окно - не ошибка, а отдельный исход ContractExpired.
func (s *SalesService) PayForContract(ctx context.Context, contractID int, amount decimal.Decimal) (*PaymentResult, error) {
	if !amount.IsPositive() {
		return nil, apperr.Invalid("payment amount must be greater than zero")
	}
	// суммы хранятся в decimal(12,2), доли копеек не принимаем
	if !amount.Equal(amount.Truncate(2)) {
		return nil, apperr.Invalid("payment amount must have at most 2 decimal places")
	}

	contract, err := s.contracts.GetContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("get contract: %w", err)
	}
	if contract == nil {
		return nil, apperr.NotFoundf("contract not found")
	}

	log := s.log.WithField("contract_id", contractID)

	now := s.clock()
	if now.After(contract.End) {
		result := &PaymentResult{
			Outcome:  ContractExpired,
			Contract: contract,
			Refund:   contract.Paid,
		}
		removed, err := s.contracts.DeleteContract(ctx, contractID)
		if err != nil {
			log.WithError(err).Warn("failed to remove expired contract")
		}
		result.Removed = removed
		log.WithField("refund", result.Refund.StringFixed(2)).Info("payment for expired contract rejected")
		return result, nil
	}

	remaining := contract.Remaining()
	if !remaining.IsPositive() {
		return nil, apperr.Invalid("contract is already fully paid")
	}
	if amount.GreaterThan(remaining) {
		return nil, apperr.Invalid("payment amount exceeds remaining balance of %s PLN", remaining.StringFixed(2))
	}

	contract.Paid = contract.Paid.Add(amount)
	outcome := PaymentApplied
	if contract.Paid.GreaterThanOrEqual(contract.ToPay) {
		contract.IsPaid = true
		contract.IsSigned = true
		outcome = PaymentCompleted
	}

	if err := s.contracts.UpdateContract(ctx, contract); err != nil {
		return nil, fmt.Errorf("update contract: %w", err)
	}

	log.WithFields(logrus.Fields{
		"amount":  amount.StringFixed(2),
		"outcome": outcome.String(),
	}).Info("payment applied")

	return &PaymentResult{Outcome: outcome, Contract: contract}, nil
}
