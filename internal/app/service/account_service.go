package service

import (
	"context"
	"encoding/json"
	"strings"

	"token_verifier/internal/app/port"
	domain "token_verifier/internal/domain/entity"
)

// AccountServiceImpl implements port.AccountService. Account data is served
// by Tronscan only; payloads are passed through to the caller untouched.
type AccountServiceImpl struct {
	tronscan port.TronscanClient
	notifier port.Notifier
	logger   port.Logger
}

// NewAccountService creates a new instance of AccountServiceImpl.
func NewAccountService(tc port.TronscanClient, notifier port.Notifier, l port.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{tronscan: tc, notifier: notifier, logger: l}
}

// FetchAddressData implements port.AccountService.
func (s *AccountServiceImpl) FetchAddressData(ctx context.Context, address string, queryType port.AccountQueryType) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		err := domain.NewValidationError("Please enter a valid address.")
		s.notifier.Notify(err.Message, port.NotifyError)
		return nil, err
	}

	var (
		data json.RawMessage
		err  error
	)
	switch queryType {
	case port.AccountQueryAccount:
		data, err = s.tronscan.GetAccount(ctx, trimmed)
	case port.AccountQueryTokens:
		data, err = s.tronscan.GetAccountTokens(ctx, trimmed)
	default:
		verr := domain.NewValidationError("Please select a query type.")
		s.notifier.Notify(verr.Message, port.NotifyError)
		return nil, verr
	}
	if err != nil {
		s.logger.Error("Failed to fetch address data",
			"address", trimmed, "queryType", queryType, "error", err)
		s.notifier.Notify(err.Error(), port.NotifyError)
		return nil, err
	}

	s.logger.Info("Address data fetched", "address", trimmed, "queryType", queryType)
	s.notifier.Notify("Address data fetched successfully for Tron!", port.NotifySuccess)
	return data, nil
}
