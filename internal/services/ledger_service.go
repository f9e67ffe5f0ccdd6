package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"slices"

	"meal_poll_bot/configs"
	"meal_poll_bot/internal/decision"

	"go.uber.org/zap"
)

const acceptVersion = "6"

var (
	ErrLoginFailed        = errors.New("ledger login failed")
	ErrMalformedResponse  = errors.New("malformed ledger response")
	ErrUnexpectedResponse = errors.New("unexpected ledger response status")
)

type credentials struct {
	User struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

type balanceResponse struct {
	Balance *struct {
		MemberTotals []struct {
			MemberTotal *struct {
				Member *struct {
					ID       string `json:"id"`
					Nickname string `json:"nickname"`
				} `json:"member"`
				BalanceTotal *struct {
					Fractional *int64 `json:"fractional"`
				} `json:"balance_total"`
			} `json:"member_total"`
		} `json:"member_totals"`
	} `json:"balance"`
}

// Session carries the cookies of a signed in ledger user.
type Session struct {
	client *http.Client
}

type ledgerService struct {
	client *http.Client
	config configs.Ledger
	logger *zap.SugaredLogger
}

type LedgerService interface {
	Login(ctx context.Context) (*Session, error)
	// GetBalances returns the members of the configured list in reverse listing order.
	GetBalances(ctx context.Context, session *Session) ([]decision.LedgerMember, error)
}

func NewLedgerService(config configs.Ledger, logger *zap.SugaredLogger) LedgerService {
	return &ledgerService{
		client: &http.Client{},
		config: config,
		logger: logger,
	}
}

func (s *ledgerService) Login(ctx context.Context) (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{
		Transport: s.client.Transport,
		Timeout:   s.client.Timeout,
		Jar:       jar,
	}

	payload := credentials{}
	payload.User.Email = s.config.Email
	payload.User.Password = s.config.Password

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url("/api/users/sign_in"), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	request.Header.Add("Content-Type", "application/json; charset=utf-8")
	request.Header.Add("Accept-Version", acceptVersion)

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	defer response.Body.Close()

	_, _ = io.Copy(io.Discard, response.Body)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		s.logger.Errorw("ledger login rejected", "status", response.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrLoginFailed, response.StatusCode)
	}

	s.logger.Infow("signed in to ledger", "email", s.config.Email)
	return &Session{client: client}, nil
}

func (s *ledgerService) GetBalances(ctx context.Context, session *Session) ([]decision.LedgerMember, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url(fmt.Sprintf("/api/lists/%s/balance", s.config.ListID)), nil)
	if err != nil {
		return nil, err
	}

	request.Header.Add("Accept-Version", acceptVersion)

	response, err := session.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedResponse, response.StatusCode)
	}

	responseData := new(balanceResponse)
	if err := json.Unmarshal(responseBody, responseData); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if responseData.Balance == nil {
		return nil, fmt.Errorf("%w: missing balance", ErrMalformedResponse)
	}

	members := make([]decision.LedgerMember, 0, len(responseData.Balance.MemberTotals))

	for i, total := range responseData.Balance.MemberTotals {
		entry := total.MemberTotal
		if entry == nil || entry.Member == nil || entry.Member.ID == "" || entry.BalanceTotal == nil || entry.BalanceTotal.Fractional == nil {
			return nil, fmt.Errorf("%w: incomplete member total at index %d", ErrMalformedResponse, i)
		}

		members = append(members, decision.LedgerMember{
			ID:      entry.Member.ID,
			Name:    entry.Member.Nickname,
			Balance: *entry.BalanceTotal.Fractional,
		})
	}

	slices.Reverse(members)

	s.logger.Infow("fetched ledger balances", "list", s.config.ListID, "members", len(members))
	return members, nil
}

func (s *ledgerService) url(path string) string {
	return s.config.BaseURL + path
}
