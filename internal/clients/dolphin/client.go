// Package dolphin is the HTTP client for the external Dolphin ledger API.
// A sync run logs in once, then fetches the full trial-balance snapshot with
// the returned auth key and session cookie.
package dolphin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/westwalk/performance_report_app/internal/apperrors"
	"github.com/westwalk/performance_report_app/internal/core/domain"
)

const (
	loginPath = "/Authentication/Dolph_Login"
	fetchPath = "/externaltrialbalance/gettrialbalance"
)

// Session carries the credentials returned by Login, consumed as header plus
// cookie on the subsequent fetch.
type Session struct {
	AuthKey string
	Cookie  string
}

// Client talks to the Dolphin trial-balance API.
type Client struct {
	baseURL   string
	pageIndex string
	cmpSeq    int
	http      *http.Client
}

// NewClient builds a Dolphin client. The timeout bounds each request; expiry
// surfaces as a regular fetch error and the sync can simply be retried.
func NewClient(baseURL, pageIndex string, cmpSeq int, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		pageIndex: pageIndex,
		cmpSeq:    cmpSeq,
		http:      &http.Client{Timeout: timeout},
	}
}

// Login authenticates against Dolphin and returns the session credentials.
func (c *Client) Login(ctx context.Context) (Session, error) {
	if c.baseURL == "" {
		return Session{}, fmt.Errorf("dolphin base URL: %w", apperrors.ErrConfiguration)
	}
	if c.pageIndex == "" {
		return Session{}, fmt.Errorf("dolphin pageindex: %w", apperrors.ErrConfiguration)
	}

	payload, err := json.Marshal(map[string]string{"pageindex": c.pageIndex})
	if err != nil {
		return Session{}, fmt.Errorf("failed to marshal login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(payload))
	if err != nil {
		return Session{}, fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("dolphin login request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, fmt.Errorf("failed to read login response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Session{}, fmt.Errorf("dolphin login returned %d: %s", resp.StatusCode, string(body))
	}

	var loginResp struct {
		AuthKey string `json:"authkey"`
	}
	if err := json.Unmarshal(body, &loginResp); err != nil {
		return Session{}, fmt.Errorf("failed to decode login response: %w", err)
	}

	session := Session{AuthKey: loginResp.AuthKey}
	if rawCookie := resp.Header.Get("Set-Cookie"); rawCookie != "" {
		session.Cookie = strings.SplitN(rawCookie, ";", 2)[0]
	}
	return session, nil
}

// FetchTrialBalance retrieves the complete trial-balance snapshot. The
// filter payload is fixed: all accounts, all periods, posted rows only.
func (c *Client) FetchTrialBalance(ctx context.Context, session Session) ([]domain.RawLedgerRow, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("dolphin base URL: %w", apperrors.ErrConfiguration)
	}

	payload := map[string]any{
		"filter": " ",
		"take":   0,
		"skip":   0,
		"sort":   " ",
		"parameters": map[string]any{
			"cmpseq":    c.cmpSeq,
			"accountno": "",
			"year":      0,
			"month":     0,
			"cc3":       "",
			"cc2":       "",
			"typeR":     domain.PostType,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fetch payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+fetchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authentication", session.AuthKey)
	if session.Cookie != "" {
		req.Header.Set("Cookie", session.Cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dolphin fetch request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read fetch response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("dolphin fetch returned %d: %s", resp.StatusCode, string(respBody))
	}

	var rows []domain.RawLedgerRow
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode trial balance rows: %w", err)
	}
	return rows, nil
}

// FetchAll logs in and fetches the full snapshot in one call. This is the
// shape the sync service consumes.
func (c *Client) FetchAll(ctx context.Context) ([]domain.RawLedgerRow, error) {
	session, err := c.Login(ctx)
	if err != nil {
		return nil, err
	}
	return c.FetchTrialBalance(ctx, session)
}
