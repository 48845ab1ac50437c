package dexcom

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/bgcheck/internal/glucose"
	"github.com/five82/bgcheck/internal/source"
)

// ErrSessionExpired is returned when the service no longer accepts the
// current session id.
var ErrSessionExpired = errors.New("dexcom session expired")

// Ensure Client implements source.Source at compile time.
var _ source.Source = (*Client)(nil)

const (
	defaultUserAgent = "bgcheck/0.1"
	requestTimeout   = 10 * time.Second

	// MmolConversionFactor converts mg/dL to mmol/L.
	MmolConversionFactor = 0.0555

	latestWindowMinutes = "10"
	latestMaxCount      = "1"
)

const (
	pathAuthenticate = "General/AuthenticatePublisherAccount"
	pathLogin        = "General/LoginPublisherAccountById"
	pathLatest       = "Publisher/ReadPublisherLatestGlucoseValues"
)

// Options configure a Client.
type Options struct {
	Account  string
	Password string
	Region   string        // us, ous or jp; empty uses ous
	BaseURL  string        // overrides the region's base URL
	Timeout  time.Duration // zero uses 10s
	Logger   *zap.Logger
}

// Client reads the latest glucose value from Dexcom Share.
type Client struct {
	http      *resty.Client
	account   string
	password  string
	appID     string
	accountID string
	sessionID string
	logger    *zap.Logger
}

// NewClient builds a Client for the configured region. Credentials are not
// checked here; a missing account or password fails the first Fetch.
func NewClient(opts Options) (*Client, error) {
	region, err := lookupRegion(opts.Region)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = region.baseURL
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent).
		SetLogger(logger.Sugar())

	return &Client{
		http:     httpClient,
		account:  strings.TrimSpace(opts.Account),
		password: opts.Password,
		appID:    region.applicationID,
		logger:   logger,
	}, nil
}

// Fetch returns the most recent reading in mmol/L. An empty result from the
// service is reported as glucose.Missing with a nil error.
func (c *Client) Fetch(ctx context.Context) (glucose.Reading, error) {
	if c == nil {
		return glucose.Missing, fmt.Errorf("client is nil")
	}
	if c.account == "" || c.password == "" {
		return glucose.Missing, fmt.Errorf("%w: ACCOUNT and PASSWORD must be set", source.ErrCredentials)
	}

	if c.sessionID == "" {
		if err := c.login(ctx); err != nil {
			return glucose.Missing, err
		}
	}

	values, err := c.readLatest(ctx)
	if errors.Is(err, ErrSessionExpired) {
		c.logger.Info("dexcom session expired, logging in again")
		c.sessionID = ""
		if err := c.login(ctx); err != nil {
			return glucose.Missing, err
		}
		values, err = c.readLatest(ctx)
	}
	if err != nil {
		return glucose.Missing, err
	}
	if len(values) == 0 {
		return glucose.Missing, nil
	}
	return values[0].reading(), nil
}

func (c *Client) login(ctx context.Context) error {
	if c.accountID == "" {
		var accountID string
		err := c.post(ctx, pathAuthenticate, nil, authenticateRequest{
			AccountName:   c.account,
			Password:      c.password,
			ApplicationID: c.appID,
		}, &accountID)
		if err != nil {
			return fmt.Errorf("authenticate account: %w", err)
		}
		if err := validateID(accountID); err != nil {
			return fmt.Errorf("authenticate account: %w", err)
		}
		c.accountID = accountID
	}

	var sessionID string
	err := c.post(ctx, pathLogin, nil, loginRequest{
		AccountID:     c.accountID,
		Password:      c.password,
		ApplicationID: c.appID,
	}, &sessionID)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := validateID(sessionID); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	c.sessionID = sessionID
	c.logger.Debug("dexcom session established")
	return nil
}

func (c *Client) readLatest(ctx context.Context) ([]glucoseValue, error) {
	query := map[string]string{
		"sessionId": c.sessionID,
		"minutes":   latestWindowMinutes,
		"maxCount":  latestMaxCount,
	}
	var values []glucoseValue
	if err := c.post(ctx, pathLatest, query, nil, &values); err != nil {
		return nil, fmt.Errorf("read latest glucose: %w", err)
	}
	return values, nil
}

func (c *Client) post(ctx context.Context, path string, query map[string]string, body, dest any) error {
	req := c.http.R().
		SetContext(ctx).
		ForceContentType("application/json").
		SetResult(dest)
	if query != nil {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	if resp.IsError() {
		return responseError(path, resp.StatusCode(), resp.Body())
	}
	return nil
}

// validateID rejects ids that are not UUIDs and the all-zero UUID the
// service hands out when login silently fails.
func validateID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("unexpected id %q: %w", id, err)
	}
	if parsed == uuid.Nil {
		return fmt.Errorf("%w: service rejected the account", source.ErrCredentials)
	}
	return nil
}

func mgdlToMmol(mgdl float64) float64 {
	return math.Round(mgdl*MmolConversionFactor*10) / 10
}
