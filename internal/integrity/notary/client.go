package notary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"worktime/internal/platform/config"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultPollInterval = 2 * time.Second
	defaultPollAttempts = 5

	// maxErrorBody bounds how much of a failed response is kept for logs.
	maxErrorBody = 512

	tspProvider = "EADTRUST"
	tspType     = "TIMESTAMP"
)

var errTokenPending = errors.New("tsp token pending")

// EvidenceRequest describes the payload to timestamp.
type EvidenceRequest struct {
	Name        string
	Description string
	Data        string
}

// Token is a qualified timestamp issued for an evidence.
type Token struct {
	EvidenceID string
	Value      string
	Timestamp  time.Time
}

// Client speaks the QTSP REST API. Every request carries an OAuth2
// client-credentials bearer token obtained from the configured token URL.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
	pollAttempts int
}

// NewClient builds a client from cfg. The token source is cached for the
// lifetime of the client.
func NewClient(cfg config.QTSPConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	creds := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	base := &http.Client{Timeout: timeout}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   creds.Client(tokenCtx),
		pollInterval: cfg.PollInterval,
		pollAttempts: cfg.PollAttempts,
	}
	c.httpClient.Timeout = timeout
	if c.pollInterval <= 0 {
		c.pollInterval = defaultPollInterval
	}
	if c.pollAttempts <= 0 {
		c.pollAttempts = defaultPollAttempts
	}
	return c
}

type createdResource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateCaseFile opens the per-company container for evidence groups.
func (c *Client) CreateCaseFile(ctx context.Context, name, description string) (string, error) {
	var out createdResource
	body := map[string]string{"name": name, "description": description}
	if err := c.do(ctx, "create_case_file", http.MethodPost, "/case-files", body, &out); err != nil {
		return "", err
	}
	return requireID("create_case_file", out.ID)
}

// CreateEvidenceGroup opens a monthly group inside a case file.
func (c *Client) CreateEvidenceGroup(ctx context.Context, caseFileID, name string) (string, error) {
	var out createdResource
	path := "/case-files/" + url.PathEscape(caseFileID) + "/evidence-groups"
	if err := c.do(ctx, "create_evidence_group", http.MethodPost, path, map[string]string{"name": name}, &out); err != nil {
		return "", err
	}
	return requireID("create_evidence_group", out.ID)
}

type evidenceBody struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Data        string  `json:"data"`
	TSP         tspBody `json:"tsp"`
}

type tspBody struct {
	Provider string `json:"provider"`
	Type     string `json:"type"`
}

// CreateEvidence submits data for timestamping and returns the provider's
// evidence id. The token is issued asynchronously; see AwaitToken.
func (c *Client) CreateEvidence(ctx context.Context, groupID string, req EvidenceRequest) (string, error) {
	var out createdResource
	body := evidenceBody{
		Name:        req.Name,
		Description: req.Description,
		Data:        req.Data,
		TSP:         tspBody{Provider: tspProvider, Type: tspType},
	}
	path := "/evidence-groups/" + url.PathEscape(groupID) + "/evidences"
	if err := c.do(ctx, "create_evidence", http.MethodPost, path, body, &out); err != nil {
		return "", err
	}
	return requireID("create_evidence", out.ID)
}

type evidenceStatus struct {
	ID           string `json:"id"`
	TSPToken     string `json:"tspToken"`
	TSPTimestamp string `json:"tspTimestamp"`
}

// GetToken fetches the evidence and returns its token, or nil when the
// provider has not issued one yet.
func (c *Client) GetToken(ctx context.Context, evidenceID string) (*Token, error) {
	var out evidenceStatus
	if err := c.do(ctx, "get_evidence", http.MethodGet, "/evidences/"+url.PathEscape(evidenceID), nil, &out); err != nil {
		return nil, err
	}
	if out.TSPToken == "" {
		return nil, nil
	}
	token := &Token{EvidenceID: evidenceID, Value: out.TSPToken, Timestamp: time.Now().UTC()}
	if out.TSPTimestamp != "" {
		if ts, err := time.Parse(time.RFC3339Nano, out.TSPTimestamp); err == nil {
			token.Timestamp = ts.UTC()
		}
	}
	return token, nil
}

// AwaitToken polls for the evidence token. It returns nil without error when
// the token is still pending after the configured attempts.
func (c *Client) AwaitToken(ctx context.Context, evidenceID string) (*Token, error) {
	var token *Token
	poll := func() error {
		t, err := c.GetToken(ctx, evidenceID)
		if err != nil {
			return backoff.Permanent(err)
		}
		if t == nil {
			return errTokenPending
		}
		token = t
		return nil
	}
	schedule := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.pollInterval), uint64(c.pollAttempts-1)),
		ctx,
	)
	err := backoff.Retry(poll, schedule)
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, errTokenPending):
		return nil, nil
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return nil, newError(ErrorTimeout, "get_evidence", 0, "polling interrupted", err)
	default:
		return nil, err
	}
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return newError(ErrorInternal, op, 0, "encode request", err)
		}
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return newError(ErrorInternal, op, 0, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransport(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifyStatus(op, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newError(ErrorBadData, op, resp.StatusCode, "decode response", err)
	}
	return nil
}

func requireID(op, id string) (string, error) {
	if id == "" {
		return "", newError(ErrorBadData, op, 0, "response is missing an id", nil)
	}
	return id, nil
}
