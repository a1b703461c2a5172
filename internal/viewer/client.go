package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/custview/custview/internal/model"
)

const (
	// DefaultFetchTimeout bounds one list request end to end.
	DefaultFetchTimeout = 10 * time.Second
	// DialTimeout is the connection timeout.
	DialTimeout = 5 * time.Second

	// maxResponseBytes caps how much of a list response is read.
	maxResponseBytes = 32 << 20
)

// ErrUnexpectedStatus is returned when the API answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Fetcher loads the customer list for a state's page and sort key.
type Fetcher interface {
	FetchCustomers(ctx context.Context, page int, sortBy SortKey) ([]*model.Customer, error)
}

// Client fetches customers from the query API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates an HTTP client with bounded timeouts for API calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   DialTimeout,
			ResponseHeaderTimeout: timeout,
			MaxIdleConnsPerHost:   2,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// NewClient creates a Client for the API at baseURL. httpClient may be nil.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(DefaultFetchTimeout)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// FetchCustomers calls GET /customers?page=&sortBy= and decodes the array.
func (c *Client) FetchCustomers(ctx context.Context, page int, sortBy SortKey) ([]*model.Customer, error) {
	endpoint, err := url.JoinPath(c.baseURL, "customers")
	if err != nil {
		return nil, fmt.Errorf("build customers url: %w", err)
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("sortBy", sortBy.String())
	endpoint += "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "custview-viewer/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch customers: %w", err)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxResponseBytes)
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(body).Decode(&apiErr)
		if apiErr.Error != "" {
			return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var customers []*model.Customer
	if err := json.NewDecoder(body).Decode(&customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	if customers == nil {
		customers = []*model.Customer{}
	}
	return customers, nil
}
