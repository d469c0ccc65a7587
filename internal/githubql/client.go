package githubql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"golang.org/x/oauth2"
)

const defaultEndpoint = "https://api.github.com/graphql"

// ErrBadCredentials signals that GitHub rejected the token outright.
var ErrBadCredentials = errors.New("bad credentials")

// Client posts GraphQL requests to the GitHub v4 API.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

func NewClient(token string) *Client {
	httpClient := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return &Client{httpClient: httpClient, endpoint: defaultEndpoint}
}

// NewClientWithEndpoint points the client at a non-default GraphQL endpoint.
func NewClientWithEndpoint(httpClient *http.Client, endpoint string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, endpoint: endpoint}
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	// Top-level message appears on auth rejections instead of a data payload.
	Message string `json:"message"`
}

// Do executes one query and decodes its data payload into out.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	payload, err := sonic.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if env.Message == "Bad credentials" {
		return ErrBadCredentials
	}
	if len(env.Errors) > 0 {
		return fmt.Errorf("query failed: %s", env.Errors[0].Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("empty data payload")
	}
	if err := sonic.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
