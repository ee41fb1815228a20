package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
)

// envelope mirrors the API's response wrapper.
type envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Error     string          `json:"error"`
}

// TestContext carries one scenario's HTTP state: the tokens of the actors
// logged in so far, values saved from earlier responses, and the last response.
type TestContext struct {
	baseURL string
	client  *http.Client

	tokens   map[string]string
	saved    map[string]string
	clientIP string

	lastStatus int
	lastBody   []byte
	last       envelope
}

func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Reset clears per-scenario state.
func (tc *TestContext) Reset() {
	tc.tokens = map[string]string{}
	tc.saved = map[string]string{}
	// each scenario presents as its own client so per-IP budgets do not leak
	tc.clientIP = fmt.Sprintf("10.%d.%d.%d", rand.IntN(256), rand.IntN(256), 1+rand.IntN(254))
	tc.lastStatus = 0
	tc.lastBody = nil
	tc.last = envelope{}
}

// Expand replaces {name} placeholders with values saved earlier.
func (tc *TestContext) Expand(s string) string {
	for k, v := range tc.saved {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

func (tc *TestContext) Save(name, value string) { tc.saved[name] = value }

func (tc *TestContext) SetToken(actor, token string) { tc.tokens[actor] = token }

func (tc *TestContext) HasToken(actor string) bool {
	_, ok := tc.tokens[actor]
	return ok
}

// Do sends body (already JSON, may be empty) as actor; actor "" is anonymous.
func (tc *TestContext) Do(ctx context.Context, method, path, actor, body string) error {
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(tc.Expand(body))
	}
	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+tc.Expand(path), rdr)
	if err != nil {
		return err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Forwarded-For", tc.clientIP)
	if actor != "" {
		token, ok := tc.tokens[actor]
		if !ok {
			return fmt.Errorf("no token for %q; log in first", actor)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	tc.lastStatus = resp.StatusCode
	tc.lastBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	tc.last = envelope{}
	if len(tc.lastBody) > 0 {
		if err := json.Unmarshal(tc.lastBody, &tc.last); err != nil {
			return fmt.Errorf("decode response %q: %w", tc.lastBody, err)
		}
	}
	return nil
}

func (tc *TestContext) LastStatus() int { return tc.lastStatus }

func (tc *TestContext) LastError() string { return tc.last.Error }

// Field reads a dotted path ("id", "items.0.status") out of the last data payload.
func (tc *TestContext) Field(path string) (string, error) {
	var data any
	if err := json.Unmarshal(tc.last.Data, &data); err != nil {
		return "", fmt.Errorf("decode data: %w", err)
	}
	cur := data
	var parts []string
	if path != "" {
		parts = strings.Split(path, ".")
	}
	for _, part := range parts {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return "", fmt.Errorf("field %q missing in %s", path, tc.last.Data)
			}
			cur = v
		case []any:
			var i int
			if _, err := fmt.Sscanf(part, "%d", &i); err != nil || i < 0 || i >= len(node) {
				return "", fmt.Errorf("index %q out of range in %s", part, path)
			}
			cur = node[i]
		default:
			return "", fmt.Errorf("cannot descend into %q at %s", path, part)
		}
	}
	switch v := cur.(type) {
	case string:
		return v, nil
	case float64:
		return fmt.Sprintf("%v", v), nil
	default:
		b, _ := json.Marshal(v)
		return string(b), nil
	}
}

// Count returns the length of the data array (or of data.items for pages).
func (tc *TestContext) Count() (int, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(tc.last.Data, &list); err == nil {
		return len(list), nil
	}
	var page struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(tc.last.Data, &page); err != nil {
		return 0, fmt.Errorf("data is neither a list nor a page: %s", tc.last.Data)
	}
	return len(page.Items), nil
}
