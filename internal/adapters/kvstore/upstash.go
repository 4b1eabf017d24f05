package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Upstash talks to an Upstash-compatible Redis REST endpoint. Values are
// whole JSON documents serialized into a single string, so GET /get/{key}
// answers {"result": "<json>"} and a missing key answers {"result": null}.
type Upstash struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewUpstash(baseURL, token string) *Upstash {
	return &Upstash{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type restEnvelope struct {
	Result *string `json:"result"`
	Error  string  `json:"error"`
}

func (s *Upstash) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	if s.baseURL == "" {
		return nil, false, errors.New("kv endpoint not configured (KV_REST_API_URL)")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/get/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("kv get %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("kv get %s: status %d", key, resp.StatusCode)
	}
	var env restEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, false, fmt.Errorf("kv get %s: decode: %w", key, err)
	}
	if env.Error != "" {
		return nil, false, fmt.Errorf("kv get %s: %s", key, env.Error)
	}
	if env.Result == nil {
		return nil, false, nil
	}
	return json.RawMessage(*env.Result), true, nil
}

func (s *Upstash) Set(ctx context.Context, key string, value any) error {
	if s.baseURL == "" {
		return errors.New("kv endpoint not configured (KV_REST_API_URL)")
	}
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set %s: marshal: %w", key, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/set/"+url.PathEscape(key), strings.NewReader(string(body)))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("kv set %s: status %d: %s", key, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var env restEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("kv set %s: decode: %w", key, err)
	}
	if env.Error != "" {
		return fmt.Errorf("kv set %s: %s", key, env.Error)
	}
	return nil
}
