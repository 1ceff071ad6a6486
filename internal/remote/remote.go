// Package remote calls an external analyze service and guarantees local
// fallback: any transport problem, including malformed responses, silently
// retries the computation in process with identical semantics.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"GoCaesar/internal/ranker"
)

// Breaker produces a ranked analysis for a ciphertext. *ranker.Ranker
// implements it; Client wraps another Breaker with a remote first attempt.
type Breaker interface {
	Analyze(ciphertext, lang string) ranker.Analysis
}

// maxResponseBytes bounds how much of a remote response is read.
const maxResponseBytes = 1 << 20

// Client tries a remote analyze endpoint first and falls back to the local
// breaker. The fallback is never surfaced as an error; callers always get
// an Analysis.
type Client struct {
	baseURL string
	http    *http.Client
	local   Breaker
	logger  *zap.Logger
}

// NewClient creates a Client for the analyze endpoint at baseURL, backed
// by local for fallback. local must not be nil.
func NewClient(baseURL string, timeout time.Duration, local Breaker, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		local:   local,
		logger:  logger,
	}
}

type analyzeRequest struct {
	CipherText string `json:"cipherText"`
	Lang       string `json:"lang"`
}

// Analyze posts the ciphertext to the remote endpoint. On transport error,
// non-2xx status, or a malformed payload it recomputes locally. Both paths
// honor the same ranking contract, so callers cannot tell which one
// answered.
func (c *Client) Analyze(ciphertext, lang string) ranker.Analysis {
	a, err := c.tryRemote(ciphertext, lang)
	if err != nil {
		c.logger.Debug("remote analyze unavailable, computing locally",
			zap.String("url", c.baseURL),
			zap.Error(err),
		)
		return c.local.Analyze(ciphertext, lang)
	}
	return a
}

func (c *Client) tryRemote(ciphertext, lang string) (ranker.Analysis, error) {
	body, err := json.Marshal(analyzeRequest{CipherText: ciphertext, Lang: lang})
	if err != nil {
		return ranker.Analysis{}, fmt.Errorf("encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.http.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return ranker.Analysis{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ranker.Analysis{}, fmt.Errorf("post: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ranker.Analysis{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return ranker.Analysis{}, fmt.Errorf("read response: %w", err)
	}

	var a ranker.Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		// Malformed payloads are a transport failure, not a parse error
		// to report.
		return ranker.Analysis{}, fmt.Errorf("decode response: %w", err)
	}
	if err := validate(a); err != nil {
		return ranker.Analysis{}, fmt.Errorf("invalid response: %w", err)
	}
	return a, nil
}

// validate rejects responses that violate the ranking contract.
func validate(a ranker.Analysis) error {
	if a.Score < 0 || a.Score > 1 {
		return fmt.Errorf("score %f out of [0,1]", a.Score)
	}
	if len(a.Candidates) > ranker.TopN {
		return fmt.Errorf("%d candidates, want at most %d", len(a.Candidates), ranker.TopN)
	}
	for i, cand := range a.Candidates {
		if cand.Key < 0 || cand.Key >= ranker.KeySpace {
			return fmt.Errorf("candidate %d key %d out of range", i, cand.Key)
		}
		if cand.Score < 0 || cand.Score > 1 {
			return fmt.Errorf("candidate %d score %f out of [0,1]", i, cand.Score)
		}
		if i > 0 && cand.Score > a.Candidates[i-1].Score {
			return fmt.Errorf("candidates not sorted at %d", i)
		}
	}
	if a.Key != nil && (*a.Key < 0 || *a.Key >= ranker.KeySpace) {
		return fmt.Errorf("key %d out of range", *a.Key)
	}
	return nil
}
