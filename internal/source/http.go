package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/idilsaglam/kanban/internal/model"
)

// maxBody caps how much of a response is read.
const maxBody = 16 << 20

// HTTP fetches tickets with a single GET request.
type HTTP struct {
	URL     string
	Token   string // optional; sent as a bearer token
	Timeout time.Duration
	Client  *http.Client
	Log     *zap.Logger
}

// NewHTTP returns an HTTP source for url using http.DefaultClient.
func NewHTTP(url string, log *zap.Logger) *HTTP {
	if url == "" {
		url = DefaultURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTP{URL: url, Timeout: 15 * time.Second, Client: http.DefaultClient, Log: log}
}

// Fetch performs the request. It never retries.
func (h *HTTP) Fetch(ctx context.Context) ([]model.WorkItem, error) {
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return []model.WorkItem{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	if tok := stripBearer(strings.TrimSpace(h.Token)); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return []model.WorkItem{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return []model.WorkItem{}, fmt.Errorf("%w: %s returned %s", ErrFetch, h.URL, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return []model.WorkItem{}, fmt.Errorf("%w: read body: %v", ErrFetch, err)
	}

	items, err := Decode(body)
	h.log().Debug("fetched tickets",
		zap.String("url", h.URL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Int("tickets", len(items)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return items, err
}

func (h *HTTP) log() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

func stripBearer(s string) string {
	if strings.HasPrefix(strings.ToLower(s), "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
