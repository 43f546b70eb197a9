// Package backend provides an HTTP client for the finadvisor REST backend.
// All entities are backend-owned; this package only fetches, mutates and
// decodes them, normalizing failures into apperrors values.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	apperrors "finadvisor/internal/errors"
)

func init() {
	// The backend serves and expects money fields as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Request identity headers. InitData carries the signed Telegram Mini App
// payload; the test header is honored by the backend only in test
// deployments.
const (
	HeaderInitData   = "init-data"
	HeaderTestUserID = "X-Test-User-Id"
)

// DefaultTestUserID is used when no test user id has been stored locally.
const DefaultTestUserID = "1"

// callClass selects the client-side timeout for a request. Ordinary CRUD
// uses the request class; AI consultation calls get a much longer budget.
type callClass int

const (
	classRequest callClass = iota
	classConsultation
)

// Identity is the per-request caller identity forwarded to the backend.
type Identity struct {
	InitData string
}

type identityKey struct{}

// WithIdentity returns a context carrying the request identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity carried by ctx, or a zero Identity.
func IdentityFrom(ctx context.Context) Identity {
	if id, ok := ctx.Value(identityKey{}).(Identity); ok {
		return id
	}
	return Identity{}
}

// TestUserSource supplies the locally remembered test user id.
type TestUserSource interface {
	TestUserID() string
}

// Options configures a Client.
type Options struct {
	// RequestTimeout bounds ordinary CRUD calls. Zero means 10s.
	RequestTimeout time.Duration
	// ConsultationTimeout bounds AI consultation calls. Zero means 90s.
	ConsultationTimeout time.Duration
	// TestUsers supplies the test user id for test deployments. Nil falls
	// back to DefaultTestUserID.
	TestUsers TestUserSource
}

// Client communicates with the finadvisor backend API.
type Client struct {
	baseURL             string
	httpClient          *http.Client
	requestTimeout      time.Duration
	consultationTimeout time.Duration
	testUsers           TestUserSource

	// env-info probe result, memoized for the process lifetime
	envOnce sync.Once
	envInfo *EnvInfo
}

// NewClient creates a new backend API client.
func NewClient(baseURL string, httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.ConsultationTimeout <= 0 {
		opts.ConsultationTimeout = 90 * time.Second
	}
	return &Client{
		baseURL:             strings.TrimRight(baseURL, "/"),
		httpClient:          httpClient,
		requestTimeout:      opts.RequestTimeout,
		consultationTimeout: opts.ConsultationTimeout,
		testUsers:           opts.TestUsers,
	}
}

// EnvInfo probes GET /api/env-info once per process. Test deployments
// return environment details; everything else (404, errors) yields nil.
// The probe never carries identity headers and never fails a caller.
func (c *Client) EnvInfo(ctx context.Context) *EnvInfo {
	c.envOnce.Do(func() {
		probeCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, c.baseURL+"/api/env-info", nil)
		if err != nil {
			return
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return
		}
		var info EnvInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return
		}
		c.envInfo = &info
	})
	return c.envInfo
}

func (c *Client) testUserID() string {
	if c.testUsers != nil {
		if id := c.testUsers.TestUserID(); id != "" {
			return id
		}
	}
	return DefaultTestUserID
}

// identityHeaders resolves the identity header for a request: the Telegram
// initData when present, otherwise the test user id in test deployments.
func (c *Client) identityHeaders(ctx context.Context, h http.Header) {
	id := IdentityFrom(ctx)
	if id.InitData != "" {
		h.Set(HeaderInitData, id.InitData)
		return
	}
	if env := c.EnvInfo(ctx); env != nil && env.Environment == "test" {
		h.Set(HeaderTestUserID, c.testUserID())
	}
}

func (c *Client) timeoutFor(class callClass) time.Duration {
	if class == classConsultation {
		return c.consultationTimeout
	}
	return c.requestTimeout
}

// withTimeout applies the class timeout unless the caller's context
// already carries a deadline; a caller-supplied deadline wins.
func (c *Client) withTimeout(ctx context.Context, class callClass) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeoutFor(class))
}

// do performs a JSON request against the backend and decodes the response
// into out (when non-nil). Non-2xx responses are mapped to apperrors.
func (c *Client) do(ctx context.Context, class callClass, method, path string, query url.Values, body, out any) error {
	ctx, cancel := c.withTimeout(ctx, class)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.identityHeaders(ctx, req.Header)

	return c.send(req, out)
}

// upload performs a multipart file upload. The JSON content type is
// deliberately absent so the multipart writer controls the boundary.
func (c *Client) upload(ctx context.Context, path, filename string, file io.Reader, out any) error {
	ctx, cancel := c.withTimeout(ctx, classRequest)
	defer cancel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("reading upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalizing upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.identityHeaders(ctx, req.Header)

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.Wrap(apperrors.ErrTimeout, err)
		}
		return apperrors.Wrap(apperrors.ErrBackend, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.responseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.ErrBackend, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

// responseError maps a non-2xx response to the error taxonomy: 401 is
// auth-required, 403 with a premium marker is subscription-required,
// anything else surfaces the raw body text (or the status code).
func (c *Client) responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	text := strings.TrimSpace(string(raw))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.Wrap(apperrors.ErrAuthRequired, fmt.Errorf("status 401: %s", text))
	case resp.StatusCode == http.StatusForbidden && strings.Contains(strings.ToLower(text), "premium"):
		return apperrors.Wrap(apperrors.ErrSubscriptionRequired, fmt.Errorf("status 403: %s", text))
	case text != "":
		return apperrors.WithMessage(apperrors.ErrBackend, text)
	default:
		return apperrors.WithMessage(apperrors.ErrBackend, fmt.Sprintf("Ошибка: %d", resp.StatusCode))
	}
}
