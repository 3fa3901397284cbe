// Package client talks to the ClassSync API over JSON/HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"classsync/internal/ctxdata"
	"classsync/internal/errdefs"
	"classsync/internal/model"

	"github.com/google/uuid"
)

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient replaces the underlying transport; used by tests.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if traceID, ok := ctxdata.GetTraceID(ctx); ok {
		req.Header.Set("X-Trace-Id", traceID)
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", errdefs.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("%s %s: %w", method, path, statusErr(resp.StatusCode, e.Error))
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusErr maps a response status back to the error kinds the server
// started from.
func statusErr(code int, message string) error {
	var kind error
	switch {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		kind = errdefs.ErrValidation
	case code == http.StatusUnauthorized:
		kind = errdefs.ErrAuthentication
	case code == http.StatusForbidden && message == errdefs.ErrBanned.Error():
		kind = errdefs.ErrBanned
	case code == http.StatusForbidden:
		kind = errdefs.ErrPermissionDenied
	case code == http.StatusNotFound:
		kind = errdefs.ErrNotFound
	case code == http.StatusConflict:
		kind = errdefs.ErrAlreadyExists
	case code >= 500:
		kind = errdefs.ErrUnavailable
	default:
		kind = errors.New(http.StatusText(code))
	}
	if message == "" || message == kind.Error() {
		return kind
	}
	return fmt.Errorf("%w: %s", kind, message)
}

func (c *Client) SignIn(ctx context.Context, input *model.SignInInput) (*model.Session, error) {
	var s model.Session
	if err := c.do(ctx, http.MethodPost, "/auth/signin", input, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) SignUp(ctx context.Context, input *model.SignUpInput) (*model.Session, error) {
	var s model.Session
	if err := c.do(ctx, http.MethodPost, "/auth/signup", input, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) GetMe(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	if err := c.do(ctx, http.MethodGet, "/profiles/me", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	var out []model.Profile
	if err := c.do(ctx, http.MethodGet, "/profiles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetEnrollment(ctx context.Context, classIDs []uuid.UUID) (*model.Profile, error) {
	var p model.Profile
	if err := c.do(ctx, http.MethodPut, "/profiles/me/enrollment", &model.SetEnrollmentInput{ClassIDs: classIDs}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) SetBanned(ctx context.Context, profileID uuid.UUID, banned bool) (*model.Profile, error) {
	var p model.Profile
	path := "/profiles/" + url.PathEscape(profileID.String()) + "/ban"
	if err := c.do(ctx, http.MethodPut, path, &model.SetBannedInput{Banned: banned}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ListClasses(ctx context.Context) ([]model.ClassRecord, error) {
	var out []model.ClassRecord
	if err := c.do(ctx, http.MethodGet, "/classes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateClass(ctx context.Context, input *model.CreateClassInput) (*model.ClassRecord, error) {
	var out model.ClassRecord
	if err := c.do(ctx, http.MethodPost, "/classes", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetClassStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) error {
	return c.do(ctx, http.MethodPut, "/classes/"+id.String()+"/status", &model.SetStatusInput{Status: status}, nil)
}

func (c *Client) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	var out []model.Assignment
	if err := c.do(ctx, http.MethodGet, "/assignments", nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Storage = model.StorageRemote
	}
	return out, nil
}

func (c *Client) InsertAssignment(ctx context.Context, input *model.CreateAssignmentInput) (*model.Assignment, error) {
	var out model.Assignment
	if err := c.do(ctx, http.MethodPost, "/assignments", input, &out); err != nil {
		return nil, err
	}
	out.Storage = model.StorageRemote
	return &out, nil
}

func (c *Client) SetAssignmentStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) error {
	return c.do(ctx, http.MethodPut, "/assignments/"+id.String()+"/status", &model.SetStatusInput{Status: status}, nil)
}

func (c *Client) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/assignments/"+id.String(), nil, nil)
}

func (c *Client) ListStates(ctx context.Context) ([]model.PersonalState, error) {
	var out []model.PersonalState
	if err := c.do(ctx, http.MethodGet, "/states", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertState sends the full merged state. The server takes the owner from
// the token, so state.UserID is not transmitted.
func (c *Client) UpsertState(ctx context.Context, state model.PersonalState, seq int64) error {
	return c.do(ctx, http.MethodPut, "/states/"+state.AssignmentID.String(), &model.UpsertStateInput{
		Completed: state.Completed,
		Note:      state.Note,
		Link:      state.Link,
		Seq:       seq,
	}, nil)
}

func (c *Client) GetSettings(ctx context.Context) (*model.AppSettings, error) {
	var out model.AppSettings
	if err := c.do(ctx, http.MethodGet, "/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetModeration(ctx context.Context, enabled bool) (*model.AppSettings, error) {
	var out model.AppSettings
	if err := c.do(ctx, http.MethodPut, "/settings/moderation", &model.SetModerationInput{Enabled: enabled}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
