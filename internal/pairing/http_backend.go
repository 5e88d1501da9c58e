package pairing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lifeline/internal/delivery/http/router/handler"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const defaultClientTimeout = 15 * time.Second

// APIError is an error envelope returned by the server. It matches the
// domain error with the same code under errors.Is.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	appErr, ok := target.(domainerrors.AppError)

	return ok && appErr.ErrorCode() == e.Code
}

type httpBackend struct {
	baseURL *url.URL
	client  *http.Client
	dialer  *websocket.Dialer
}

// NewHTTPBackend talks to the lifeline API at baseURL. The approval
// subscription uses the websocket stream.
func NewHTTPBackend(baseURL string, timeout time.Duration) (Backend, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("unsupported scheme %q", u.Scheme)
	}
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}

	return &httpBackend{
		baseURL: u,
		client:  &http.Client{Timeout: timeout},
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: timeout,
		},
	}, nil
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (b *httpBackend) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL.String()+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "decode %s %s", method, path)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: resp.Status}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}

		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "decode data")
		}
	}

	return nil
}

type setupRequest struct {
	SubjectName     string                  `json:"subject_name"`
	Settings        *entity.MonitorSettings `json:"settings,omitempty"`
	RecipientTokens []string                `json:"recipient_tokens,omitempty"`
}

func (b *httpBackend) SetupFamily(ctx context.Context, in *usecase.SetupInput) (*usecase.SetupResult, error) {
	var result usecase.SetupResult
	err := b.do(ctx, http.MethodPost, "/v1/families", setupRequest{
		SubjectName:     in.SubjectName,
		Settings:        in.Settings,
		RecipientTokens: in.RecipientTokens,
	}, &result)
	if err != nil {
		return nil, err
	}
	if result.Family == nil {
		return nil, errors.New("setup response without family")
	}

	return &result, nil
}

func (b *httpBackend) GetApproval(ctx context.Context, familyID uuid.UUID) (entity.ApprovalState, error) {
	var resp handler.ApprovalResponse
	if err := b.do(ctx, http.MethodGet, "/v1/families/"+familyID.String()+"/approval", nil, &resp); err != nil {
		return "", err
	}

	return resp.ApprovalState, nil
}

func (b *httpBackend) CancelPairing(ctx context.Context, code string, familyID uuid.UUID) error {
	path := "/v1/pairing/codes/" + url.PathEscape(code) + "?family_id=" + familyID.String()
	err := b.do(ctx, http.MethodDelete, path, nil, nil)
	if errors.Is(err, domainerrors.ErrCodeNotFound) {
		return nil
	}

	return err
}

func (b *httpBackend) RecordActivity(ctx context.Context, familyID uuid.UUID, at time.Time) error {
	return b.do(ctx, http.MethodPost, "/v1/families/"+familyID.String()+"/activity", handler.ActivityRequest{At: &at}, nil)
}

// WatchApproval reads the approval stream until the server closes it or
// ctx ends.
func (b *httpBackend) WatchApproval(ctx context.Context, familyID uuid.UUID, onChange func(entity.ApprovalState)) error {
	wsURL := *b.baseURL
	wsURL.Scheme = "ws"
	if b.baseURL.Scheme == "https" {
		wsURL.Scheme = "wss"
	}
	wsURL.Path += "/v1/families/" + familyID.String() + "/approval/stream"

	conn, resp, err := b.dialer.DialContext(ctx, wsURL.String(), nil)
	if err != nil {
		if resp != nil {
			return errors.Wrapf(err, "dial approval stream: %s", resp.Status)
		}

		return errors.Wrap(err, "dial approval stream")
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()

	for {
		var msg handler.ApprovalMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}

			return errors.Wrap(err, "read approval stream")
		}
		onChange(msg.ApprovalState)
	}
}
