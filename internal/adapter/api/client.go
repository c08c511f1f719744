package api

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

	"tareas/internal/adapter/api/dto"
	"tareas/internal/adapter/api/mapper"
	"tareas/internal/core/domain"
	"tareas/internal/core/ports"
	"tareas/internal/session"
	"tareas/pkg/clienterr"
)

// Client translates task operations into REST calls against the backend.
// It holds no task state; every operation is one round trip and the
// backend stays the single source of truth.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

var _ ports.TaskRepository = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, sess *session.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(timeout),
		session: sess,
	}
}

func (c *Client) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := url.Values{}
	if filter.Text != "" {
		query.Set("search", filter.Text)
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.DueDate != nil {
		query.Set("date", filter.DueDate.Format(domain.DateLayout))
	}

	endpoint := c.baseURL + "/tareas"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var items []dto.TaskItem
	if err := doJSON(ctx, c.http, http.MethodGet, endpoint, c.session.Token(), nil, &items); err != nil {
		return nil, err
	}
	return mapper.ToDomainTasks(items)
}

func (c *Client) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	if err := task.ValidateDraft(); err != nil {
		return domain.Task{}, err
	}

	body := mapper.ToTaskItem(task)
	body.ID = nil // the backend assigns ids

	var created dto.TaskItem
	if err := doJSON(ctx, c.http, http.MethodPost, c.baseURL+"/tareas", c.session.Token(), body, &created); err != nil {
		return domain.Task{}, err
	}
	return mapper.ToDomainTask(created)
}

func (c *Client) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	if !task.Persisted() {
		return domain.Task{}, domain.ErrTaskIDRequired
	}

	endpoint := fmt.Sprintf("%s/tareas/%d", c.baseURL, *task.ID)

	var updated dto.TaskItem
	if err := doJSON(ctx, c.http, http.MethodPut, endpoint, c.session.Token(), mapper.ToTaskItem(task), &updated); err != nil {
		return domain.Task{}, err
	}
	return mapper.ToDomainTask(updated)
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrTaskIDRequired
	}
	endpoint := fmt.Sprintf("%s/tareas/%d", c.baseURL, id)
	return doJSON(ctx, c.http, http.MethodDelete, endpoint, c.session.Token(), nil, nil)
}

// doJSON performs one JSON round trip. A missing token still sends the
// request; a 401 then surfaces as an ordinary FetchError.
func doJSON(ctx context.Context, client *http.Client, method, endpoint, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return clienterr.FetchError{StatusCode: 0, Message: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return clienterr.FetchError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// errorMessage best-effort extracts the backend's message field from an
// error body.
func errorMessage(body io.Reader) string {
	var payload dto.MessageResponse
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
