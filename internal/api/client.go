package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Error - ошибка REST API. Сервер отдает тело вида {"message": "..."},
// статус сохраняется для вызывающей стороны.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Client - клиент REST API бэкенда ресторана. Таймаутов и повторов нет
// намеренно: медленный запрос просто задерживает готовность экрана.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, token string) *Client {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// do выполняет запрос к API: сериализует body в JSON, подставляет bearer
// токен, разбирает ответ в out (если out не nil). Не-2xx ответы
// превращаются в *Error.
func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Error("Request failed")
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(method, path, resp.StatusCode, resp.Header.Get("Content-Type"), raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// decodeError разбирает тело ошибки. Обычный случай - JSON с полем message.
// Особый случай - удаление используемого шаблона смены: MySQL возвращает
// текст с кодом 1451 вместо JSON.
func (c *Client) decodeError(method, path string, status int, contentType string, raw []byte) error {
	c.logger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": status,
	}).Warn("API returned error response")

	if strings.Contains(contentType, "application/json") {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
			return &Error{StatusCode: status, Message: payload.Message}
		}
		return &Error{StatusCode: status, Message: fmt.Sprintf("запрос завершился с ошибкой (код %d)", status)}
	}

	if strings.Contains(string(raw), "1451") {
		return &Error{StatusCode: status, Message: "эта смена уже используется и не может быть удалена"}
	}

	return &Error{StatusCode: status, Message: "неожиданный формат ответа сервера"}
}

func (c *Client) get(path string, out interface{}) error {
	return c.do(http.MethodGet, path, nil, out)
}

func (c *Client) post(path string, body, out interface{}) error {
	return c.do(http.MethodPost, path, body, out)
}

func (c *Client) put(path string, body, out interface{}) error {
	return c.do(http.MethodPut, path, body, out)
}

func (c *Client) delete(path string, body interface{}) error {
	return c.do(http.MethodDelete, path, body, nil)
}
