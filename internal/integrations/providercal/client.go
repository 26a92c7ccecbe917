package providercal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент календаря провайдера (upstream-система планирования).
// Провайдер фиксирован конфигурацией: сервис работает с одним расписанием.
type Client struct {
	baseURL    string
	providerID int64
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря провайдера
func NewClient(baseURL string, providerID int64, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		providerID: providerID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAppointmentTypes получает каталог типов приёма
func (c *Client) GetAppointmentTypes(ctx context.Context) ([]AppointmentType, error) {
	endpoint := fmt.Sprintf("%s/internal/providers/%d/appointment-types", c.baseURL, c.providerID)

	var types []AppointmentType
	if err := c.getJSON(ctx, endpoint, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// GetAvailability получает окна доступности провайдера за период
func (c *Client) GetAvailability(ctx context.Context, from, to time.Time) ([]AvailabilityWindow, error) {
	endpoint := fmt.Sprintf("%s/internal/providers/%d/availability?%s",
		c.baseURL, c.providerID, periodQuery(from, to))

	var windows []AvailabilityWindow
	if err := c.getJSON(ctx, endpoint, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

// GetAppointments получает записи календаря провайдера за период
func (c *Client) GetAppointments(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	endpoint := fmt.Sprintf("%s/internal/providers/%d/appointments?%s",
		c.baseURL, c.providerID, periodQuery(from, to))

	var appointments []Appointment
	if err := c.getJSON(ctx, endpoint, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// CreateAppointment создает запись в календаре провайдера
func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*CreatedAppointment, error) {
	endpoint := fmt.Sprintf("%s/internal/providers/%d/appointments", c.baseURL, c.providerID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return nil, ErrSlotConflict
	case http.StatusNotFound:
		return nil, ErrTypeNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var created CreatedAppointment
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("CreateAppointment: created appointment id=%d, type=%d, start=%s",
		created.ID, created.AppointmentTypeID, created.Start.Format(time.RFC3339))
	return &created, nil
}

// CreateTask создает задачу-напоминание для провайдера
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) error {
	endpoint := fmt.Sprintf("%s/internal/providers/%d/tasks", c.baseURL, c.providerID)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}

// getJSON выполняет GET-запрос и декодирует ответ
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrTypeNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// periodQuery формирует query-параметры периода в RFC3339
func periodQuery(from, to time.Time) string {
	q := url.Values{}
	q.Set("from", from.UTC().Format(time.RFC3339))
	q.Set("to", to.UTC().Format(time.RFC3339))
	return q.Encode()
}
