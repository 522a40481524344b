package couponservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с внешним сервисом купонов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса купонов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Validate проверяет купон для услуги. Невалидный купон — это не ошибка:
// сервис отвечает 200 с valid=false и причиной в message.
func (c *Client) Validate(ctx context.Context, code string, serviceID int64) (*Validation, error) {
	query := url.Values{}
	query.Set("code", strings.ToUpper(strings.TrimSpace(code)))
	query.Set("serviceId", strconv.FormatInt(serviceID, 10))

	endpoint := fmt.Sprintf("%s/api/validate-coupon?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var validation Validation
	if err := json.NewDecoder(resp.Body).Decode(&validation); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &validation, nil
}

// ValidateWithGracefulDegradation проверяет купон с graceful degradation.
// При недоступности сервиса купонов возвращает ErrServiceDegraded, что
// позволяет создать бронирование с переданными клиентом ценами.
func (c *Client) ValidateWithGracefulDegradation(ctx context.Context, code string, serviceID int64) (*Validation, error) {
	c.log.Info("Validating coupon code=%s for service_id=%d", code, serviceID)

	validation, err := c.Validate(ctx, code, serviceID)
	if err != nil {
		// Недоступность сервиса, timeout, ошибки парсинга — не повод
		// блокировать бронирование. Повышаем уровень логирования до ERROR,
		// чтобы быстрее заметить проблему.
		c.log.Error("CouponService unavailable, applying graceful degradation for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: code=%s, error=%v", ErrServiceDegraded, code, err)
	}

	if !validation.Valid {
		c.log.Info("Coupon code=%s rejected: %s", code, validation.Message)
	} else {
		c.log.Info("Coupon code=%s valid: type=%s, value=%.2f", code, validation.DiscountType, validation.DiscountValue)
	}

	return validation, nil
}
