package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// Client клиент для работы с StaffService
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	log        Logger
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		validate: validator.New(),
		log:      log,
	}
}

// GetSalonStaff получает мастеров салона вместе с их рабочими часами
func (c *Client) GetSalonStaff(ctx context.Context, salonID int64) ([]Staff, error) {
	url := fmt.Sprintf("%s/internal/salons/%d/staff", c.baseURL, salonID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrSalonNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим и валидируем ответ на границе, дальше в сервис идут только проверенные данные
	var payload SalonStaffResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrMalformedResponse, err)
	}
	if err := c.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.SalonID != salonID {
		return nil, fmt.Errorf("%w: salon_id %d does not match requested %d", ErrMalformedResponse, payload.SalonID, salonID)
	}

	staff := make([]Staff, 0, len(payload.Staff))
	for _, dto := range payload.Staff {
		member, err := dto.ToStaff()
		if err != nil {
			c.log.Warn("StaffService: invalid working hours for salon_id=%d: %v", salonID, err)
			return nil, err
		}
		staff = append(staff, member)
	}

	c.log.Info("StaffService: fetched %d staff members for salon_id=%d", len(staff), salonID)
	return staff, nil
}
