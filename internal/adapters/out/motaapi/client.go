package motaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/core/ports"
	"mota/internal/pkg/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// HeaderRequestID correlates gateway and backend logs.
	HeaderRequestID = "X-Request-ID"
	// HeaderExpectedStatus carries the status a write was validated against.
	HeaderExpectedStatus = "X-Expected-Status"
)

var errNotFound = errors.New("backend resource not found")

var _ ports.OrderGateway = (*Client)(nil)

// Client implements ports.OrderGateway over the backend REST API.
//
//	client, err := motaapi.NewClient("http://mota-api:8080", 5*time.Second, logger)
//	if err != nil {
//	    return err
//	}
//	o, err := client.Get(ctx, kernel.MustNewID(42))
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
}

// NewClient validates the base URL. timeout bounds every request; a request
// that exceeds it fails with ports.ErrBackendTimeout and is not retried.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", fmt.Errorf("unsupported scheme %q", u.Scheme))
	}
	if timeout <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("timeout", timeout, "1ns", "unbounded")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With(zap.String("component", "motaapi")),
	}, nil
}

// Get fetches GET /pedidos/{id}.
func (c *Client) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := c.do(ctx, http.MethodGet, "/pedidos/"+id.String(), nil, nil, &dto)
	if errors.Is(err, errNotFound) {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	if err != nil {
		return nil, err
	}

	o, err := toDomain(dto)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid order record %s: %w", ports.ErrBackendUnavailable, id, err)
	}
	return o, nil
}

// ListByStatus fetches GET /pedidos/estatus/{code}. A 404 means no orders.
// Records the domain cannot restore are logged and skipped.
func (c *Client) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := c.do(ctx, http.MethodGet, "/pedidos/estatus/"+strconv.Itoa(status.Code()), nil, nil, &dtos)
	if errors.Is(err, errNotFound) {
		return []*order.Order{}, nil
	}
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			c.logger.Warn("skipping invalid order record", zap.Int64("order_id", dto.ID), zap.Error(convErr))
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// UpdateStatus sends PUT /pedidos/{id}/estatus.
func (c *Client) UpdateStatus(ctx context.Context, id kernel.ID, expected, next order.Status) error {
	if err := errors.Join(id.Validate(), expected.Validate(), next.Validate()); err != nil {
		return err
	}

	err := c.do(ctx, http.MethodPut, "/pedidos/"+id.String()+"/estatus", &expected, StatusUpdateDTO{StatusID: next.Code()}, nil)
	if errors.Is(err, errNotFound) {
		return errs.NewObjectNotFoundError("order", id)
	}
	return err
}

// UpdateParticipants sends PUT /pedidos/{id} with the three station fields.
func (c *Client) UpdateParticipants(
	ctx context.Context,
	id kernel.ID,
	expected order.Status,
	participants order.Participants,
) error {
	if err := errors.Join(id.Validate(), expected.Validate()); err != nil {
		return err
	}

	err := c.do(ctx, http.MethodPut, "/pedidos/"+id.String(), &expected, participantsToDTO(participants), nil)
	if errors.Is(err, errNotFound) {
		return errs.NewObjectNotFoundError("order", id)
	}
	return err
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	expected *order.Status,
	body, out any,
) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrBackendUnavailable, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if expected != nil {
		req.Header.Set(HeaderExpectedStatus, strconv.Itoa(expected.Code()))
	}

	log := c.logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
	)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("backend request failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	log.Debug("backend responded", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(started)))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode == http.StatusConflict, resp.StatusCode == http.StatusPreconditionFailed:
		return ports.ErrOrderStateChanged
	case resp.StatusCode == http.StatusGatewayTimeout, resp.StatusCode == http.StatusRequestTimeout:
		return ports.ErrBackendTimeout
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s answered %d: %s",
			ports.ErrBackendUnavailable, method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %w", ports.ErrBackendTimeout, err)
		}
		return fmt.Errorf("%w: decode %s response: %w", ports.ErrBackendUnavailable, path, err)
	}
	return nil
}

func classifyTransportError(err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: %w", ports.ErrBackendTimeout, err)
	}
	return fmt.Errorf("%w: %w", ports.ErrBackendUnavailable, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
