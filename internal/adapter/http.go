package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/utils"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

const tracerName = "github.com/owenmerry/skyscanner-flight-search-sub002/internal/adapter"

type httpFlightAPI struct {
	client *utils.HTTPClient
	tracer trace.Tracer

	logger *logger.Logger
}

// Option customises [NewHTTPFlightAPI].
type Option func(*httpFlightAPI)

// WithTracerProvider sets the provider used for create/poll spans. The
// global otel provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *httpFlightAPI) {
		h.tracer = tp.Tracer(tracerName)
	}
}

// NewHTTPFlightAPI constructs the resty implementation of [FlightAPI].
// adapterCfg.APIAddress is the API root; "/create" and "/poll/{token}" are
// resolved relative to it.
func NewHTTPFlightAPI(adapterCfg config.Adapter, logger *logger.Logger, opts ...Option) (FlightAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	h := &httpFlightAPI{
		client: client,
		tracer: otel.GetTracerProvider().Tracer(tracerName),
		logger: logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Create implements [FlightAPI]:
//
//	GET /create?from={fromId}&to={toId}&depart={YYYY-MM-DD}[&return={YYYY-MM-DD}]
func (h *httpFlightAPI) Create(ctx context.Context, query models.SearchQuery) (models.SearchResult, error) {
	ctx, span := h.tracer.Start(ctx, "flightapi.create", trace.WithAttributes(
		attribute.String("search.from", query.FromID),
		attribute.String("search.to", query.ToID),
		attribute.String("search.depart", query.DepartDate),
	))
	defer span.End()

	params := map[string]string{
		"from":   query.FromID,
		"to":     query.ToID,
		"depart": query.DepartDate,
	}
	if query.ReturnDate != "" {
		params["return"] = query.ReturnDate
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/create")
	if err != nil {
		return models.SearchResult{}, h.fail(ctx, span, "create", fmt.Errorf("%w: create: %w", ErrRequestFailed, err))
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	if err = mapHTTPError(resp); err != nil {
		return models.SearchResult{}, h.fail(ctx, span, "create", err)
	}

	result, err := decodeResult(resp.Body())
	if err != nil {
		return models.SearchResult{}, h.fail(ctx, span, "create", err)
	}

	h.annotate(span, result)
	return result, nil
}

// Poll implements [FlightAPI]:
//
//	GET /poll/{sessionToken}
func (h *httpFlightAPI) Poll(ctx context.Context, sessionToken string) (models.SearchResult, error) {
	ctx, span := h.tracer.Start(ctx, "flightapi.poll", trace.WithAttributes(
		attribute.String("search.session_token", sessionToken),
	))
	defer span.End()

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("sessionToken", sessionToken).
		Get("/poll/{sessionToken}")
	if err != nil {
		return models.SearchResult{}, h.fail(ctx, span, "poll", fmt.Errorf("%w: poll: %w", ErrRequestFailed, err))
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	if err = mapHTTPError(resp); err != nil {
		return models.SearchResult{}, h.fail(ctx, span, "poll", err)
	}

	result, err := decodeResult(resp.Body())
	if err != nil {
		return models.SearchResult{}, h.fail(ctx, span, "poll", err)
	}

	h.annotate(span, result)
	return result, nil
}

func (h *httpFlightAPI) annotate(span trace.Span, result models.SearchResult) {
	span.SetAttributes(
		attribute.String("search.status", result.Status),
		attribute.String("search.action", result.Action),
		attribute.Int("search.items", len(result.Items)),
	)
}

func (h *httpFlightAPI) fail(ctx context.Context, span trace.Span, call string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	logger.FromContext(ctx).Debug().Err(err).Str("call", call).Msg("flight api call failed")
	return err
}
