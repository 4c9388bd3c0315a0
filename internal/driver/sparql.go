package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/agenthands/chronicle/internal/core/model"
	"github.com/agenthands/chronicle/internal/errors"
	"github.com/agenthands/chronicle/internal/logger"
)

const maxResponseBytes = 16 << 20

// QueryServiceError reports a failed call to the query endpoint: transport
// failure, timeout, non-2xx status or an undecodable body.
type QueryServiceError struct {
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *QueryServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("query service returned status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("query service: %v", e.Err)
}

func (e *QueryServiceError) Unwrap() error { return e.Err }

// Is lets errors.Is match the package sentinels.
func (e *QueryServiceError) Is(target error) bool {
	if e.Timeout && target == errors.ErrTimeout {
		return true
	}
	return target == errors.ErrQueryService
}

func isTimeout(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// SPARQLDriver queries a SPARQL endpoint that answers with
// application/sparql-results+json, such as query.wikidata.org.
type SPARQLDriver struct {
	Endpoint  string
	UserAgent string
	Client    *http.Client
	Limiter   *rate.Limiter
}

// NewSPARQLDriver returns a driver with a bounded per-request timeout. A
// non-positive rps disables rate limiting.
func NewSPARQLDriver(endpoint, userAgent string, timeout time.Duration, rps float64, burst int) *SPARQLDriver {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if rps > 0 {
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return &SPARQLDriver{
		Endpoint:  endpoint,
		UserAgent: userAgent,
		Client:    &http.Client{Timeout: timeout},
		Limiter:   limiter,
	}
}

type sparqlValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sparqlResponse struct {
	Results *struct {
		Bindings []map[string]sparqlValue `json:"bindings"`
	} `json:"results"`
}

func (d *SPARQLDriver) ExecuteQuery(ctx context.Context, query string) ([]model.OfficeHolderRecord, error) {
	if d.Limiter != nil {
		if err := d.Limiter.Wait(ctx); err != nil {
			return nil, &QueryServiceError{Err: err}
		}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &QueryServiceError{Err: err}
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	if d.UserAgent != "" {
		req.Header.Set("User-Agent", d.UserAgent)
	}

	start := time.Now()
	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, &QueryServiceError{Timeout: isTimeout(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &QueryServiceError{StatusCode: resp.StatusCode, Err: errors.Newf("%s", snippet)}
	}

	var decoded sparqlResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&decoded); err != nil {
		return nil, &QueryServiceError{Err: errors.Wrap(err, "failed to decode SPARQL response")}
	}
	if decoded.Results == nil {
		return nil, &QueryServiceError{Err: errors.New("response has no results member")}
	}

	records := make([]model.OfficeHolderRecord, 0, len(decoded.Results.Bindings))
	for _, row := range decoded.Results.Bindings {
		rec, ok := recordFromBinding(row)
		if !ok {
			logger.Logger.Debugw("Skipping row without office holder label", logger.FieldCount, len(row))
			continue
		}
		records = append(records, rec)
	}

	logger.FromContext(ctx).Debugw("SPARQL query finished",
		logger.FieldCount, len(records),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return records, nil
}

func recordFromBinding(row map[string]sparqlValue) (model.OfficeHolderRecord, bool) {
	label, ok := row["officeHolderLabel"]
	if !ok || label.Value == "" {
		return model.OfficeHolderRecord{}, false
	}

	opt := func(key string) *string {
		v, ok := row[key]
		if !ok {
			return nil
		}
		s := v.Value
		return &s
	}

	return model.OfficeHolderRecord{
		OfficeHolderLabel: label.Value,
		StartActingDate:   opt("startActingDate"),
		EndActingDate:     opt("endActingDate"),
		BirthDate:         opt("birthDate"),
		DeathDate:         opt("deathDate"),
		PartyShortLabel:   opt("partyShortLabel"),
		StartPartyDate:    opt("startPartyDate"),
		Article:           opt("article"),
	}, true
}
