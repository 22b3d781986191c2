package mealdb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	apperrors "github.com/pageza/mealdb-explorer/backend/internal/errors"
	"github.com/pageza/mealdb-explorer/backend/internal/logging"
	"github.com/pageza/mealdb-explorer/backend/internal/metrics"
)

// DefaultBaseURL is the public v1 endpoint of TheMealDB.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

const maxErrorBody = 512

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit is the sustained number of upstream calls per second; zero disables pacing.
	RateLimit float64
	Burst     int
	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
}

// Client talks to the recipe database over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Client
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// SearchMeals searches meals by name. An empty name lists every meal the
// upstream search exposes.
func (c *Client) SearchMeals(ctx context.Context, name string) ([]MealDTO, error) {
	logging.FromContext(ctx).WithField("name", name).Debug("searching meals by name")

	var resp mealsResponse
	if err := c.get(ctx, "search", "/search.php", url.Values{"s": {name}}, &resp); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUpstream, "Failed to search meals", err)
	}
	meals, err := resp.decode()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUpstream, "Failed to search meals", errors.Wrap(err, "decode meals"))
	}
	return meals, nil
}

// LookupMeal fetches the full record of a meal. It returns nil when the id is unknown.
func (c *Client) LookupMeal(ctx context.Context, id string) (*MealDTO, error) {
	logging.FromContext(ctx).WithField("id", id).Debug("fetching meal by id")

	var resp mealsResponse
	if err := c.get(ctx, "lookup", "/lookup.php", url.Values{"i": {id}}, &resp); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUpstream, "Failed to fetch meal details", err, map[string]any{"id": id})
	}
	return first(resp, "Failed to fetch meal details")
}

// RandomMeal fetches one random meal. It returns nil when upstream has none.
func (c *Client) RandomMeal(ctx context.Context) (*MealDTO, error) {
	logging.FromContext(ctx).Debug("fetching random meal")

	var resp mealsResponse
	if err := c.get(ctx, "random", "/random.php", nil, &resp); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUpstream, "Failed to fetch random meal", err)
	}
	return first(resp, "Failed to fetch random meal")
}

// ListCategories fetches every meal category.
func (c *Client) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	logging.FromContext(ctx).Debug("fetching all categories")

	var resp categoriesResponse
	if err := c.get(ctx, "categories", "/categories.php", nil, &resp); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUpstream, "Failed to fetch categories", err)
	}
	if resp.Categories == nil {
		return []CategoryDTO{}, nil
	}
	return resp.Categories, nil
}

// FilterByCategory lists the meals of a category. Records only carry the id,
// name and thumbnail.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]MealDTO, error) {
	logging.FromContext(ctx).WithField("category", category).Debug("fetching meals by category")

	var resp mealsResponse
	if err := c.get(ctx, "filter", "/filter.php", url.Values{"c": {category}}, &resp); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUpstream, "Failed to fetch meals by category", err, map[string]any{"category": category})
	}
	meals, err := resp.decode()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUpstream, "Failed to fetch meals by category", errors.Wrap(err, "decode meals"))
	}
	return meals, nil
}

func first(resp mealsResponse, message string) (*MealDTO, error) {
	meals, err := resp.decode()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUpstream, message, errors.Wrap(err, "decode meals"))
	}
	if len(meals) == 0 {
		return nil, nil
	}
	return &meals[0], nil
}

// get performs a paced GET against the API and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeError
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "wait for upstream rate limiter")
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrapf(err, "create request for %s", path)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.Errorf("GET %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode response of %s", path)
	}
	return nil
}
