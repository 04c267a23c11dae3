package tmdb

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// requestTimeout bounds every provider call. There is no retry and no
// cancellation path: a call runs to completion or timeout.
const requestTimeout = 5 * time.Second

type Client struct {
	config     *Config
	baseURL    string
	httpClient *http.Client
}

func NewClient(config *Config) *Client {
	return &Client{
		config:  config,
		baseURL: BaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// NewClientWithBaseURL points the client at an alternate API root. Used by
// tests to stand in a fake upstream.
func NewClientWithBaseURL(config *Config, baseURL string) *Client {
	c := NewClient(config)
	c.baseURL = baseURL
	return c
}

func (c *Client) get(op, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.config.APIKey)

	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	// Log the request (hide API key for security)
	log.Printf("TMDb API request: %s%s?api_key=***", c.baseURL, endpoint)

	resp, err := c.httpClient.Get(fullURL)
	if err != nil {
		log.Printf("HTTP request failed: %v", err)
		return nil, wrapError(op, endpoint, 0, fmt.Errorf("%w: %v", ErrTransient, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(op, endpoint, 0, fmt.Errorf("%w: read body: %v", ErrTransient, err))
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("TMDb API error: status %d, body: %s", resp.StatusCode, string(body))
		return nil, wrapError(op, endpoint, resp.StatusCode, classifyStatus(resp.StatusCode))
	}

	return body, nil
}

// FetchCategory requests one page of the listing resolved for a category key.
func (c *Client) FetchCategory(q CategoryQuery, page int) ([]ListItem, error) {
	params := url.Values{}
	for k, vs := range q.Params {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	params.Set("page", fmt.Sprintf("%d", page))

	body, err := c.get("fetchCategory", q.Endpoint, params)
	if err != nil {
		return nil, err
	}

	var result ListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, wrapError("fetchCategory", q.Endpoint, 0, fmt.Errorf("%w: unmarshal: %v", ErrTransient, err))
	}

	return result.Results, nil
}

// FetchMovieDetails requests a single movie with its credits, videos, images
// and watch providers in one round trip.
func (c *Client) FetchMovieDetails(externalID string) (*Details, error) {
	endpoint := fmt.Sprintf("/movie/%s", externalID)
	params := url.Values{}
	params.Set("append_to_response", "credits,videos,images,watch/providers")

	body, err := c.get("fetchDetails", endpoint, params)
	if err != nil {
		return nil, err
	}

	var details Details
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, wrapError("fetchDetails", endpoint, 0, fmt.Errorf("%w: unmarshal: %v", ErrTransient, err))
	}

	return &details, nil
}
