package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"Reelrank/config"
	"Reelrank/httpclient"

	"github.com/avast/retry-go/v4"
)

const (
	tmdbBaseURL   = "https://api.themoviedb.org/3"
	tmdbImageBase = "https://image.tmdb.org/t/p/w500"

	// The remote catalog can be slow to accept connections and slower
	// still to stream a response; the two limits are tuned separately.
	tmdbConnectTimeout = 20 * time.Second
	tmdbRequestTimeout = 59 * time.Second
)

// ErrRemoteUnavailable wraps every network, timeout and bad-status
// failure from the remote catalog so handlers can map the whole class
// to one user-facing error.
var ErrRemoteUnavailable = errors.New("remote catalog unavailable")

// SearchResult is one candidate row from a title search.
type SearchResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

// MovieDetails is the full catalog record for a single movie.
type MovieDetails struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

// ImageURL builds the poster URL from the fixed image prefix. A record
// without a poster yields the bare prefix; the home template treats
// that value as "no poster" when rendering.
func (d *MovieDetails) ImageURL() string {
	if d.PosterPath == "" {
		return tmdbImageBase
	}
	return tmdbImageBase + d.PosterPath
}

type tmdbSearchResponse struct {
	Results []SearchResult `json:"results"`
}

// TMDBClient performs the two read-only lookups against the remote
// movie catalog.
type TMDBClient struct {
	apiKey  string
	baseURL string
	retries int
	client  *http.Client
}

func NewTMDBClient(cfg *config.Config) *TMDBClient {
	retries := cfg.TMDBRetries
	if retries < 1 {
		retries = 1
	}
	return &TMDBClient{
		apiKey:  cfg.TMDBAPIKey,
		baseURL: tmdbBaseURL,
		retries: retries,
		client:  httpclient.New(tmdbConnectTimeout, tmdbRequestTimeout),
	}
}

// SearchMovies queries the catalog for movies matching the given title.
func (c *TMDBClient) SearchMovies(ctx context.Context, title string) ([]SearchResult, error) {
	searchURL := httpclient.BuildQueryURL(c.baseURL+"/search/movie", map[string]string{
		"api_key":       c.apiKey,
		"language":      "en-US",
		"query":         title,
		"page":          "1",
		"include_adult": "false",
	})

	var parsed tmdbSearchResponse
	if err := c.get(ctx, searchURL, &parsed); err != nil {
		return nil, err
	}
	return parsed.Results, nil
}

// MovieDetails fetches the full record for a catalog id.
func (c *TMDBClient) MovieDetails(ctx context.Context, remoteID int) (*MovieDetails, error) {
	detailsURL := httpclient.BuildQueryURL(c.baseURL+"/movie/"+strconv.Itoa(remoteID), map[string]string{
		"api_key":  c.apiKey,
		"language": "en-US",
	})

	var details MovieDetails
	if err := c.get(ctx, detailsURL, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// get fetches and decodes one catalog URL. Attempts beyond the first
// only happen when TMDB_RETRIES raises the bound; the default of 1
// keeps the no-retry behavior.
func (c *TMDBClient) get(ctx context.Context, apiURL string, v any) error {
	err := retry.Do(
		func() error {
			resp, err := httpclient.Get(ctx, c.client, apiURL)
			if err != nil {
				return err
			}
			return httpclient.DecodeJSON(resp, v)
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.retries)),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	return nil
}
