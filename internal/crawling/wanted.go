// Package crawling collects live job postings from the Wanted job board
// API, one page per job category, and shapes them into raw postings for the
// match engine.
package crawling

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/faloii/resumerecommend/internal/posting"
	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
)

// DefaultBaseURL is the Wanted API root.
const DefaultBaseURL = "https://www.wanted.co.kr"

const (
	defaultPerCategory = 10
	defaultTimeout     = 15 * time.Second

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// CategoryTag pairs a Wanted tag_type_id with the engine's category name.
type CategoryTag struct {
	TagID    int
	Category string
}

// CategoryTags lists the crawled categories in crawl order.
var CategoryTags = []CategoryTag{
	{507, rules.CategoryPlanning},
	{518, rules.CategoryDevelopment},
	{523, rules.CategoryDesign},
	{527, rules.CategoryData},
	{526, rules.CategoryMarketing},
}

// Client fetches postings from the Wanted API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      *zap.Logger
	perCategory int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root, which tests use to
// hit a local server.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithPerCategory changes how many postings are requested per category.
func WithPerCategory(n int) Option {
	return func(c *Client) { c.perCategory = n }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a Wanted API client.
func NewClient(logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		logger:      logger,
		perCategory: defaultPerCategory,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiJob is the slice of the Wanted v4 job payload the crawler reads.
type apiJob struct {
	ID       json.Number `json:"id"`
	Position string      `json:"position"`
	Company  struct {
		Name string `json:"name"`
	} `json:"company"`
	Address struct {
		FullLocation string `json:"full_location"`
	} `json:"address"`
}

type apiResponse struct {
	Data []apiJob `json:"data"`
}

// Crawl pulls the newest postings for every category. Per-category failures
// are logged and skipped; only an entirely empty harvest is an error.
func (c *Client) Crawl(ctx context.Context) ([]types.Posting, error) {
	var postings []types.Posting
	for _, tag := range CategoryTags {
		batch, err := c.crawlCategory(ctx, tag)
		if err != nil {
			c.logger.Warn("category crawl failed",
				zap.String("category", tag.Category),
				zap.Int("tag_id", tag.TagID),
				zap.Error(err),
			)
			continue
		}
		c.logger.Info("category crawled",
			zap.String("category", tag.Category),
			zap.Int("postings", len(batch)),
		)
		postings = append(postings, batch...)
	}

	if len(postings) == 0 {
		return nil, fmt.Errorf("no postings found across %d categories", len(CategoryTags))
	}
	return postings, nil
}

func (c *Client) crawlCategory(ctx context.Context, tag CategoryTag) ([]types.Posting, error) {
	endpoint := fmt.Sprintf(
		"%s/api/v4/jobs?country=kr&tag_type_ids=%d&job_sort=job.latest_order&locations=all&years=-1&limit=%d",
		c.baseURL, tag.TagID, c.perCategory,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	batch := make([]types.Posting, 0, len(payload.Data))
	for _, job := range payload.Data {
		batch = append(batch, c.toPosting(job, tag.Category))
	}
	return batch, nil
}

// toPosting shapes one API entry into a raw posting. The API list payload
// carries no description, so the title doubles as the description and the
// requirements line is rebuilt from the title's experience phrase.
func (c *Client) toPosting(job apiJob, category string) types.Posting {
	title := job.Position
	company := job.Company.Name
	if company == "" {
		company = "Unknown"
	}
	location := job.Address.FullLocation
	if location == "" {
		location = rules.RegionSeoul
	}

	req := posting.ExtractRequiredYears(title)
	id := job.ID.String()

	return types.Posting{
		ID:           id,
		Title:        title,
		Company:      company,
		Location:     location,
		Description:  title,
		Requirements: fmt.Sprintf("경력 %d년 이상", req.Min),
		URL:          c.postingURL(id),
		Tags:         []string{},
		JobCategory:  category,
		Region:       posting.NormalizeRegion(location),
	}
}

func (c *Client) postingURL(id string) string {
	u, err := url.Parse(DefaultBaseURL)
	if err != nil {
		return ""
	}
	u.Path = "/wd/" + id
	return u.String()
}

// Enrich replaces a posting's description with the text of its detail page
// when a page fetcher yields enough content. Used by the CLI's crawl path;
// failures leave the posting untouched.
func Enrich(ctx context.Context, p *types.Posting, fetchText func(context.Context, string) (string, error), logger *zap.Logger) {
	if p.URL == "" {
		return
	}
	text, err := fetchText(ctx, p.URL)
	if err != nil {
		logger.Debug("detail enrichment failed", zap.String("id", p.ID), zap.Error(err))
		return
	}
	if len(text) > len(p.Description) {
		p.Description = text
	}
}
