package robotevents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"vexscout-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	defaultBaseUrl   = "https://www.robotevents.com/api/v2"
	defaultSkillsUrl = "https://www.robotevents.com/api/seasons"
)

type Options struct {
	// v2 API root, defaults to robotevents.com/api/v2
	BaseUrl string
	// root of the unauthenticated seasonal skills feed
	SkillsUrl string
	// pre-issued bearer credential; empty means reduced functionality,
	// only the unauthenticated skills feed works
	Token string
	// every authenticated query is scoped to one program and season so
	// that team numbers, which repeat across programs, stay unambiguous
	ProgramId int
	SeasonId  int
	// token-bucket pacing for outbound requests, defaults to 60
	RequestsPerMinute int
}

type Client struct {
	http      *resty.Client
	limiter   *rate.Limiter
	baseUrl   string
	skillsUrl string
	token     string
	programId int
	seasonId  int

	maxAttempts int
	// one backoff unit, overridable in tests
	retryUnit time.Duration
}

func NewClient(opts Options) *Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = defaultBaseUrl
	}
	if opts.SkillsUrl == "" {
		opts.SkillsUrl = defaultSkillsUrl
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 60
	}

	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetHeader("accept", "application/json")
	client.SetTimeout(time.Second * 30)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "robotevents/http")

	return &Client{
		http:        client,
		limiter:     rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), 1),
		baseUrl:     opts.BaseUrl,
		skillsUrl:   opts.SkillsUrl,
		token:       opts.Token,
		programId:   opts.ProgramId,
		seasonId:    opts.SeasonId,
		maxAttempts: defaultMaxAttempts,
		retryUnit:   time.Second,
	}
}

func (c *Client) HasCredential() bool {
	return c.token != ""
}

func (c *Client) get(ctx context.Context, link string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	res, err := c.fetchWithRetry(ctx, func() (*resty.Response, error) {
		req := c.http.R().SetContext(ctx)
		if query != nil {
			req.SetQueryParamsFromValues(query)
		}
		if c.token != "" {
			req.SetAuthToken(c.token)
		}
		return req.Get(link)
	})
	if err != nil {
		return err
	}
	if !res.IsSuccess() {
		return fmt.Errorf("%s returned %d: %s", link, res.StatusCode(), truncate(res.Body(), 200))
	}
	return json.Unmarshal(res.Body(), out)
}

type pageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

type page[T any] struct {
	Meta pageMeta `json:"meta"`
	Data []T      `json:"data"`
}

// getAll walks every page of a paginated v2 endpoint.
func getAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("per_page", "250")

	var out []T
	for pageNum := 1; ; pageNum++ {
		query.Set("page", strconv.Itoa(pageNum))

		var p page[T]
		err := c.get(ctx, c.baseUrl+path, query, &p)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Data...)

		if len(p.Data) == 0 || p.Meta.CurrentPage >= p.Meta.LastPage {
			return out, nil
		}
	}
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
