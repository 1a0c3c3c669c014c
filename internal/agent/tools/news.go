package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fulano-assistant/internal/agent"
	pkgLog "fulano-assistant/pkg/log"
)

// NewsTool fetches top headlines from GNews.
type NewsTool struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	country  string
	language string
	timeout  time.Duration
	l        pkgLog.Logger
}

func NewNewsTool(client *http.Client, baseURL, apiKey, country, language string, timeout time.Duration, l pkgLog.Logger) *NewsTool {
	if country == "" {
		country = "co"
	}
	if language == "" {
		language = "es"
	}
	return &NewsTool{
		client:   client,
		baseURL:  baseURL,
		apiKey:   apiKey,
		country:  country,
		language: language,
		timeout:  timeout,
		l:        l,
	}
}

func (t *NewsTool) Name() agent.ToolName {
	return NameNews
}

func (t *NewsTool) Description() string {
	return "Devuelve los titulares más recientes de Colombia, opcionalmente filtrados por un tema."
}

func (t *NewsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"topic": map[string]interface{}{
				"type":        "string",
				"description": "Optional keyword to filter headlines",
			},
			"max": map[string]interface{}{
				"type":        "integer",
				"description": "Number of headlines (1-10, default 5)",
				"minimum":     1,
				"maximum":     maxNewsArticles,
			},
		},
	}
}

func (t *NewsTool) Timeout() time.Duration {
	return t.timeout
}

type NewsInput struct {
	Topic string `json:"topic"`
	Max   int    `json:"max"`
}

type Headline struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

type newsResponse struct {
	Articles []struct {
		Title  string `json:"title"`
		URL    string `json:"url"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func (t *NewsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	if t.apiKey == "" {
		return nil, fmt.Errorf("%w: GNews", ErrMissingAPIKey)
	}

	var input NewsInput
	if err := agent.DecodeArgs(params, &input); err != nil {
		return nil, err
	}
	limit := input.Max
	if limit <= 0 {
		limit = defaultNewsMax
	}
	if limit > maxNewsArticles {
		limit = maxNewsArticles
	}

	query := url.Values{}
	query.Set("country", t.country)
	query.Set("lang", t.language)
	query.Set("max", strconv.Itoa(limit))
	query.Set("token", t.apiKey)
	if input.Topic != "" {
		query.Set("q", input.Topic)
	}

	var resp newsResponse
	if err := getJSON(ctx, t.client, "gnews", t.baseURL, query, &resp); err != nil {
		t.l.Warnf(ctx, "%s: %v", LogPrefixNews, err)
		return nil, err
	}

	headlines := make([]Headline, 0, limit)
	for _, a := range resp.Articles {
		if len(headlines) == limit {
			break
		}
		headlines = append(headlines, Headline{Title: a.Title, Source: a.Source.Name, URL: a.URL})
	}

	return map[string]interface{}{
		"headlines": headlines,
		"count":     len(headlines),
	}, nil
}

var _ agent.Tool = (*NewsTool)(nil)
