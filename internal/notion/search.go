package notion

import (
	"context"
	"net/http"

	"github.com/atomicstack/faultnote/internal/state"
)

const searchPageSize = 100

type searchRequest struct {
	Filter      searchFilter `json:"filter"`
	PageSize    int          `json:"page_size"`
	StartCursor string       `json:"start_cursor,omitempty"`
}

type searchFilter struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

type searchResponse struct {
	Results    []pageObject `json:"results"`
	HasMore    bool         `json:"has_more"`
	NextCursor *string      `json:"next_cursor"`
}

type pageObject struct {
	ID         string                  `json:"id"`
	Properties map[string]pageProperty `json:"properties"`
}

type pageProperty struct {
	Title []richText `json:"title"`
}

type richText struct {
	PlainText string `json:"plain_text"`
}

// titleKeys are the property names a page title is looked up under, in order.
var titleKeys = []string{"title", "Name", "Title"}

func (p pageObject) title() string {
	for _, key := range titleKeys {
		prop, ok := p.Properties[key]
		if !ok || len(prop.Title) == 0 {
			continue
		}
		return prop.Title[0].PlainText
	}
	return "Untitled"
}

// ListTargets returns every page the integration can see, following the
// search cursor until the API reports no more results.
func (c *Client) ListTargets(ctx context.Context) ([]state.Target, error) {
	var targets []state.Target
	cursor := ""
	for {
		req := searchRequest{
			Filter:      searchFilter{Property: "object", Value: "page"},
			PageSize:    searchPageSize,
			StartCursor: cursor,
		}
		var resp searchResponse
		if err := c.do(ctx, "list targets", http.MethodPost, "/v1/search", req, &resp); err != nil {
			return nil, err
		}
		for _, page := range resp.Results {
			if page.ID == "" {
				continue
			}
			targets = append(targets, state.Target{ID: page.ID, Title: page.title()})
		}
		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		cursor = *resp.NextCursor
	}
	return targets, nil
}
