package platform

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	luminaerrors "github.com/luminalabs/lumina-mcp/pkg/errors"
)

// SearchItems walks the tenant catalog, optionally filtered by name
// substring and resource type. Aggregation is capped at [CeilingSearch].
func (c *Client) SearchItems(ctx context.Context, name, resourceType string) ([]Item, error) {
	q := url.Values{}
	if name != "" {
		q.Set("name", name)
	}
	if resourceType != "" {
		q.Set("resourceType", resourceType)
	}
	return Collect(ctx, func(ctx context.Context, cursor string) ([]Item, string, error) {
		return listPage[Item](ctx, c, "/api/v1/items", q, cursor)
	}, CeilingSearch)
}

// ListSpaces walks all spaces visible to the API key, capped at [CeilingSpaces].
func (c *Client) ListSpaces(ctx context.Context) ([]Space, error) {
	return Collect(ctx, func(ctx context.Context, cursor string) ([]Space, string, error) {
		return listPage[Space](ctx, c, "/api/v1/spaces", nil, cursor)
	}, CeilingSpaces)
}

// GetSpace fetches one space by id.
func (c *Client) GetSpace(ctx context.Context, id string) (*Space, error) {
	var s Space
	if err := c.Get(ctx, "/api/v1/spaces/"+url.PathEscape(id), nil, &s); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, luminaerrors.Wrap(luminaerrors.ErrCodeSpaceNotFound, err, "space %s", id)
		}
		return nil, err
	}
	return &s, nil
}

// ListDatasets walks all catalogued data assets, capped at [CeilingDatasets].
func (c *Client) ListDatasets(ctx context.Context, spaceID string) ([]Dataset, error) {
	q := url.Values{}
	if spaceID != "" {
		q.Set("spaceId", spaceID)
	}
	return Collect(ctx, func(ctx context.Context, cursor string) ([]Dataset, string, error) {
		return listPage[Dataset](ctx, c, "/api/v1/data-sets", q, cursor)
	}, CeilingDatasets)
}

// ListAutomations walks all automations, capped at [CeilingAutomations].
func (c *Client) ListAutomations(ctx context.Context) ([]Automation, error) {
	return Collect(ctx, func(ctx context.Context, cursor string) ([]Automation, string, error) {
		return listPage[Automation](ctx, c, "/api/v1/automations", nil, cursor)
	}, CeilingAutomations)
}

// ListAutomationRuns walks the run history of one automation, newest
// first, capped at [CeilingRuns].
func (c *Client) ListAutomationRuns(ctx context.Context, automationID string) ([]AutomationRun, error) {
	path := fmt.Sprintf("/api/v1/automations/%s/runs", url.PathEscape(automationID))
	return Collect(ctx, func(ctx context.Context, cursor string) ([]AutomationRun, string, error) {
		return listPage[AutomationRun](ctx, c, path, nil, cursor)
	}, CeilingRuns)
}

// ListReloads walks the reload history of one app, capped at [CeilingRuns].
func (c *Client) ListReloads(ctx context.Context, appID string) ([]Reload, error) {
	q := url.Values{"appId": {appID}}
	return Collect(ctx, func(ctx context.Context, cursor string) ([]Reload, string, error) {
		return listPage[Reload](ctx, c, "/api/v1/reloads", q, cursor)
	}, CeilingRuns)
}

// ListAlerts walks all data alerts, capped at [CeilingAlerts].
func (c *Client) ListAlerts(ctx context.Context) ([]Alert, error) {
	return Collect(ctx, func(ctx context.Context, cursor string) ([]Alert, string, error) {
		return listPage[Alert](ctx, c, "/api/v1/data-alerts", nil, cursor)
	}, CeilingAlerts)
}

// ListUsers walks all tenant members, capped at [CeilingUsers].
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return Collect(ctx, func(ctx context.Context, cursor string) ([]User, string, error) {
		return listPage[User](ctx, c, "/api/v1/users", nil, cursor)
	}, CeilingUsers)
}

// GetUser fetches one tenant member by id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.Get(ctx, "/api/v1/users/"+url.PathEscape(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListAssistants walks the tenant's AI assistants, capped at [CeilingMLAssets].
func (c *Client) ListAssistants(ctx context.Context) ([]Assistant, error) {
	return Collect(ctx, func(ctx context.Context, cursor string) ([]Assistant, string, error) {
		return listPage[Assistant](ctx, c, "/api/v1/assistants", nil, cursor)
	}, CeilingMLAssets)
}

// ListExperiments walks the tenant's AutoML experiments, capped at [CeilingMLAssets].
func (c *Client) ListExperiments(ctx context.Context) ([]Experiment, error) {
	return Collect(ctx, func(ctx context.Context, cursor string) ([]Experiment, string, error) {
		return listPage[Experiment](ctx, c, "/api/v1/automl/experiments", nil, cursor)
	}, CeilingMLAssets)
}

// GetApp fetches one app by id.
func (c *Client) GetApp(ctx context.Context, id string) (*App, error) {
	var wrapper struct {
		Attributes App `json:"attributes"`
	}
	if err := c.Get(ctx, "/api/v1/apps/"+url.PathEscape(id), nil, &wrapper); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, luminaerrors.Wrap(luminaerrors.ErrCodeAppNotFound, err, "app %s", id)
		}
		return nil, err
	}
	return &wrapper.Attributes, nil
}

// GetAppDetail fetches an app and resolves its owner and space display
// names with two concurrent lookups. Name resolution is best-effort:
// either lookup failing leaves the corresponding name empty rather than
// failing the detail view.
func (c *Client) GetAppDetail(ctx context.Context, id string) (*AppDetail, error) {
	app, err := c.GetApp(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &AppDetail{App: *app}
	g := new(errgroup.Group)
	g.SetLimit(2)
	if app.OwnerID != "" {
		g.Go(func() error {
			if u, err := c.GetUser(ctx, app.OwnerID); err == nil {
				detail.OwnerName = u.Name
			}
			return nil
		})
	}
	if app.SpaceID != "" {
		g.Go(func() error {
			if s, err := c.GetSpace(ctx, app.SpaceID); err == nil {
				detail.SpaceName = s.Name
			}
			return nil
		})
	}
	_ = g.Wait()
	return detail, nil
}
