package rest

import (
	"context"

	"github.com/plantdesk/portalctl/internal/core/domain"
)

func (c *Client) Plants(ctx context.Context) ([]domain.Plant, error) {
	var out []domain.Plant
	if err := c.getJSON(ctx, "/plants", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Plant(ctx context.Context, id string) (*domain.Plant, error) {
	var out domain.Plant
	if err := c.getJSON(ctx, "/plants/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
