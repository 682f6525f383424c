package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gophspend/internal/client/models"
)

const categoriesPath = "/api/v1/categories"

func (c *HTTPClient) ListCategories(ctx context.Context) ([]string, error) {
	var resp models.CategoryList
	if err := c.do(ctx, request{method: http.MethodGet, path: categoriesPath, auth: true}, &resp); err != nil {
		return nil, err
	}
	if resp.Names == nil {
		return []string{}, nil
	}
	return resp.Names, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, name string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   categoriesPath,
		body:   models.CategoryRequest{Name: name},
		auth:   true,
	}, nil)
}

func (c *HTTPClient) RenameCategory(ctx context.Context, name, newName string) error {
	return c.do(ctx, request{
		method: http.MethodPut,
		path:   categoriesPath,
		body:   models.CategoryRename{Name: name, NewName: newName},
		auth:   true,
	}, nil)
}

// DeleteCategory sends the name in the body of a DELETE request.
func (c *HTTPClient) DeleteCategory(ctx context.Context, name string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   categoriesPath,
		body:   models.CategoryRequest{Name: name},
		auth:   true,
	}, nil)
}
