// Package shopify talks to the host platform's Admin GraphQL API and
// verifies embedded-app session tokens.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"shipway/config"
	"shipway/internal/domain/entity"
	domainErrs "shipway/internal/domain/errors"
	"shipway/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const catalogPageSize = 250

// Params holds dependencies for the Admin API client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

type adminClient struct {
	accessToken string
	apiVersion  string
	httpClient  *http.Client
}

// NewAdminClient creates a CatalogService backed by the Admin GraphQL API.
func NewAdminClient(params Params) service.CatalogService {
	cfg := params.Config.Shopify
	if cfg == nil {
		cfg = &config.ShopifyConfig{}
	}

	return &adminClient{
		accessToken: cfg.AccessToken,
		apiVersion:  cfg.APIVersion,
		httpClient:  &http.Client{},
	}
}

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type gqlNode struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Vendor      string   `json:"vendor"`
	Tags        []string `json:"tags"`
	Collections *struct {
		Edges []struct {
			Node struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"collections"`
}

type gqlConnection struct {
	Edges []struct {
		Node gqlNode `json:"node"`
	} `json:"edges"`
	PageInfo pageInfo `json:"pageInfo"`
}

func (c *adminClient) FetchCatalog(ctx context.Context, shop string) (*entity.CatalogSnapshot, error) {
	snapshot := &entity.CatalogSnapshot{
		Products:    []entity.CatalogProduct{},
		Collections: []entity.CatalogCollection{},
		Vendors:     []string{},
		Tags:        []string{},
	}

	vendorSeen := map[string]bool{}
	tagSeen := map[string]bool{}

	productQuery := fmt.Sprintf(`
		query getProducts($cursor: String) {
			products(first: %d, after: $cursor) {
				edges {
					node {
						id
						title
						tags
						vendor
						collections(first: 100) {
							edges { node { id title } }
						}
					}
				}
				pageInfo { hasNextPage endCursor }
			}
		}`, catalogPageSize)

	err := c.page(ctx, shop, productQuery, "products", func(node gqlNode) {
		product := entity.CatalogProduct{
			ID:          lastPathSegment(node.ID),
			Title:       node.Title,
			Vendor:      node.Vendor,
			Tags:        node.Tags,
			Collections: []entity.CatalogCollection{},
		}
		if node.Collections != nil {
			for _, edge := range node.Collections.Edges {
				product.Collections = append(product.Collections, entity.CatalogCollection{
					ID:    lastPathSegment(edge.Node.ID),
					Title: edge.Node.Title,
				})
			}
		}
		snapshot.Products = append(snapshot.Products, product)

		if node.Vendor != "" && !vendorSeen[node.Vendor] {
			vendorSeen[node.Vendor] = true
			snapshot.Vendors = append(snapshot.Vendors, node.Vendor)
		}
		for _, tag := range node.Tags {
			if !tagSeen[tag] {
				tagSeen[tag] = true
				snapshot.Tags = append(snapshot.Tags, tag)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	collectionQuery := fmt.Sprintf(`
		query getCollections($cursor: String) {
			collections(first: %d, after: $cursor) {
				edges { node { id title } }
				pageInfo { hasNextPage endCursor }
			}
		}`, catalogPageSize)

	err = c.page(ctx, shop, collectionQuery, "collections", func(node gqlNode) {
		snapshot.Collections = append(snapshot.Collections, entity.CatalogCollection{
			ID:    lastPathSegment(node.ID),
			Title: node.Title,
		})
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (c *adminClient) SearchResources(ctx context.Context, shop string, kind entity.ResourceKind, query string) ([]string, error) {
	var gql, search string

	switch kind {
	case entity.ResourceVendor:
		gql = fmt.Sprintf(`
			query searchProducts($query: String) {
				products(first: %d, query: $query) {
					edges { node { id vendor } }
				}
			}`, catalogPageSize)
		search = "vendor:" + query

	case entity.ResourceTag:
		gql = fmt.Sprintf(`
			query searchProducts($query: String) {
				products(first: %d, query: $query) {
					edges { node { id tags } }
				}
			}`, catalogPageSize)
		search = "tag:" + query

	default:
		return nil, errors.Errorf("search is not supported for kind %s", kind)
	}

	data, err := c.execute(ctx, shop, gql, map[string]any{"query": search})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Products gqlConnection `json:"products"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	seen := map[string]bool{}
	items := []string{}

	for _, edge := range payload.Products.Edges {
		switch kind {
		case entity.ResourceVendor:
			if edge.Node.Vendor != "" && !seen[edge.Node.Vendor] {
				seen[edge.Node.Vendor] = true
				items = append(items, edge.Node.Vendor)
			}
		case entity.ResourceTag:
			for _, tag := range edge.Node.Tags {
				if !seen[tag] {
					seen[tag] = true
					items = append(items, tag)
				}
			}
		}
	}

	sort.Strings(items)

	return items, nil
}

// page walks a paginated connection to exhaustion, invoking collect per node.
func (c *adminClient) page(ctx context.Context, shop, query, field string, collect func(gqlNode)) error {
	var cursor *string

	for {
		data, err := c.execute(ctx, shop, query, map[string]any{"cursor": cursor})
		if err != nil {
			return err
		}

		var payload map[string]gqlConnection
		if err := json.Unmarshal(data, &payload); err != nil {
			return errors.Wrapf(err, "decode %s page", field)
		}

		conn, ok := payload[field]
		if !ok {
			return errors.Errorf("no %s data returned", field)
		}

		for _, edge := range conn.Edges {
			collect(edge.Node)
		}

		if !conn.PageInfo.HasNextPage {
			return nil
		}

		cursor = &conn.PageInfo.EndCursor
	}
}

func (c *adminClient) execute(ctx context.Context, shop, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	url := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shop, c.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "admin api request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainErrs.NewCatalogFetchError(resp.StatusCode)
	}

	var result struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode admin api response")
	}

	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			msgs = append(msgs, e.Message)
		}

		return nil, errors.Errorf("admin api query failed: %s", strings.Join(msgs, "; "))
	}

	return result.Data, nil
}

func lastPathSegment(gid string) string {
	if idx := strings.LastIndex(gid, "/"); idx >= 0 {
		return gid[idx+1:]
	}

	return gid
}
