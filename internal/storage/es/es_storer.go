package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/DjordjeVuckovic/html-validator/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
	config    ClientConfig
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
		config:    config,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Save(ctx context.Context, run domain.Run) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	doc := toDocument(run)

	res, err := e.client.Index(e.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index validation run: %w", err)
	}

	slog.Debug("Validation run indexed", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return run.ID, nil
}

func (e *Storer) Get(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	res, err := e.client.Get(e.indexName, id.String()).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get validation run: %w", err)
	}
	if !res.Found {
		return nil, storage.ErrRunNotFound
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal validation run: %w", err)
	}
	return doc.toDomain()
}

func (e *Storer) List(ctx context.Context, limit int, after *storage.Cursor) ([]domain.Run, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}
	sortOrderDesc := sortorder.Desc

	search := e.client.Search().
		Index(e.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Size(limit)
	if after != nil {
		search = search.SearchAfter(after.CreatedAt.UnixMilli(), after.ID.String())
	}

	res, err := search.
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "index", e.indexName)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	runs := make([]domain.Run, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		run, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("invalid document id %q: %w", doc.ID, err)
		}
		runs = append(runs, *run)
	}

	return runs, nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	existsRes, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewKeywordProperty(),
			"source":      types.NewKeywordProperty(),
			"valid":       types.NewBooleanProperty(),
			"issue":       types.NewKeywordProperty(),
			"token":       types.NewKeywordProperty(),
			"name":        types.NewKeywordProperty(),
			"expected":    types.NewKeywordProperty(),
			"reason":      types.NewTextProperty(),
			"line":        types.NewIntegerNumberProperty(),
			"column":      types.NewIntegerNumberProperty(),
			"offset":      types.NewIntegerNumberProperty(),
			"token_count": types.NewIntegerNumberProperty(),
			"bytes":       types.NewIntegerNumberProperty(),
			"duration_us": types.NewLongNumberProperty(),
			"created_at":  types.NewDateProperty(),
			"indexed_at":  types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

// Healthy pings the cluster.
func (e *Storer) Healthy(ctx context.Context) bool {
	ok, err := e.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}

// Close is a no-op for the typed client.
func (e *Storer) Close() {}

var _ storage.Repository = (*Storer)(nil)
