package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ModuleSearchRepo indexes the static catalog so the dashboard search box can
// match module titles, descriptions and lesson titles. The catalog never
// changes at runtime, so the index is rebuilt once at startup.
type ModuleSearchRepo struct {
	client *elasticsearch.Client
	index  string
}

func NewModuleSearchRepository(client *elasticsearch.Client, index string) *ModuleSearchRepo {
	return &ModuleSearchRepo{client: client, index: index}
}

func (r *ModuleSearchRepo) CreateIndexIfNotExist(ctx context.Context) error {
	existsReq := esapi.IndicesExistsRequest{Index: []string{r.index}}
	existsRes, err := existsReq.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error checking index existence: %w", err)
	}
	defer existsRes.Body.Close()

	if existsRes.StatusCode == 404 {
		mapping := map[string]interface{}{
			"settings": map[string]interface{}{
				"analysis": map[string]interface{}{
					"analyzer": map[string]interface{}{
						"edge_ngram_analyzer": map[string]interface{}{
							"tokenizer": "edge_ngram_tokenizer",
							"filter":    []string{"lowercase"},
						},
					},
					"tokenizer": map[string]interface{}{
						"edge_ngram_tokenizer": map[string]interface{}{
							"type":        "edge_ngram",
							"min_gram":    2,
							"max_gram":    20,
							"token_chars": []string{"letter", "digit"},
						},
					},
				},
			},
			"mappings": map[string]interface{}{
				"properties": map[string]interface{}{
					"title": map[string]interface{}{
						"type":            "text",
						"analyzer":        "edge_ngram_analyzer",
						"search_analyzer": "standard",
					},
					"description": map[string]interface{}{
						"type":            "text",
						"analyzer":        "edge_ngram_analyzer",
						"search_analyzer": "standard",
					},
					"lesson_titles": map[string]interface{}{
						"type":            "text",
						"analyzer":        "edge_ngram_analyzer",
						"search_analyzer": "standard",
					},
				},
			},
		}

		body, _ := json.Marshal(mapping)
		req := esapi.IndicesCreateRequest{Index: r.index, Body: bytes.NewReader(body)}
		res, err := req.Do(ctx, r.client)
		if err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
		defer res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("mapping creation failed: %s", res.String())
		}
	}

	if existsRes.StatusCode >= 300 && existsRes.StatusCode != 404 {
		return fmt.Errorf("index existence check failed with status code %d", existsRes.StatusCode)
	}

	return nil
}

func (r *ModuleSearchRepo) Index(ctx context.Context, module models.Module) error {
	lessonTitles := make([]string, 0, len(module.Lessons))
	for _, l := range module.Lessons {
		lessonTitles = append(lessonTitles, l.Title)
	}
	doc := map[string]interface{}{
		"title":         module.Title,
		"description":   module.Description,
		"lesson_titles": strings.Join(lessonTitles, " "),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal doc: %w", err)
	}
	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: strconv.Itoa(module.ID),
		Refresh:    "true",
		Body:       bytes.NewReader(data),
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("index request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

func (r *ModuleSearchRepo) IndexCatalog(ctx context.Context, modules []models.Module) error {
	for _, m := range modules {
		if err := r.Index(ctx, m); err != nil {
			return fmt.Errorf("index module %d: %w", m.ID, err)
		}
	}
	return nil
}

func (r *ModuleSearchRepo) Count(ctx context.Context, query string) (int, error) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(searchBody(query)); err != nil {
		return 0, fmt.Errorf("encode count body: %w", err)
	}
	req := esapi.CountRequest{Index: []string{r.index}, Body: buf}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return 0, fmt.Errorf("count request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		bodyBytes, _ := io.ReadAll(res.Body)
		return 0, fmt.Errorf("count error: %s", string(bodyBytes))
	}
	var cntRes struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&cntRes); err != nil {
		return 0, fmt.Errorf("decode count response: %w", err)
	}
	return cntRes.Count, nil
}

func (r *ModuleSearchRepo) Search(ctx context.Context, query string, size int) ([]int, error) {
	if size <= 0 {
		size = 10
	}
	body := searchBody(query)
	body["size"] = size

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}
	req := esapi.SearchRequest{Index: []string{r.index}, Body: buf}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		bodyBytes, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search error: %s", string(bodyBytes))
	}

	var searchRes struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&searchRes); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	ids := make([]int, 0, len(searchRes.Hits.Hits))
	for _, hit := range searchRes.Hits.Hits {
		id, err := strconv.Atoi(hit.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func searchBody(query string) map[string]any {
	return map[string]any{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":                query,
				"fields":               []string{"title^3", "description", "lesson_titles"},
				"type":                 "best_fields",
				"fuzziness":            "AUTO",
				"operator":             "or",
				"minimum_should_match": "2<75%",
			},
		},
	}
}
