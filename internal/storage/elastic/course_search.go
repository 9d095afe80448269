package elastic

import (
	"MiniLearn/internal/models"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const defaultSearchSize = 10

// MaxResultWindow is the default index.max_result_window; from+size beyond it
// is rejected by Elasticsearch.
const MaxResultWindow = 10000

type CourseSearchRepo struct {
	client *elasticsearch.Client
	index  string
}

func NewCourseSearchRepository(client *elasticsearch.Client, index string) *CourseSearchRepo {
	return &CourseSearchRepo{client: client, index: index}
}

type courseDoc struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

var indexMapping = map[string]any{
	"settings": map[string]any{
		"analysis": map[string]any{
			"analyzer": map[string]any{
				"edge_ngram_analyzer": map[string]any{
					"tokenizer": "edge_ngram_tokenizer",
					"filter":    []string{"lowercase"},
				},
			},
			"tokenizer": map[string]any{
				"edge_ngram_tokenizer": map[string]any{
					"type":        "edge_ngram",
					"min_gram":    2,
					"max_gram":    20,
					"token_chars": []string{"letter", "digit"},
				},
			},
		},
	},
	"mappings": map[string]any{
		"properties": map[string]any{
			"title": map[string]any{
				"type":            "text",
				"analyzer":        "edge_ngram_analyzer",
				"search_analyzer": "standard",
			},
			"description": map[string]any{
				"type":            "text",
				"analyzer":        "edge_ngram_analyzer",
				"search_analyzer": "standard",
			},
		},
	},
}

func (r *CourseSearchRepo) CreateIndexIfNotExist(ctx context.Context) error {
	existsRes, err := esapi.IndicesExistsRequest{Index: []string{r.index}}.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error checking index existence: %w", err)
	}
	defer existsRes.Body.Close()

	switch {
	case existsRes.StatusCode == http.StatusNotFound:
	case existsRes.StatusCode >= 300:
		return fmt.Errorf("index existence check failed with status code %d", existsRes.StatusCode)
	default:
		return nil
	}

	body, err := json.Marshal(indexMapping)
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	res, err := esapi.IndicesCreateRequest{Index: r.index, Body: bytes.NewReader(body)}.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("mapping creation failed: %s", res.String())
	}
	return nil
}

// Index creates or replaces the course document.
func (r *CourseSearchRepo) Index(ctx context.Context, course models.Course) error {
	data, err := json.Marshal(courseDoc{Title: course.Title, Description: course.Description})
	if err != nil {
		return fmt.Errorf("marshal doc: %w", err)
	}
	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: strconv.FormatInt(course.ID, 10),
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

// Delete ignores documents that were never indexed.
func (r *CourseSearchRepo) Delete(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{
		Index:      r.index,
		DocumentID: strconv.FormatInt(id, 10),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete error: %s", res.String())
	}
	return nil
}

func matchQuery(query string) map[string]any {
	return map[string]any{
		"multi_match": map[string]any{
			"query":                query,
			"fields":               []string{"title^3", "description"},
			"type":                 "best_fields",
			"fuzziness":            "AUTO",
			"operator":             "or",
			"minimum_should_match": "2<75%",
		},
	}
}

func (r *CourseSearchRepo) Count(ctx context.Context, query string) (int, error) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(map[string]any{"query": matchQuery(query)}); err != nil {
		return 0, fmt.Errorf("encode count body: %w", err)
	}
	res, err := esapi.CountRequest{Index: []string{r.index}, Body: buf}.Do(ctx, r.client)
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

// Search returns one page of matching course ids, best match first.
func (r *CourseSearchRepo) Search(ctx context.Context, query string, from, size int) ([]int64, error) {
	if size <= 0 {
		size = defaultSearchSize
	}
	if from < 0 {
		from = 0
	}
	if from+size > MaxResultWindow {
		return []int64{}, nil
	}
	buf := &bytes.Buffer{}
	body := map[string]any{"query": matchQuery(query), "from": from, "size": size}
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}
	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		bodyBytes, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search error: %s", string(bodyBytes))
	}
	var esRes struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esRes); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	ids := make([]int64, 0, len(esRes.Hits.Hits))
	for _, h := range esRes.Hits.Hits {
		if id, err := strconv.ParseInt(h.ID, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
