package elastic

import (
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
)

// NewElasticClient builds a client and checks that the cluster answers.
// transport may be nil for the default one.
func NewElasticClient(password string, hosts []string, transport http.RoundTripper) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: hosts,
		Username:  "elastic",
		Password:  password,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("elastic: cannot create client: %w", err)
	}
	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elastic: cannot connect to cluster: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elastic: cluster returned error: %s", res.String())
	}
	return client, nil
}
