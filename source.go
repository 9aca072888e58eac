package coinmon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultAPI is the ticker endpoint used when none is configured.
const DefaultAPI = "https://api.coinmarketcap.com/v1/ticker/"

// Source fetches quotes from a ticker API.
type Source struct {
	// API is the ticker endpoint, it receives the limit and convert query parameters.
	API string
	// Path is a JSONPath selecting the array of records in the response, "$" if empty.
	Path string
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

// Host returns the API host name, for display.
func (s *Source) Host() string {
	u, err := url.Parse(s.api())
	if err != nil {
		return s.api()
	}
	return u.Host
}

func (s *Source) api() string {
	if s.API == "" {
		return DefaultAPI
	}
	return s.API
}

// Fetch retrieves at most limit records with prices in the convert currency.
func (s *Source) Fetch(ctx context.Context, limit int, convert string) ([]Record, error) {
	u, err := url.Parse(s.api())
	if err != nil {
		return nil, fmt.Errorf("invalid API address %q: %w", s.api(), err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("convert", convert)
	u.RawQuery = q.Encode()

	var jobj any
	if err := jwget(ctx, s.client(), u.String(), &jobj); err != nil {
		return nil, err
	}

	path := s.Path
	if path == "" {
		path = "$"
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select quotes at %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected quotes at %q: not a list", path)
	}
	records := make([]Record, 0, len(jlist))
	for i, item := range jlist {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected quote #%d: not an object", i)
		}
		records = append(records, Record(obj))
	}
	return records, nil
}

// Now is the clock used to timestamp tables.
var Now = time.Now

// Table fetches the records required by opts and runs the pipeline on them.
func (s *Source) Table(ctx context.Context, opts Options) (*Table, error) {
	records, err := s.Fetch(ctx, opts.Limit(), opts.currency())
	if err != nil {
		return nil, err
	}
	t := NewTable(records, opts)
	t.Source = s.Host()
	t.FetchedAt = Now()
	return t, nil
}

func (s *Source) client() *http.Client {
	if s.Client == nil {
		return http.DefaultClient
	}
	return s.Client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// data. Numbers are decoded as json.Number to keep them exact.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("invalid response from %v: %w", resp.Request.URL.Host, err)
	}
	return nil
}
