package whttp

import (
	"io"
	"log"
	"strings"
	"sync"

	"github.com/hashicorp/go-retryablehttp"
)

type WHTTPHeader struct {
	Name  string
	Value string
}

type WHTTPReq struct {
	URL     string
	Method  string
	Headers []WHTTPHeader
	Body    string
}

type WHTTPRes struct {
	StatusCode int
	BodyString string
}

var (
	defaultClient     *retryablehttp.Client
	defaultClientOnce sync.Once
)

// GetDefaultClient returns the shared retrying HTTP client.
func GetDefaultClient() *retryablehttp.Client {
	defaultClientOnce.Do(func() {
		defaultClient = retryablehttp.NewClient()
		defaultClient.Logger = log.New(io.Discard, "", 0)
		defaultClient.RetryMax = 3
	})
	return defaultClient
}

// SendHTTPRequest performs the request with the given client, falling back
// to the shared default client when client is nil.
func SendHTTPRequest(wReq *WHTTPReq, client *retryablehttp.Client) (wRes *WHTTPRes, err error) {
	if client == nil {
		client = GetDefaultClient()
	}

	var bodyReader io.Reader
	if wReq.Body != "" {
		bodyReader = strings.NewReader(wReq.Body)
	}

	req, err := retryablehttp.NewRequest(wReq.Method, wReq.URL, bodyReader)
	if err != nil {
		return nil, err
	}

	// Set common headers
	req.Header.Set("User-Agent", "ddcheck")
	req.Header.Set("Accept", "application/json")

	// Set custom headers
	for _, h := range wReq.Headers {
		req.Header.Set(h.Name, h.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	return &WHTTPRes{
		StatusCode: resp.StatusCode,
		BodyString: string(bodyBytes),
	}, nil
}
