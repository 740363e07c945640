// Package gsheet is a minimal client for the Google Sheets values API,
// just enough to pull a single column of raw cell strings.
package gsheet

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/Kyle-Ross/Daily-Data-Check-Push-Notifier/pkg/whttp"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

type Client struct {
	BaseURL string
	apiKey  string
	client  *retryablehttp.Client // nil means the shared whttp default
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// FetchColumn returns the non-blank cells of the first column in
// cellRange (e.g. "Form Responses 1!C2:C"), top to bottom.
func (c *Client) FetchColumn(spreadsheetID, cellRange string) ([]string, error) {
	reqURL := fmt.Sprintf("%s/%s/values/%s?majorDimension=COLUMNS&key=%s",
		c.BaseURL, url.PathEscape(spreadsheetID), url.PathEscape(cellRange), url.QueryEscape(c.apiKey))

	res, err := whttp.SendHTTPRequest(&whttp.WHTTPReq{
		Method: "GET",
		URL:    reqURL,
	}, c.client)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != 200 {
		if msg := gjson.Get(res.BodyString, "error.message").Str; msg != "" {
			return nil, fmt.Errorf("sheets API returned status %d: %s", res.StatusCode, msg)
		}
		return nil, fmt.Errorf("sheets API returned status %d", res.StatusCode)
	}

	var cells []string
	for _, v := range gjson.Get(res.BodyString, "values.0").Array() {
		if cell := strings.TrimSpace(v.String()); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells, nil
}
