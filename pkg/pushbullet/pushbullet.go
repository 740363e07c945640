// Package pushbullet is a minimal client for the Pushbullet pushes API.
package pushbullet

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/Kyle-Ross/Daily-Data-Check-Push-Notifier/pkg/whttp"
)

const defaultBaseURL = "https://api.pushbullet.com/v2/pushes"

type Client struct {
	BaseURL string
	client  *retryablehttp.Client // nil means the shared whttp default
}

func NewClient() *Client {
	return &Client{BaseURL: defaultBaseURL}
}

type notePayload struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Send pushes a note with the given title and body to the device(s) of
// the account identified by token.
func (c *Client) Send(token, title, body string) error {
	payload, err := json.Marshal(notePayload{Type: "note", Title: title, Body: body})
	if err != nil {
		return err
	}

	res, err := whttp.SendHTTPRequest(&whttp.WHTTPReq{
		Method: "POST",
		URL:    c.BaseURL,
		Headers: []whttp.WHTTPHeader{
			{Name: "Access-Token", Value: token},
			{Name: "Content-Type", Value: "application/json"},
		},
		Body: string(payload),
	}, c.client)
	if err != nil {
		return err
	}

	if res.StatusCode != 200 {
		if msg := gjson.Get(res.BodyString, "error.message").Str; msg != "" {
			return fmt.Errorf("pushbullet returned status %d: %s", res.StatusCode, msg)
		}
		return fmt.Errorf("pushbullet returned status %d", res.StatusCode)
	}
	return nil
}
