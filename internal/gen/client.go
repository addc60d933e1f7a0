package gen

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Progress is one progress event from the service's websocket: Step out of
// Total, plus an optional status line.
type Progress struct {
	Step   int    `json:"step"`
	Total  int    `json:"total"`
	Status string `json:"status"`
}

// Client submits generation requests over HTTP and, optionally, follows
// progress events over the service's websocket.
type Client struct {
	baseURL  string // host:port
	clientID string
	http     *http.Client

	// OnProgress, if set, receives progress events while Generate blocks.
	OnProgress func(Progress)
}

func NewClient(addr string) *Client {
	return &Client{
		baseURL:  addr,
		clientID: uuid.NewString(),
		http:     &http.Client{Timeout: 300 * time.Second},
	}
}

// Generate submits the request and returns the first image of the response.
// Generation is slow; the caller runs this off the UI goroutine.
func (c *Client) Generate(r Request) ([]byte, error) {
	payload, err := BuildPayload(c.clientID, r)
	if err != nil {
		return nil, err
	}

	stop := c.followProgress()
	defer stop()

	endpoint := fmt.Sprintf("http://%s/v1/generate", c.baseURL)
	resp, err := c.http.Post(endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gen: contacting service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gen: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gen: service returned %d: %s", resp.StatusCode, string(body))
	}
	return ExtractImage(body)
}

// followProgress connects to the service's progress websocket and forwards
// events to OnProgress until the connection closes or stop is called. The
// service is free to not offer the endpoint; that just means no progress.
func (c *Client) followProgress() (stop func()) {
	if c.OnProgress == nil {
		return func() {}
	}
	u := url.URL{Scheme: "ws", Host: c.baseURL, Path: "/ws", RawQuery: "client_id=" + c.clientID}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Printf("[gen] no progress stream: %v", err)
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var p Progress
			if err := conn.ReadJSON(&p); err != nil {
				return
			}
			c.OnProgress(p)
		}
	}()
	return func() {
		conn.Close()
		<-done
	}
}
