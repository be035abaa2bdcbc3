package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.bug.st/serial"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// WriteTimeout bounds each websocket write.
const WriteTimeout = time.Second

// Publisher sends frames somewhere.
type Publisher interface {
	Publish(ctx context.Context, f TaggedFrame) error
	Close() error
}

// LinePublisher writes one JSON frame per line.
type LinePublisher struct {
	w io.Writer
}

// NewLinePublisher returns a LinePublisher on w. Close closes w when it is
// an io.Closer.
func NewLinePublisher(w io.Writer) *LinePublisher {
	return &LinePublisher{w: w}
}

// OpenSerial opens a serial port and publishes frames to it as lines.
func OpenSerial(name string, baud int) (*LinePublisher, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("trace: open serial port %s: %w", name, err)
	}
	return NewLinePublisher(port), nil
}

func (p *LinePublisher) Publish(ctx context.Context, f TaggedFrame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	_, err = p.w.Write(append(b, '\n'))
	return err
}

func (p *LinePublisher) Close() error {
	if c, ok := p.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// WebsocketPublisher streams frames over a websocket as JSON messages.
type WebsocketPublisher struct {
	c *websocket.Conn
}

// DialWebsocket connects to a websocket server at url.
func DialWebsocket(ctx context.Context, url string) (*WebsocketPublisher, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("trace: dial %s: %w", url, err)
	}
	return &WebsocketPublisher{c: c}, nil
}

func (p *WebsocketPublisher) Publish(ctx context.Context, f TaggedFrame) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, p.c, f)
}

func (p *WebsocketPublisher) Close() error {
	return p.c.Close(websocket.StatusNormalClosure, "")
}

// HTTPPublisher POSTs each frame to URL.
type HTTPPublisher struct {
	URL    string
	Client *http.Client
}

func (p *HTTPPublisher) Publish(ctx context.Context, f TaggedFrame) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("trace: publish to %s: %s", p.URL, resp.Status)
	}
	return nil
}

func (p *HTTPPublisher) Close() error { return nil }
