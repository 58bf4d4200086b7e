package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Outcome classifies how a chat round trip ended.
type Outcome int

const (
	// Answered means a 2xx response carrying an answer.
	Answered Outcome = iota
	// Rejected means the backend responded with a non-2xx status.
	Rejected
	// Unreachable means no usable response arrived.
	Unreachable
)

func (o Outcome) String() string {
	switch o {
	case Answered:
		return "answered"
	case Rejected:
		return "rejected"
	case Unreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Reply is the result of one Ask. Failures are data, not errors: the widget
// turns them into fallback messages.
type Reply struct {
	Outcome Outcome
	Answer  string // set when Answered
	Status  int    // HTTP status, zero when Unreachable
	Body    string // raw response body when Rejected
	Detail  string // "detail" field of a JSON failure body, if any
	Err     error  // set when Unreachable
}

func Answer(answer string) Reply {
	return Reply{Outcome: Answered, Answer: answer}
}

func Failure(err error) Reply {
	return Reply{Outcome: Unreachable, Err: err}
}

type chatRequest struct {
	Question string `json:"question"`
}

type Options struct {
	ServerURL string
	ChatPath  string
	// Timeout of zero waits for the backend indefinitely.
	Timeout time.Duration
}

// Client talks to the /chat endpoint.
type Client struct {
	http *resty.Client
	path string
}

func NewClient(opts Options) *Client {
	path := opts.ChatPath
	if path == "" {
		path = "/chat"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(opts.ServerURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "RoriChat/1.0").
		SetRetryCount(0)
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	return &Client{
		http: httpClient,
		path: path,
	}
}

// Ask sends one question and waits for the backend to settle.
func (c *Client) Ask(ctx context.Context, question string) Reply {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(chatRequest{Question: question}).
		Post(c.path)
	if err != nil {
		return Failure(fmt.Errorf("request failed: %w", err))
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		return Reply{
			Outcome: Rejected,
			Status:  resp.StatusCode(),
			Body:    string(body),
			Detail:  gjson.GetBytes(body, "detail").String(),
		}
	}

	if !gjson.ValidBytes(body) {
		reply := Failure(errors.New("failed to decode answer: body is not JSON"))
		reply.Status = resp.StatusCode()
		return reply
	}

	// A missing or non-string answer cannot be rendered
	answer := gjson.GetBytes(body, "answer")
	if answer.Type != gjson.String {
		reply := Failure(fmt.Errorf("failed to decode answer: answer is %s", describe(answer)))
		reply.Status = resp.StatusCode()
		return reply
	}

	reply := Answer(answer.Str)
	reply.Status = resp.StatusCode()
	return reply
}

func describe(r gjson.Result) string {
	if !r.Exists() {
		return "missing"
	}
	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.Number:
		return "a number"
	case gjson.True, gjson.False:
		return "a boolean"
	default:
		return "not a string"
	}
}
