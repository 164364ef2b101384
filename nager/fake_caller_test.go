package nager

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/dvcrn/nager-date-go/client"
)

type fakeReply struct {
	status int
	body   string
	err    error
}

// fakeCaller serves canned bodies by resolved path and counts requests.
type fakeCaller struct {
	mu      sync.Mutex
	replies map[string]fakeReply
	calls   map[string]int
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{
		replies: map[string]fakeReply{},
		calls:   map[string]int{},
	}
}

func (f *fakeCaller) on(path, body string) *fakeCaller {
	f.replies[path] = fakeReply{status: http.StatusOK, body: body}
	return f
}

func (f *fakeCaller) onStatus(path string, status int, body string) *fakeCaller {
	f.replies[path] = fakeReply{status: status, body: body}
	return f
}

func (f *fakeCaller) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func (f *fakeCaller) Do(ctx context.Context, req client.Request) (*client.Response, error) {
	path := req.Path
	for name, value := range req.PathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
	}

	f.mu.Lock()
	f.calls[path]++
	reply, ok := f.replies[path]
	f.mu.Unlock()

	url := "https://date.nager.at/api/v3" + path
	if !ok {
		return nil, &client.RemoteAPIError{URL: url, StatusCode: http.StatusNotFound, Body: []byte(`{"title":"Not Found","status":404}`)}
	}
	if reply.err != nil {
		return nil, reply.err
	}
	if reply.status < 200 || reply.status > 299 {
		return nil, &client.RemoteAPIError{URL: url, StatusCode: reply.status, Body: []byte(reply.body)}
	}
	return &client.Response{URL: url, StatusCode: reply.status, Body: []byte(reply.body)}, nil
}
