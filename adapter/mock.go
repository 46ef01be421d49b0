package adapter

import (
	"context"
	"sync"
)

// MockRequest is one request recorded by Mock.
type MockRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
}

// Mock records requests and answers them from a queue of canned bodies. When
// the queue is exhausted the last body is repeated; Err, if set, is returned
// instead.
type Mock struct {
	BaseURI   string
	Responses []string
	Err       error

	mtx      sync.Mutex
	requests []MockRequest
}

func NewMock(responses ...string) *Mock {
	return &Mock{Responses: responses}
}

func (m *Mock) SetBaseURI(uri string) {
	m.mtx.Lock()
	m.BaseURI = uri
	m.mtx.Unlock()
}

func (m *Mock) Request(ctx context.Context, method, path string, headers map[string]string, body string) (string, error) {

	m.mtx.Lock()
	defer m.mtx.Unlock()

	mHdr := make(map[string]string, len(headers))
	for k, v := range headers {
		mHdr[k] = v
	}
	m.requests = append(m.requests, MockRequest{
		Method:  method,
		URL:     m.BaseURI + path,
		Headers: mHdr,
		Body:    body,
	})

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}

	szBody := ""
	if n := len(m.Responses); n > 0 {
		szBody = m.Responses[0]
		if n > 1 {
			m.Responses = m.Responses[1:]
		}
	}
	return szBody, nil
}

// Requests returns the recorded requests in order.
func (m *Mock) Requests() []MockRequest {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	sOut := make([]MockRequest, len(m.requests))
	copy(sOut, m.requests)
	return sOut
}

// Last returns the most recent request.
func (m *Mock) Last() MockRequest {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if len(m.requests) == 0 {
		return MockRequest{}
	}
	return m.requests[len(m.requests)-1]
}
