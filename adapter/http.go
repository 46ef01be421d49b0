package adapter

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// HTTP is the net/http implementation of Adapter.
type HTTP struct {
	BaseURI   string
	Client    *http.Client
	UserAgent string
}

func NewHTTP(baseURI string) *HTTP {
	return &HTTP{
		BaseURI:   strings.TrimRight(baseURI, "/"),
		Client:    &http.Client{Timeout: 30 * time.Second},
		UserAgent: "ripews",
	}
}

func (pH *HTTP) SetBaseURI(uri string) {
	pH.BaseURI = strings.TrimRight(uri, "/")
}

func (pH *HTTP) Request(ctx context.Context, method, path string, headers map[string]string, body string) (string, error) {

	szUrl := pH.BaseURI + "/" + strings.TrimLeft(path, "/")

	var rdBody io.Reader
	if len(body) > 0 {
		rdBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, szUrl, rdBody)
	if err != nil {
		return "", errors.WithMessage(err, "build request")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if len(pH.UserAgent) > 0 {
		req.Header.Set("User-Agent", pH.UserAgent)
	}

	pClient := pH.Client
	if pClient == nil {
		pClient = http.DefaultClient
	}

	rsp, err := pClient.Do(req)
	if err != nil {
		return "", err
	}
	defer rsp.Body.Close()

	bsBody, err := io.ReadAll(rsp.Body)
	if err != nil {
		return "", errors.WithMessage(err, "read response")
	}

	// error on non-2xx
	if (rsp.StatusCode < 200) || (rsp.StatusCode > 299) {
		return string(bsBody), &StatusError{
			Code:   rsp.StatusCode,
			Status: rsp.Status,
			URL:    szUrl,
			Body:   string(bsBody),
		}
	}

	return string(bsBody), nil
}
