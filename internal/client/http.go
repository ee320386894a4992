package client

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"context"

	domain "token_verifier/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// doGet executes a GET request and returns the response body, classifying
// failures per the upstream client contract: transport failures, non-success
// statuses and non-JSON bodies each map to a typed QueryError. The body is
// copied out before the fasthttp response is released.
func doGet(ctx context.Context, hc *fasthttp.Client, requestURL string, timeout time.Duration) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := hc.DoDeadline(req, resp, deadline); err != nil {
			return nil, domain.NewTransportError(fmt.Errorf("failed to execute request to %s: %w", requestURL, err))
		}
	} else {
		if err := hc.DoTimeout(req, resp, timeout); err != nil {
			return nil, domain.NewTransportError(fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err))
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, domain.NewHTTPError(resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	contentType := string(resp.Header.ContentType())
	if contentType != "" && !strings.Contains(contentType, "json") {
		return nil, domain.NewFormatError(fmt.Sprintf("unexpected content type %q from %s", contentType, requestURL), nil)
	}

	body := append([]byte(nil), resp.Body()...)
	return body, nil
}
