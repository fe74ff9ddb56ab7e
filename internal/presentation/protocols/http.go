package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	StatusCode int
	// Header overrides the default application/json response headers; used
	// by the spreadsheet export.
	Header http.Header
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Controller interface {
	Handle(HttpRequest) *HttpResponse
}
