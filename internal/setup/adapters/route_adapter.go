package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
)

// AdaptRoute bridges a controller into an http.Handler: it wraps the incoming
// request into the controller protocol and writes the controller's response
// back, defaulting to JSON unless the controller set its own headers.
func AdaptRoute(controller presentationProtocols.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request := presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		}

		response := controller.Handle(request)
		defer response.Body.Close()

		if len(response.Header) > 0 {
			for key, values := range response.Header {
				for _, value := range values {
					w.Header().Add(key, value)
				}
			}
		} else {
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(response.StatusCode)
		io.Copy(w, response.Body)
	})
}
