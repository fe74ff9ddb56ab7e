package helpers

import (
	"bytes"
	"encoding/json"
	"io"

	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	if body == nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader(nil)),
			StatusCode: statusCode,
		}
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"erro ao serializar resposta"}`))),
			StatusCode: 500,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}
