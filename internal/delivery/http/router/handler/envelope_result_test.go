package handler

import (
	"net/http/httptest"

	"tienda/internal/delivery/http/response"
)

// envelopeResult pairs a recorded response with its decoded envelope.
type envelopeResult struct {
	rec      *httptest.ResponseRecorder
	envelope response.Response
}
