package vindecoder

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHTTPClient struct {
	responses []*http.Response
	errs      []error
	calls     int
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return s.responses[len(s.responses)-1], nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const sampleVPIC = `{"Results":[{"Make":"HONDA","Model":"Accord","ModelYear":"2019","Trim":"EX-L","ErrorCode":"0"}]}`

func TestDecodeVIN(t *testing.T) {
	stub := &stubHTTPClient{responses: []*http.Response{jsonResponse(200, sampleVPIC)}}
	client := New(stub, Config{})

	decoded, err := client.DecodeVIN(context.Background(), "1hgcm82633a004352")
	require.NoError(t, err)
	assert.Equal(t, 2019, decoded.Year)
	assert.Equal(t, "HONDA", decoded.Make)
	assert.Equal(t, "Accord", decoded.Model)
	assert.Equal(t, "EX-L", decoded.Trim)
}

func TestDecodeVINMock(t *testing.T) {
	client := New(nil, Config{Mock: true})
	decoded, err := client.DecodeVIN(context.Background(), "ANYVIN")
	require.NoError(t, err)
	assert.NotEmpty(t, decoded.Make)
}

func TestDecodeVINEmpty(t *testing.T) {
	client := New(nil, Config{Mock: true})
	_, err := client.DecodeVIN(context.Background(), "   ")
	assert.Error(t, err)
}

func TestDecodeVINRetriesThenSucceeds(t *testing.T) {
	stub := &stubHTTPClient{
		responses: []*http.Response{
			jsonResponse(503, ""),
			jsonResponse(200, sampleVPIC),
		},
	}
	client := New(stub, Config{MaxRetries: 3})

	decoded, err := client.DecodeVIN(context.Background(), "1HGCM82633A004352")
	require.NoError(t, err)
	assert.Equal(t, "HONDA", decoded.Make)
	assert.Equal(t, 2, stub.calls)
}

func TestDecodeVINBreakerOpens(t *testing.T) {
	stub := &stubHTTPClient{responses: []*http.Response{jsonResponse(429, "")}}
	client := New(stub, Config{MaxRetries: 10, BreakerMax: 3})

	_, err := client.DecodeVIN(context.Background(), "1HGCM82633A004352")
	require.ErrorIs(t, err, ErrCircuitOpen)

	// Breaker stays open without touching the network again.
	before := stub.calls
	_, err = client.DecodeVIN(context.Background(), "1HGCM82633A004352")
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, before, stub.calls)
}

func TestDecodeVINNoResults(t *testing.T) {
	stub := &stubHTTPClient{responses: []*http.Response{jsonResponse(200, `{"Results":[]}`)}}
	client := New(stub, Config{})

	_, err := client.DecodeVIN(context.Background(), "1HGCM82633A004352")
	assert.Error(t, err)
}
