package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport logs full HTTP request/response dumps for troubleshooting
// API communication and auth issues.
//
// Dumps include bodies and headers, tokens included, so only enable it in
// development environments.
type debugTransport struct{ base http.RoundTripper }

func defaultTransport() http.RoundTripper { return http.DefaultTransport }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks whether HTTP debug logging should be
// enabled via environment variable.
//
//   - INNSIGHT_DEBUG=true for targeted client debugging
//   - DEBUG=true as the general development flag
func debugLoggingRequested() bool {
	return os.Getenv("INNSIGHT_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
