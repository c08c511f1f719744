package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// loggingTransport logs one line per round trip.
type loggingTransport struct {
	base http.RoundTripper
}

func (t loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		zap.L().Error("http request", append(fields, zap.Error(err))...)
		return nil, err
	}

	fields = append(fields, zap.Int("status", resp.StatusCode))
	if resp.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("http request", fields...)
		return resp, nil
	}

	zap.L().Info("http request", fields...)
	return resp, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: loggingTransport{base: http.DefaultTransport},
	}
}
