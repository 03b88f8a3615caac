package repository

import (
	"context"
	"net/url"

	"hospital-kiosk/internal/converter"
	"hospital-kiosk/internal/infrastructure/gateway"
)

// Fetcher is the slice of the gateway the upstream repositories need.
type Fetcher interface {
	Get(ctx context.Context, endpoint string, query url.Values) gateway.Result
	InvalidatePath(path string)
}

// UpstreamError reports a failed backend call. Its message is the one the
// gateway extracted, so it can be shown to the kiosk as is.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func fetchList(ctx context.Context, f Fetcher, endpoint string, query url.Values) ([]converter.Record, error) {
	res := f.Get(ctx, endpoint, query)
	if !res.Success {
		return nil, &UpstreamError{Endpoint: endpoint, StatusCode: res.StatusCode, Message: res.Message}
	}
	return converter.DecodeList(res.Data)
}

// fetchObject returns nil, nil on 404 or an empty payload.
func fetchObject(ctx context.Context, f Fetcher, endpoint string) (converter.Record, error) {
	res := f.Get(ctx, endpoint, nil)
	if !res.Success {
		if res.StatusCode == 404 {
			return nil, nil
		}
		return nil, &UpstreamError{Endpoint: endpoint, StatusCode: res.StatusCode, Message: res.Message}
	}
	rec, err := converter.DecodeObject(res.Data)
	if err == converter.ErrEmptyPayload {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
