package marketcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kindedErr struct{ kind ErrorKind }

func (e kindedErr) Error() string        { return "client: " + e.kind.String() }
func (e kindedErr) ErrorKind() ErrorKind { return e.kind }

func TestClassify(t *testing.T) {
	var syntaxErr error
	{
		var v map[string]any
		syntaxErr = json.Unmarshal([]byte("{not json"), &v)
		require.Error(t, syntaxErr)
	}

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"fetch error passes through", &FetchError{Kind: KindEmptyData, Message: "none"}, KindEmptyData},
		{"wrapped fetch error", fmt.Errorf("outer: %w", &FetchError{Kind: KindServer}), KindServer},
		{"client supplied kind", kindedErr{KindInvalidResponse}, KindInvalidResponse},
		{"5xx status", &StatusError{StatusCode: 503}, KindServer},
		{"4xx status", &StatusError{StatusCode: 404, Body: "unknown symbol"}, KindInvalidRequest},
		{"3xx status", &StatusError{StatusCode: 304}, KindInvalidResponse},
		{"json syntax", syntaxErr, KindDecoding},
		{"json type", &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(0.0), Field: "price"}, KindDecoding},
		{"truncated body", io.ErrUnexpectedEOF, KindDecoding},
		{"deadline", context.DeadlineExceeded, KindNetworkFailure},
		{"canceled", context.Canceled, KindNetworkFailure},
		{"url error", &url.Error{Op: "Get", URL: "https://example.com", Err: errors.New("refused")}, KindNetworkFailure},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("no route")}, KindNetworkFailure},
		{"anything else", errors.New("mystery"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := Classify(tt.err)
			require.NotNil(t, fe)
			assert.Equal(t, tt.want, fe.Kind)
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassifyKeepsBodyForInvalidRequest(t *testing.T) {
	fe := Classify(&StatusError{StatusCode: 400, Body: "question too long"})
	assert.Equal(t, "question too long", fe.Message)
	assert.Equal(t, "question too long", fe.UserMessage())
}

func TestFetchErrorIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("history: %w", &FetchError{Kind: KindNetworkFailure, Message: "offline"})
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.NotErrorIs(t, err, ErrServer)
	assert.NotErrorIs(t, err, ErrStillLoading)
}

func TestFetchErrorString(t *testing.T) {
	assert.Equal(t, "server", (&FetchError{Kind: KindServer}).Error())
	assert.Equal(t, "empty_data: no rows", (&FetchError{Kind: KindEmptyData, Message: "no rows"}).Error())
}
