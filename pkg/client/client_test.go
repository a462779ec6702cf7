package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/pkg/client"
	clientlog "github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/pkg/client/log"
)

// flakyTransport fails the first n round trips, then delegates.
type flakyTransport struct {
	failures int32
	next     http.RoundTripper
	attempts int32
}

func (ft *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	attempt := atomic.AddInt32(&ft.attempts, 1)
	if attempt <= atomic.LoadInt32(&ft.failures) {
		return nil, errors.New("connection refused")
	}
	return ft.next.RoundTrip(req)
}

func stubBridge(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestClientRetriesTransportFailures(t *testing.T) {
	tests := map[string]struct {
		failures  int32
		attempts  int
		expErr    bool
		expTrips  int32
		expResult bool
	}{
		"A clean transport should answer on the first attempt": {
			failures: 0, attempts: 3, expTrips: 1, expResult: true,
		},
		"Transient failures should be retried until an answer arrives": {
			failures: 2, attempts: 3, expTrips: 3, expResult: true,
		},
		"A dead transport should exhaust the attempts and fail": {
			failures: 10, attempts: 3, expErr: true, expTrips: 3,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ts := stubBridge(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(client.Result{Success: true, Message: "draw_box completed successfully"})
			})

			transport := &flakyTransport{failures: test.failures, next: http.DefaultTransport}
			c, err := client.New(client.Config{
				BaseURL:    ts.URL,
				HTTPClient: &http.Client{Transport: transport},
				Attempts:   test.attempts,
				RetryWait:  time.Millisecond,
			})
			require.NoError(t, err)

			res, err := c.DrawBox(context.Background(), client.BoxOpts{Width: 1, Depth: 1, Height: 1})

			if test.expErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.expResult, res.Success)
			}
			assert.Equal(t, test.expTrips, atomic.LoadInt32(&transport.attempts))
		})
	}
}

func TestClientDoesNotRetryServerErrors(t *testing.T) {
	var hits int32
	ts := stubBridge(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(client.Result{
			Success: false,
			Message: "extrude_last_sketch failed: no profile available",
			Error:   "no profile available",
		})
	})

	c, err := client.New(client.Config{BaseURL: ts.URL, RetryWait: time.Millisecond})
	require.NoError(t, err)

	res, err := c.Extrude(context.Background(), 5)

	// A failed operation is still an answer, not a transport error.
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "no profile available", res.Error)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClientDecodesEntityData(t *testing.T) {
	ts := stubBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_body_info", r.URL.Path)
		var req struct {
			BodyToken string `json:"body_token"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tok-1", req.BodyToken)

		w.Write([]byte(`{
			"success": true,
			"message": "get_body_info completed successfully",
			"entity_data": {"body_token": "tok-1", "body_name": "Body1", "volume": 125}
		}`))
	})

	c, err := client.New(client.Config{BaseURL: ts.URL})
	require.NoError(t, err)

	res, err := c.GetBodyInfo(context.Background(), "tok-1")
	require.NoError(t, err)
	require.NotNil(t, res.EntityData)
	assert.Equal(t, "Body1", res.EntityData.BodyName)
	require.NotNil(t, res.EntityData.Volume)
	assert.InDelta(t, 125, *res.EntityData.Volume, 0.001)
}

func TestClientParameterReads(t *testing.T) {
	ts := stubBridge(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/count_parameters":
			w.Write([]byte(`{"success": true, "user_parameter_count": 2}`))
		case "/list_parameters":
			w.Write([]byte(`{"success": true, "ModelParameter": [
				{"Name": "d1", "Wert": "4", "Unit": "cm", "Expression": "4 cm"},
				{"Name": "d2", "Wert": "7", "Unit": "cm", "Expression": "7 cm"}
			]}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	c, err := client.New(client.Config{BaseURL: ts.URL})
	require.NoError(t, err)

	count, err := c.CountParameters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	params, err := c.ListParameters(context.Background())
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "d1", params[0].Name)
	assert.Equal(t, "4", params[0].Value)
	assert.Equal(t, "7 cm", params[1].Expression)
}

func TestClientTestConnection(t *testing.T) {
	tests := map[string]struct {
		handler http.HandlerFunc
		expErr  bool
	}{
		"A healthy bridge should pass the check": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(client.Result{Success: true, Message: "connection ok"})
			},
		},
		"An unhealthy answer should fail the check": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(client.Result{Success: false, Message: "not ready"})
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ts := stubBridge(t, test.handler)
			c, err := client.New(client.Config{BaseURL: ts.URL})
			require.NoError(t, err)

			err = c.TestConnection(context.Background())
			if test.expErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// recordingLogger implements the SDK's public logging interface the way an
// embedding application would.
type recordingLogger struct {
	debug *[]string
}

func (l recordingLogger) Infof(format string, args ...any)    {}
func (l recordingLogger) Warningf(format string, args ...any) {}
func (l recordingLogger) Errorf(format string, args ...any)   {}
func (l recordingLogger) Debugf(format string, args ...any) {
	*l.debug = append(*l.debug, fmt.Sprintf(format, args...))
}
func (l recordingLogger) WithValues(values clientlog.Kv) clientlog.Logger { return l }
func (l recordingLogger) WithCtxValues(ctx context.Context) clientlog.Logger {
	return l
}
func (l recordingLogger) SetValuesOnCtx(parent context.Context, values clientlog.Kv) context.Context {
	return parent
}

func TestClientAcceptsExternalLogger(t *testing.T) {
	ts := stubBridge(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.Result{Success: true})
	})

	var debug []string
	c, err := client.New(client.Config{
		BaseURL:    ts.URL,
		HTTPClient: &http.Client{Transport: &flakyTransport{failures: 1, next: http.DefaultTransport}},
		RetryWait:  time.Millisecond,
		Logger:     recordingLogger{debug: &debug},
	})
	require.NoError(t, err)

	_, err = c.Undo(context.Background())
	require.NoError(t, err)

	// The retried attempt surfaces through the injected logger.
	require.NotEmpty(t, debug)
	assert.Contains(t, debug[0], "attempt 1")
}

func TestClientBaseURLNormalization(t *testing.T) {
	var gotPath string
	ts := stubBridge(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(client.Result{Success: true})
	})

	c, err := client.New(client.Config{BaseURL: ts.URL + "/"})
	require.NoError(t, err)

	_, err = c.Undo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/undo", gotPath)
}
