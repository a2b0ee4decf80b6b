package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	internalhttp "github.com/modfetch-io/modrinth-client/internal/http"
	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/project/AANobbMI", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "my-tool/1.0.0", request.Header.Get("User-Agent"))

			response := map[string]string{"id": "AANobbMI", "title": "Sodium"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-token", internalhttp.WithUserAgent("my-tool/1.0.0"))

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/project/AANobbMI",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "AANobbMI", result["id"])
		assert.Equal(t, "Sodium", result["title"])
	})

	t.Run("no authorization header without token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, present := request.Header["Authorization"]
			assert.False(t, present)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		resp, err := client.Get(context.Background(), "/projects_random", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects_random", request.URL.Path)
			assert.Equal(t, "count=5", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/projects_random",
			Query:  url.Values{"count": []string{"5"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "value", body["key"])

			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		req := &internalhttp.Request{
			Method: "POST",
			Path:   "/test",
			Body:   map[string]string{"key": "value"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
	})

	t.Run("request with raw body", func(t *testing.T) {
		t.Parallel()

		image := []byte{0x89, 'P', 'N', 'G'}

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "image/png", request.Header.Get("Content-Type"))
			assert.Equal(t, "ext=png&featured=true", request.URL.RawQuery)

			body, _ := io.ReadAll(request.Body)
			assert.Equal(t, image, body)

			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		query := url.Values{"ext": []string{"png"}, "featured": []string{"true"}}

		resp, err := client.PostRaw(context.Background(), "/project/AANobbMI/gallery", query, image, "image/png")
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)

			response := modrinth.APIError{
				Kind:        "not_found",
				Description: "the requested route does not exist",
			}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/project/does-not-exist",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := &modrinth.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.Status)
		assert.Equal(t, "not_found", apiErr.Kind)
		assert.Equal(t, "the requested route does not exist", apiErr.Description)
		assert.NotEmpty(t, apiErr.Body)
		assert.True(t, modrinth.IsNotFound(err))
	})

	t.Run("error response with non-JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		_, err := client.Get(context.Background(), "/project/AANobbMI", nil)
		require.Error(t, err)

		apiErr := &modrinth.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 502, apiErr.Status)
		assert.Equal(t, []byte("bad gateway"), apiErr.Body)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/project/AANobbMI",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := internalhttp.NewClient(server.URL, "", internalhttp.WithLogger(logger), internalhttp.WithDebug(true))

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/project/AANobbMI",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*internalhttp.Client, context.Context) (*internalhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := internalhttp.NewClient(server.URL, "")
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_BaseURLJoining(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/project/AANobbMI", request.URL.Path)
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// A trailing slash on the base URL must not produce a duplicate slash.
	client := internalhttp.NewClient(server.URL+"/", "")

	resp, err := client.Get(context.Background(), "/project/AANobbMI", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
