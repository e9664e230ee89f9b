package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasksync/pkg/api"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/", 10*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("http://localhost:8080", 0)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestClient_Invoke_Success(t *testing.T) {
	// Создаем mock сервер
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/task_save", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "tok", r.PostForm.Get("token"))
		assert.Equal(t, "Buy milk", r.PostForm.Get("title"))
		assert.Equal(t, []string{"5", "6"}, r.PostForm["tag_ids[]"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 42, "title": "Buy milk"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	params := Params{}.
		Add(api.ParamToken, "tok").
		Add(api.ParamTitle, "Buy milk").
		Add(api.ParamTagIDs, []int64{5, 6})

	result, err := client.Invoke(context.Background(), api.ProcTaskSave, params)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(result, &body))
	assert.InDelta(t, 42, body["id"], 0)
}

func TestClient_Invoke_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","message":"title is required"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Invoke(context.Background(), api.ProcTaskSave, nil)
	require.Error(t, err)

	var serviceErr *ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, api.ProcTaskSave, serviceErr.Method)
	assert.Equal(t, "title is required", serviceErr.Message)
	assert.False(t, IsTransient(err))
	assert.True(t, IsServiceError(err))
}

func TestClient_Invoke_ClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error","message":"not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Invoke(context.Background(), api.ProcTagShow, nil)
	require.Error(t, err)
	assert.True(t, IsServiceError(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestClient_Invoke_TransportErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			status: http.StatusBadGateway,
		},
		{
			name: "non json body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>maintenance</html>"))
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, time.Second)
			_, err := client.Invoke(context.Background(), api.ProcTaskList, nil)
			require.Error(t, err)

			var transportErr *TransportError
			require.True(t, errors.As(err, &transportErr))
			assert.Equal(t, tt.status, transportErr.StatusCode)
			assert.True(t, IsTransient(err))
		})
	}
}

func TestClient_Invoke_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 20*time.Millisecond)
	_, err := client.Invoke(context.Background(), api.ProcTaskList, nil)
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestClient_Invoke_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)
	_, err := client.Invoke(context.Background(), api.ProcTaskList, nil)
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestClient_Post_Multipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/comment_add", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "hello", r.FormValue("message"))
		assert.Equal(t, "10", r.FormValue("tag_id"))

		file, header, err := r.FormFile("picture")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "image.jpg", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)

		_, _ = w.Write([]byte(`{"id":77,"picture":"http://img/77.jpg"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	params := Params{}.Add(api.ParamMessage, "hello").Add(api.ParamTagID, int64(10))

	result, err := client.Post(context.Background(), api.ProcCommentAdd, []byte{0xff, 0xd8, 0xff}, params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":77,"picture":"http://img/77.jpg"}`, string(result))
}

func TestParams(t *testing.T) {
	params := Params{}.
		Add("title", "x").
		Add("has_due_time", true).
		Add("importance", 2).
		Add("tags[]", []string{"home", "work"}).
		Add("user_id", int64(-1)).
		Add("members", "")

	assert.True(t, params.Has("title"))
	assert.False(t, params.Has("notes"))
	assert.Equal(t, []string{"title", "has_due_time", "importance", "tags[]", "user_id", "members"}, params.Keys())

	values := params.Values()
	assert.Equal(t, "x", values.Get("title"))
	assert.Equal(t, "1", values.Get("has_due_time"))
	assert.Equal(t, "2", values.Get("importance"))
	assert.Equal(t, []string{"home", "work"}, values["tags[]"])
	assert.Equal(t, "-1", values.Get("user_id"))
	_, ok := values["members"]
	assert.True(t, ok)
}
