package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/push-notifier/internal/model"
)

func TestClient_GetContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/content/reply/4":
			_, _ = w.Write([]byte(`{"type":"reply","id":4,"author_id":3,"title":"Re","parent_type":"topic","parent_id":2,"parent_title":"Hello"}`))
		case "/content/reply/5":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "key", 0)

	got, err := c.GetContent(context.Background(), "reply", 4)
	require.NoError(t, err)
	assert.Equal(t, &model.Content{
		Type: "reply", ID: 4, AuthorID: 3, Title: "Re",
		ParentType: "topic", ParentID: 2, ParentTitle: "Hello",
	}, got)

	got, err = c.GetContent(context.Background(), "reply", 5)
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = c.GetContent(context.Background(), "reply", 6)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestClient_UserCan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/permissions", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "view", q.Get("action"))
		assert.Equal(t, "topic", q.Get("object_type"))
		assert.Equal(t, "2", q.Get("object_id"))

		if q.Get("user_id") == "0" {
			_, _ = w.Write([]byte(`{"allowed":false}`))
			return
		}

		_, _ = w.Write([]byte(`{"allowed":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)

	ok, err := c.UserCan(context.Background(), 7, "view", "topic", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.UserCan(context.Background(), 0, "view", "topic", 2)
	require.NoError(t, err)
	assert.False(t, ok)
}
