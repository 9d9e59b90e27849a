package predictor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"vitaldeck/internal/patient"
)

func TestMain(m *testing.M) {
	// resty keeps idle connections in its transport; ignore the poller.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func testInput() patient.Input {
	return patient.ParseVitals("Alice", "1", "180", "80", "20", "85", "26.4", "0.5", "45")
}

func TestPredictSuccessPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, PredictPath, r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"diabetes": true, "heart": false, "kidney": false,
			"liver": false, "thyroid": false,
			"explanation": ["High glucose level"]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	a, err := c.Predict(context.Background(), testInput())
	require.NoError(t, err)
	assert.True(t, a.Diabetes)
	assert.False(t, a.Heart)
	assert.Equal(t, []string{"High glucose level"}, a.Explanation)
}

func TestPredictEmptyExplanationTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"diabetes": false, "heart": true, "kidney": false, "liver": false, "thyroid": false}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	a, err := c.Predict(context.Background(), testInput())
	require.NoError(t, err)
	assert.True(t, a.Heart)
	assert.Empty(t, a.Explanation)
}

func TestPredictNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model offline", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.Predict(context.Background(), testInput())

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusInternalServerError, remote.StatusCode)
}

func TestPredictMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.Predict(context.Background(), testInput())

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Zero(t, remote.StatusCode)
}

func TestPredictTransportFailure(t *testing.T) {
	// Nothing listening here.
	c := New("http://127.0.0.1:1", 2*time.Second)
	_, err := c.Predict(context.Background(), testInput())

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Zero(t, remote.StatusCode)
}

func TestSubmitStampsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"diabetes": true, "explanation": []}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	s, err := c.Submit(context.Background(), testInput())
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.NotEmpty(t, s.Timestamp)
	assert.Equal(t, "Alice", s.Input.Name)
	assert.True(t, s.Assessment.Diabetes)
}

func TestSubmitFailureProducesNoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	s, err := c.Submit(context.Background(), testInput())
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*RemoteError)))
	assert.Empty(t, s.ID)
}
