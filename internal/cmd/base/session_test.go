package base

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/mocktracer"
)

func TestRedactQuery(t *testing.T) {
	assert.Equal(t, "https://api.example.com/tasks/a.mpp", redactQuery("https://api.example.com/tasks/a.mpp?appSID=sid&signature=s"))
	assert.Equal(t, "https://api.example.com/tasks/a.mpp", redactQuery("https://api.example.com/tasks/a.mpp"))
}

func TestTraceClient_RedactsSignature(t *testing.T) {
	mt := mocktracer.Start()
	defer mt.Stop()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := traceClient(srv.Client(), "taskcloud-test")
	resp, err := client.Get(srv.URL + "/tasks/a.mpp/tasks?appSID=sid&signature=secret")
	require.NoError(t, err)
	resp.Body.Close()

	spans := mt.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "taskcloud-test", spans[0].Tag("service.name"))
	assert.Equal(t, "GET /tasks/a.mpp/tasks", spans[0].Tag("resource.name"))
	assert.Equal(t, srv.URL+"/tasks/a.mpp/tasks", spans[0].Tag("http.url"))
}
