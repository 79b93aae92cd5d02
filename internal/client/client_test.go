package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundestag-io/dip-client/internal/client"
	"github.com/bundestag-io/dip-client/pkg/dip"
)

func newTestClient(t *testing.T, handler http.Handler) (*client.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	testClient, err := client.New(&dip.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	return testClient, server
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := client.New(nil)
	assert.ErrorIs(t, err, dip.ErrConfigRequired)

	_, err = client.New(&dip.Config{})
	assert.ErrorIs(t, err, dip.ErrAPIKeyRequired)

	_, err = client.New(&dip.Config{APIKey: "key", Format: "yaml"})
	assert.ErrorIs(t, err, dip.ErrInvalidFormat)
}

func TestNew_DefaultsToJSON(t *testing.T) {
	t.Parallel()

	testClient, err := client.New(&dip.Config{APIKey: "key"})
	require.NoError(t, err)
	assert.Equal(t, dip.FormatJSON, testClient.Format())
}

func TestClient_Get(t *testing.T) {
	t.Parallel()

	var requests int32

	testClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)

		assert.Equal(t, "/person/12345", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "12345",
			"typ":      "Person",
			"nachname": "Mustermann",
		})
	}))

	document, err := testClient.Get(context.Background(), dip.ResourcePerson, "12345")
	require.NoError(t, err)

	assert.Equal(t, "12345", document.ID())
	assert.Equal(t, "Person", document.Type())
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}

func TestClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	testClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"Dokument nicht gefunden"}`))
	}))

	_, err := testClient.Get(context.Background(), dip.ResourceDrucksache, "99999")
	require.Error(t, err)
	assert.True(t, dip.IsNotFound(err))
	assert.Contains(t, err.Error(), "Dokument nicht gefunden")
}

func TestClient_Get_Unauthorized(t *testing.T) {
	t.Parallel()

	testClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":401,"message":"An API key is required"}`))
	}))

	_, err := testClient.Get(context.Background(), dip.ResourceVorgang, "1")
	require.Error(t, err)
	assert.True(t, dip.IsUnauthorized(err))
}

func TestClient_Get_InvalidResourceType(t *testing.T) {
	t.Parallel()

	var requests int32

	testClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))

	_, err := testClient.Get(context.Background(), "ausschuss", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, dip.ErrInvalidResourceType)

	// Validation failed before any request was issued.
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}

func TestClient_All_Pagination(t *testing.T) {
	t.Parallel()

	var requests int32

	testClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)

		assert.Equal(t, "/vorgang", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("cursor") {
		case "":
			fmt.Fprint(w, `{"numFound":3,"documents":[{"id":"1"},{"id":"2"}],"cursor":"c1"}`)
		case "c1":
			fmt.Fprint(w, `{"numFound":3,"documents":[{"id":"3"}],"cursor":"c2"}`)
		default:
			// Echoing the cursor back ends the iteration.
			fmt.Fprint(w, `{"numFound":3,"documents":[{"id":"3"}],"cursor":"c2"}`)
		}
	}))

	iterator, err := testClient.All(context.Background(), dip.ResourceVorgang)
	require.NoError(t, err)

	documents, err := iterator.All()
	require.NoError(t, err)

	require.Len(t, documents, 3)
	assert.Equal(t, "1", documents[0].ID())
	assert.Equal(t, "3", documents[2].ID())
	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
}

func TestClient_Search_RepeatedIDs(t *testing.T) {
	t.Parallel()

	testClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"68852", "68853"}, r.URL.Query()["f.id"])

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"numFound":2,"documents":[{"id":"68852"},{"id":"68853"}],"cursor":"end"}`)
	}))

	params := dip.NewQueryParams().WithIDs("68852", "68853")

	iterator, err := testClient.Search(context.Background(), dip.ResourceDrucksache, params)
	require.NoError(t, err)

	page, err := iterator.Next()
	require.NoError(t, err)
	assert.Len(t, page.Documents, 2)
}

func TestClient_Search_InvalidParameter(t *testing.T) {
	t.Parallel()

	var requests int32

	testClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))

	params := dip.NewQueryParams().WithFilter("f.titel", "Haushalt")

	_, err := testClient.Search(context.Background(), dip.ResourceVorgang, params)
	require.Error(t, err)
	assert.ErrorIs(t, err, dip.ErrInvalidParameter)
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}

func TestClient_Search_DoesNotMutateCallerParams(t *testing.T) {
	t.Parallel()

	testClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Query().Get("cursor") == "" {
			fmt.Fprint(w, `{"numFound":1,"documents":[{"id":"1"}],"cursor":"c1"}`)
		} else {
			fmt.Fprint(w, `{"numFound":1,"documents":[],"cursor":"c1"}`)
		}
	}))

	params := dip.NewQueryParams().WithDateStart("2024-01-01")

	iterator, err := testClient.Search(context.Background(), dip.ResourceVorgang, params)
	require.NoError(t, err)

	_, err = iterator.All()
	require.NoError(t, err)

	assert.Empty(t, params.Cursor)
}

func TestClient_XMLFormat(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "xml", r.URL.Query().Get("format"))
		assert.Equal(t, "application/xml", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/xml")

		if r.URL.Query().Get("cursor") == "" {
			fmt.Fprint(w, `<response><numFound>1</numFound><document><id>1</id><titel>Protokoll</titel></document><cursor>c1</cursor></response>`)
		} else {
			fmt.Fprint(w, `<response><numFound>1</numFound><cursor>c1</cursor></response>`)
		}
	}))
	defer server.Close()

	testClient, err := client.New(&dip.Config{
		APIKey:  "test-key",
		Format:  dip.FormatXML,
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	iterator, err := testClient.All(context.Background(), dip.ResourcePlenarprotokoll)
	require.NoError(t, err)

	documents, err := iterator.All()
	require.NoError(t, err)

	require.Len(t, documents, 1)
	assert.Equal(t, "1", documents[0].ID())
	assert.Equal(t, "Protokoll", documents[0].Title())
	require.NotNil(t, documents[0].Node)
}

func TestClient_EntityClients(t *testing.T) {
	t.Parallel()

	testClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/person/11001478":
			fmt.Fprint(w, `{"id":"11001478","typ":"Person","nachname":"Merkel","vorname":"Angela","wahlperiode":19}`)
		case "/drucksache-text/68852":
			fmt.Fprint(w, `{"id":"68852","typ":"Dokument","dokumentnummer":"20/1000","text":"Der Bundestag wolle beschliessen ..."}`)
		default:
			http.NotFound(w, r)
		}
	}))

	ctx := context.Background()

	person, err := testClient.Personen().Get(ctx, "11001478")
	require.NoError(t, err)
	assert.Equal(t, "Merkel", person.Nachname)
	assert.Equal(t, 19, person.Wahlperiode)

	drucksache, err := testClient.Drucksachen().GetText(ctx, "68852")
	require.NoError(t, err)
	assert.Equal(t, "20/1000", drucksache.Dokumentnummer)
	assert.NotEmpty(t, drucksache.Text)
}

func TestClient_EntityClients_TypedDecodeRequiresJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, `<person><id>1</id></person>`)
	}))
	defer server.Close()

	testClient, err := client.New(&dip.Config{
		APIKey:  "test-key",
		Format:  dip.FormatXML,
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	_, err = testClient.Personen().Get(context.Background(), "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, dip.ErrTypedDecodeMarkup)
}
