package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"babel/src/utils/config"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	conf := config.Default()
	conf.Translator.Url = server.URL
	return NewClient(&conf.Translator), server
}

func TestTranslate(t *testing.T) {
	var requests int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.Equal(t, "/v1/translate", r.URL.Path)

		var request translationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Equal(t, "English", request.SourceLanguage)
		require.Equal(t, "Spanish", request.TargetLanguage)

		json.NewEncoder(w).Encode(translationResponse{TranslatedText: "Hola"})
	})

	translated, err := client.Translate(context.Background(), "English", "Spanish", "Hello")
	require.NoError(t, err)
	require.Equal(t, "Hola", translated)
	require.Equal(t, 1, requests)
}

func TestTranslateServesRepeatsFromCache(t *testing.T) {
	var requests int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(translationResponse{TranslatedText: "Hola"})
	})

	for i := 0; i < 3; i++ {
		translated, err := client.Translate(context.Background(), "English", "Spanish", "Hello")
		require.NoError(t, err)
		require.Equal(t, "Hola", translated)
	}

	// Case of the language pair must not matter for the cache key
	_, err := client.Translate(context.Background(), "english", "SPANISH", "Hello")
	require.NoError(t, err)

	require.Equal(t, 1, requests)
}

func TestTranslateRejectsEmptyResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(translationResponse{TranslatedText: "  "})
	})

	_, err := client.Translate(context.Background(), "English", "Spanish", "Hello")
	require.Error(t, err)
}

func TestTranslatePropagatesServerErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Translate(context.Background(), "English", "Spanish", "Hello")
	require.Error(t, err)
}
