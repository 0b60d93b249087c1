package define

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleResponse = `[
  {
    "word": "crate",
    "meanings": [
      {
        "partOfSpeech": "noun",
        "definitions": [
          {"definition": "A large open box or basket, used especially for transporting goods."}
        ]
      }
    ]
  }
]`

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/crate" {
			t.Errorf("request path = %q, want /crate", r.URL.Path)
		}
		fmt.Fprint(w, sampleResponse)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	def, err := c.Lookup("CRATE")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}

	if def.Word != "crate" {
		t.Errorf("Word = %q, want crate", def.Word)
	}
	if def.PartOfSpeech != "noun" {
		t.Errorf("PartOfSpeech = %q, want noun", def.PartOfSpeech)
	}
	if def.Meaning == "" {
		t.Error("Meaning is empty")
	}
}

func TestLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"title":"No Definitions Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Lookup("zzzzz"); err == nil {
		t.Error("Lookup() succeeded for a 404 response")
	}
}

func TestLookupMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Lookup("crate"); err == nil {
		t.Error("Lookup() succeeded on malformed body")
	}
}

func TestLookupNoDefinitions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"word":"crate","meanings":[]}]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Lookup("crate"); err == nil {
		t.Error("Lookup() succeeded with no definitions in the response")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", 0)
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
	if c.httpClient.Timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", c.httpClient.Timeout, defaultTimeout)
	}
}
