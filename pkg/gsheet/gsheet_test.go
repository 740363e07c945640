package gsheet

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchColumn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.RawQuery, "majorDimension=COLUMNS") {
			t.Errorf("expected COLUMNS major dimension, got query %q", r.URL.RawQuery)
		}
		if !strings.Contains(r.URL.RawQuery, "key=test-key") {
			t.Errorf("api key not passed, got query %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"range":"'Form Responses 1'!C2:C","majorDimension":"COLUMNS","values":[["02/26/2022","","02/27/2022","  ","02/27/2022"]]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	cells, err := c.FetchColumn("sheet-id", "Form Responses 1!C2:C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"02/26/2022", "02/27/2022", "02/27/2022"}
	if len(cells) != len(want) {
		t.Fatalf("blank cells not dropped, got %v", cells)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cell %d: expected %q, got %q", i, want[i], cells[i])
		}
	}
}

func TestFetchColumnEmptySheet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"range":"'Form Responses 1'!C2:C","majorDimension":"COLUMNS"}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	cells, err := c.FetchColumn("sheet-id", "Form Responses 1!C2:C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) != 0 {
		t.Fatalf("expected no cells, got %v", cells)
	}
}

func TestFetchColumnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	c := NewClient("bad-key")
	c.BaseURL = srv.URL

	_, err := c.FetchColumn("sheet-id", "C2:C")
	if err == nil {
		t.Fatal("expected an error for a 403 response")
	}
	if !strings.Contains(err.Error(), "The caller does not have permission") {
		t.Fatalf("API error message not surfaced: %v", err)
	}
}
