//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
)

// defaultGems is the catalog served to the app unless a test overrides it
var defaultGems = []string{
	"Alexandrite",
	"Black Opal",
	"Diamond",
	"Fire Opal",
	"Ruby",
	"Star Sapphire",
}

// CatalogServer stands in for the gems-list API
type CatalogServer struct {
	*httptest.Server
	hits atomic.Int32
}

// Hits reports how many catalog requests were served
func (c *CatalogServer) Hits() int {
	return int(c.hits.Load())
}

// CreateTestWorkspace creates a temporary directory used as HOME and config root
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// ServeCatalog starts a catalog API for the app and points GEMSHUB_BASE_URL at it
func (tf *TUITestFramework) ServeCatalog(names ...string) *CatalogServer {
	tf.t.Helper()
	if len(names) == 0 {
		names = defaultGems
	}
	records := make([]map[string]string, 0, len(names))
	for _, name := range names {
		records = append(records, map[string]string{"GemTypeName": name})
	}

	cs := &CatalogServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/gems-list", func(w http.ResponseWriter, r *http.Request) {
		cs.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	cs.Server = httptest.NewServer(mux)
	tf.t.Cleanup(cs.Close)
	tf.baseURL = cs.URL
	return cs
}
