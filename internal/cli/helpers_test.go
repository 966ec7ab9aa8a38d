package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/rshade/filterpanel/internal/api"
	"github.com/rshade/filterpanel/internal/cli"
	"github.com/rshade/filterpanel/internal/config"
)

// controlServer is an in-memory control API.
type controlServer struct {
	mu        sync.Mutex
	nextID    int64
	filters   []api.Filter
	whitelist []api.Filter
	updated   int

	added   []api.AddURLRequest
	removed []api.RemoveURLRequest
	set     []api.SetURLRequest
	refresh []api.RefreshRequest
}

func newControlServer(t *testing.T) (*controlServer, string) {
	t.Helper()
	cs := &controlServer{nextID: 1}
	srv := httptest.NewServer(cs)
	t.Cleanup(srv.Close)
	return cs, srv.URL
}

// seed adds n blocklists named "list 01".."list NN".
func (cs *controlServer) seed(n int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for i := 1; i <= n; i++ {
		cs.filters = append(cs.filters, api.Filter{
			ID:         cs.nextID,
			Enabled:    true,
			Name:       fmt.Sprintf("list %02d", i),
			URL:        fmt.Sprintf("https://lists.example/%02d.txt", i),
			RulesCount: int64(i * 100),
		})
		cs.nextID++
	}
}

func (cs *controlServer) list(whitelist bool) *[]api.Filter {
	if whitelist {
		return &cs.whitelist
	}
	return &cs.filters
}

func (cs *controlServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	switch r.URL.Path {
	case api.PathStatus:
		_ = json.NewEncoder(w).Encode(api.FilteringStatus{
			Enabled:          true,
			Filters:          cs.filters,
			WhitelistFilters: cs.whitelist,
		})
	case api.PathAddURL:
		var req api.AddURLRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		cs.added = append(cs.added, req)
		l := cs.list(req.Whitelist)
		*l = append(*l, api.Filter{ID: cs.nextID, Enabled: true, Name: req.Name, URL: req.URL})
		cs.nextID++
		_, _ = w.Write([]byte("OK"))
	case api.PathRemoveURL:
		var req api.RemoveURLRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		cs.removed = append(cs.removed, req)
		l := cs.list(req.Whitelist)
		*l = slices.DeleteFunc(*l, func(f api.Filter) bool { return f.URL == req.URL })
		_, _ = w.Write([]byte("OK"))
	case api.PathSetURL:
		var req api.SetURLRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		cs.set = append(cs.set, req)
		l := cs.list(req.Whitelist)
		for i := range *l {
			if (*l)[i].URL == req.URL {
				(*l)[i].Name = req.Data.Name
				(*l)[i].URL = req.Data.URL
				(*l)[i].Enabled = req.Data.Enabled
			}
		}
		_, _ = w.Write([]byte("OK"))
	case api.PathRefresh:
		var req api.RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		cs.refresh = append(cs.refresh, req)
		_ = json.NewEncoder(w).Encode(api.RefreshResponse{Updated: cs.updated})
	default:
		http.NotFound(w, r)
	}
}

// setupCLI isolates the configuration directory and returns it.
func setupCLI(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvServerURL, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// runCLI executes the root command and returns its standard output.
func runCLI(t *testing.T, serverURL, stdin string, args ...string) (string, error) {
	t.Helper()
	config.ResetGlobalConfigForTest()

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	if serverURL != "" {
		args = append([]string{"--server", serverURL}, args...)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}
