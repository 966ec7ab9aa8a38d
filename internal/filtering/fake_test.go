package filtering

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/rshade/filterpanel/internal/api"
)

var errBoom = errors.New("boom")

// fakeClient is an in-memory control API.
type fakeClient struct {
	mu        sync.Mutex
	filters   []api.Filter
	whitelist []api.Filter
	nextID    int64

	statusErr error
	addErr    map[string]error
	removeErr error
	setErr    error
	updated   int

	added   []api.AddURLRequest
	removed []api.RemoveURLRequest
	set     []api.SetURLRequest
	refresh []api.RefreshRequest
}

func newFakeClient(filters ...api.Filter) *fakeClient {
	return &fakeClient{filters: filters, nextID: int64(len(filters)) + 1}
}

func (c *fakeClient) list(whitelist bool) *[]api.Filter {
	if whitelist {
		return &c.whitelist
	}
	return &c.filters
}

func (c *fakeClient) Status(context.Context) (*api.FilteringStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.statusErr != nil {
		return nil, c.statusErr
	}
	return &api.FilteringStatus{
		Enabled:          true,
		Filters:          slices.Clone(c.filters),
		WhitelistFilters: slices.Clone(c.whitelist),
	}, nil
}

func (c *fakeClient) AddURL(_ context.Context, req api.AddURLRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.added = append(c.added, req)
	if err := c.addErr[req.URL]; err != nil {
		return err
	}
	l := c.list(req.Whitelist)
	*l = append(*l, api.Filter{ID: c.nextID, Enabled: true, URL: req.URL, Name: req.Name})
	c.nextID++
	return nil
}

func (c *fakeClient) RemoveURL(_ context.Context, req api.RemoveURLRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removed = append(c.removed, req)
	if c.removeErr != nil {
		return c.removeErr
	}
	l := c.list(req.Whitelist)
	*l = slices.DeleteFunc(*l, func(f api.Filter) bool { return f.URL == req.URL })
	return nil
}

func (c *fakeClient) SetURL(_ context.Context, req api.SetURLRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set = append(c.set, req)
	if c.setErr != nil {
		return c.setErr
	}
	l := c.list(req.Whitelist)
	for i, f := range *l {
		if f.URL == req.URL {
			(*l)[i].Name = req.Data.Name
			(*l)[i].URL = req.Data.URL
			(*l)[i].Enabled = req.Data.Enabled
		}
	}
	return nil
}

func (c *fakeClient) Refresh(_ context.Context, req api.RefreshRequest) (*api.RefreshResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refresh = append(c.refresh, req)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range c.filters {
		c.filters[i].LastUpdated = &now
	}
	return &api.RefreshResponse{Updated: c.updated}, nil
}

// memPrefs is an in-memory PageSizeStore.
type memPrefs struct {
	sizes map[string]int
	err   error
}

func (p *memPrefs) PageSize(key string, fallback int) int {
	if n, ok := p.sizes[key]; ok {
		return n
	}
	return fallback
}

func (p *memPrefs) SetPageSize(key string, size int) error {
	if p.err != nil {
		return p.err
	}
	if p.sizes == nil {
		p.sizes = map[string]int{}
	}
	p.sizes[key] = size
	return nil
}
