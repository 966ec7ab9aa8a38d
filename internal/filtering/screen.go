package filtering

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/filterpanel/internal/api"
	"github.com/rshade/filterpanel/internal/intl"
	"github.com/rshade/filterpanel/internal/logging"
	"github.com/rshade/filterpanel/internal/pagination"
	"github.com/rshade/filterpanel/internal/table"
)

// MaxConcurrentAdds bounds the subscriptions started in parallel from the catalog.
const MaxConcurrentAdds = 4

// Screen errors.
var (
	ErrNoModal             = errors.New("no dialog is open")
	ErrCatalogUnavailable  = errors.New("list catalog is not available")
	ErrFilterNotFound      = errors.New("filter not found")
	ErrNothingSelected     = errors.New("no rows selected")
	ErrUnsupportedDialog   = errors.New("dialog does not accept this submission")
	errMissingScreenClient = errors.New("screen requires a client")
)

// Client is the part of the control API used by a screen.
type Client interface {
	Status(ctx context.Context) (*api.FilteringStatus, error)
	AddURL(ctx context.Context, req api.AddURLRequest) error
	RemoveURL(ctx context.Context, req api.RemoveURLRequest) error
	SetURL(ctx context.Context, req api.SetURLRequest) error
	Refresh(ctx context.Context, req api.RefreshRequest) (*api.RefreshResponse, error)
}

// PageSizeStore persists the chosen page size.
type PageSizeStore interface {
	PageSize(key string, fallback int) int
	SetPageSize(key string, size int) error
}

// ConfirmFunc asks a yes/no question. A nil ConfirmFunc counts as yes.
type ConfirmFunc func(message string) bool

// Processing flags the operations in flight.
type Processing struct {
	Filters bool
	Config  bool
	Add     bool
	Remove  bool
	Refresh bool
}

// Any reports whether any operation is in flight.
func (p Processing) Any() bool {
	return p.Filters || p.Config || p.Add || p.Remove || p.Refresh
}

// ScreenOptions configures a Screen.
type ScreenOptions struct {
	Kind      Kind
	Localizer *intl.Localizer
	Catalog   *Catalog
	Prefs     PageSizeStore

	// Confirm is asked before a delete started from an action button.
	Confirm ConfirmFunc

	// PageSize applies when no size is stored in Prefs.
	PageSize        int
	PageSizeOptions []int

	// Selectable enables row selection for bulk removal.
	Selectable bool
}

// Submission is the content of a submitted dialog.
type Submission struct {
	Form FormValues

	// Catalog holds the ticked catalog ids of the list chooser.
	Catalog map[string]bool
}

// Screen is the list management controller for one Kind. Its methods are safe
// for concurrent use; Table is not and must only be used through WithTable
// while operations may be running.
type Screen struct {
	client Client
	opts   ScreenOptions
	loc    *intl.Localizer

	// ctx carries the logger and trace id into operations started from cells.
	ctx context.Context

	mu         sync.Mutex
	filters    []Filter
	table      *table.Table[Filter]
	modal      Modal
	processing Processing
	lastErr    error
}

// NewScreen creates a screen. Data is loaded by Load.
func NewScreen(ctx context.Context, client Client, opts ScreenOptions) (*Screen, error) {
	if client == nil {
		return nil, errMissingScreenClient
	}
	if opts.Localizer == nil {
		opts.Localizer = intl.New("")
	}

	s := &Screen{client: client, opts: opts, loc: opts.Localizer, ctx: ctx}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = table.DefaultPageSize
	}
	if opts.Prefs != nil {
		pageSize = opts.Prefs.PageSize(opts.Kind.PrefKey(), pageSize)
	}

	s.table = table.New(nil, Columns(s.loc, s.handlers(), false), table.Options[Filter]{
		EmptyMessage:     s.loc.Get(opts.Kind.EmptyKey()),
		PageSize:         pageSize,
		PageSizeOptions:  opts.PageSizeOptions,
		OnPageSizeChange: s.persistPageSize,
		Selectable:       opts.Selectable,
		GetRowID: func(f Filter, _ int) table.RowID {
			return table.StringID(f.URL)
		},
		PagerLabels: pagination.Labels{
			Previous: s.loc.Get(intl.PreviousBtn),
			Next:     s.loc.Get(intl.NextBtn),
			Page:     s.loc.Get(intl.PageFooterText),
			Rows:     s.loc.Get(intl.RowsFooterText),
		},
	})
	return s, nil
}

func (s *Screen) handlers() Handlers {
	return Handlers{
		OnToggle: func(url string, data ToggleData) {
			s.recordErr(s.ToggleFilter(s.ctx, url, data))
		},
		OnEdit: func(url string) {
			s.OpenModal(ModalEditFilters, url)
		},
		OnDelete: func(url, _ string) {
			_, err := s.HandleDelete(s.ctx, url, s.opts.Confirm)
			s.recordErr(err)
		},
	}
}

func (s *Screen) recordErr(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// LastError returns and clears the error of the last operation started from a
// table cell.
func (s *Screen) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.lastErr
	s.lastErr = nil
	return err
}

// persistPageSize runs from Table.SetPageSize, with s.mu held by the caller.
func (s *Screen) persistPageSize(size int) {
	if s.opts.Prefs == nil {
		return
	}
	if err := s.opts.Prefs.SetPageSize(s.opts.Kind.PrefKey(), size); err != nil {
		logging.FromContext(s.ctx).Warn().
			Ctx(s.ctx).
			Str("component", "filtering").
			Str("key", s.opts.Kind.PrefKey()).
			Err(err).
			Msg("could not persist page size")
	}
}

// Kind returns the list kind of the screen.
func (s *Screen) Kind() Kind {
	return s.opts.Kind
}

// Localizer returns the screen's localizer.
func (s *Screen) Localizer() *intl.Localizer {
	return s.loc
}

// Catalog returns the list catalog, or nil.
func (s *Screen) Catalog() *Catalog {
	return s.opts.Catalog
}

// Title returns the localized screen title.
func (s *Screen) Title() string {
	return s.loc.Get(s.opts.Kind.TitleKey())
}

// Table returns the underlying table. It must not be used concurrently with
// running operations; see WithTable.
func (s *Screen) Table() *table.Table[Filter] {
	return s.table
}

// WithTable runs fn with exclusive access to the table.
func (s *Screen) WithTable(fn func(t *table.Table[Filter])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.table)
}

// View returns the table snapshot.
func (s *Screen) View() table.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.View()
}

// Filters returns a copy of the loaded filters.
func (s *Screen) Filters() []Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Filter(nil), s.filters...)
}

// Processing returns the in-flight operation flags.
func (s *Screen) Processing() Processing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing
}

// Loading reports whether any operation is in flight.
func (s *Screen) Loading() bool {
	return s.Processing().Any()
}

// setProcessing updates the flags and the table's loading and disabled state.
func (s *Screen) setProcessing(update func(p *Processing)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.processing.Config
	update(&s.processing)
	if s.processing.Config != before {
		s.table.SetColumns(Columns(s.loc, s.handlers(), s.processing.Config))
	}
	s.table.SetLoading(s.processing.Any())
}

// Load fetches the current lists from the appliance.
func (s *Screen) Load(ctx context.Context) error {
	log := logging.FromContext(ctx)
	s.setProcessing(func(p *Processing) { p.Filters = true })
	defer s.setProcessing(func(p *Processing) { p.Filters = false })

	status, err := s.client.Status(ctx)
	if err != nil {
		log.Warn().Ctx(ctx).Str("component", "filtering").Err(err).Msg("loading filtering status failed")
		return fmt.Errorf("loading %ss: %w", s.opts.Kind, err)
	}

	raw := status.Filters
	if s.opts.Kind.Whitelist() {
		raw = status.WhitelistFilters
	}
	filters := FromAPI(raw)

	s.mu.Lock()
	s.filters = filters
	s.table.SetData(filters)
	s.mu.Unlock()

	log.Debug().
		Ctx(ctx).
		Str("component", "filtering").
		Str("kind", s.opts.Kind.String()).
		Int("count", len(filters)).
		Msg("filters loaded")
	return nil
}

// Modal returns the dialog state.
func (s *Screen) Modal() Modal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}

// OpenModal opens the dialog of type t; url names the list for ModalEditFilters.
func (s *Screen) OpenModal(t ModalType, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = Modal{Open: true, Type: t, FilterURL: url, ActiveTab: TabManual}
}

// SetModalTab switches the tab of the select-type dialog.
func (s *Screen) SetModalTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.ActiveTab = tab
}

// CloseModal closes the dialog.
func (s *Screen) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = Modal{}
}

// ModalTitle returns the title of the open dialog.
func (s *Screen) ModalTitle() string {
	return Title(s.loc, s.opts.Kind, s.Modal().Type)
}

// ModalInitialValues returns the starting form of the open dialog.
func (s *Screen) ModalInitialValues() Initial {
	m := s.Modal()
	return InitialValues(m.Type, s.Filters(), s.opts.Catalog, m.FilterURL)
}

// HandleSubmit applies a submitted dialog according to its type and closes it.
func (s *Screen) HandleSubmit(ctx context.Context, sub Submission) error {
	m := s.Modal()
	if !m.Open {
		return ErrNoModal
	}

	var err error
	switch {
	case m.Type == ModalEditFilters:
		err = s.edit(ctx, m.FilterURL, sub.Form)
	case m.Type == ModalAddFilters, m.Type == ModalSelectType && m.ActiveTab == TabManual:
		err = s.addManual(ctx, sub.Form)
	case m.Type == ModalChooseList, m.Type == ModalSelectType:
		err = s.addFromCatalog(ctx, sub.Catalog)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedDialog, m.Type)
	}
	if err != nil {
		return err
	}

	s.CloseModal()
	return nil
}

func (s *Screen) edit(ctx context.Context, url string, form FormValues) error {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return err
	}

	s.setProcessing(func(p *Processing) { p.Config = true })
	err := s.client.SetURL(ctx, api.SetURLRequest{
		URL:       url,
		Whitelist: s.opts.Kind.Whitelist(),
		Data:      api.FilterData{Name: form.Name, URL: form.URL, Enabled: form.Enabled},
	})
	s.setProcessing(func(p *Processing) { p.Config = false })
	if err != nil {
		return fmt.Errorf("updating %s: %w", url, err)
	}

	logging.FromContext(ctx).Info().Ctx(ctx).Str("component", "filtering").Str("url", form.URL).Msg("filter updated")
	return s.Load(ctx)
}

// Add subscribes to a list directly, outside of any dialog.
func (s *Screen) Add(ctx context.Context, form FormValues) error {
	return s.addManual(ctx, form)
}

// Edit updates the list at url directly, outside of any dialog.
func (s *Screen) Edit(ctx context.Context, url string, form FormValues) error {
	return s.edit(ctx, url, form)
}

func (s *Screen) addManual(ctx context.Context, form FormValues) error {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return err
	}

	s.setProcessing(func(p *Processing) { p.Add = true })
	err := s.client.AddURL(ctx, api.AddURLRequest{Name: form.Name, URL: form.URL, Whitelist: s.opts.Kind.Whitelist()})
	s.setProcessing(func(p *Processing) { p.Add = false })
	if err != nil {
		return fmt.Errorf("adding %s: %w", form.URL, err)
	}

	logging.FromContext(ctx).Info().Ctx(ctx).Str("component", "filtering").Str("url", form.URL).Msg("filter added")
	return s.Load(ctx)
}

// AddFromCatalog subscribes to the ticked catalog entries that are not
// subscribed yet. It returns the entries it added.
func (s *Screen) AddFromCatalog(ctx context.Context, values map[string]bool) ([]CatalogFilter, error) {
	if s.opts.Catalog == nil {
		return nil, ErrCatalogUnavailable
	}
	changed := s.opts.Catalog.ChangedSelections(values, s.opts.Catalog.SelectedValues(s.Filters()))
	if len(changed) == 0 {
		return nil, nil
	}

	s.setProcessing(func(p *Processing) { p.Add = true })
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentAdds)
	for _, f := range changed {
		g.Go(func() error {
			req := api.AddURLRequest{Name: f.Name, URL: f.Source, Whitelist: s.opts.Kind.Whitelist()}
			if err := s.client.AddURL(gctx, req); err != nil {
				return fmt.Errorf("adding %s: %w", f.Name, err)
			}
			logging.FromContext(ctx).Debug().Ctx(ctx).Str("component", "filtering").Str("catalog_id", f.ID).Msg("catalog list added")
			return nil
		})
	}
	err := g.Wait()
	s.setProcessing(func(p *Processing) { p.Add = false })

	if loadErr := s.Load(ctx); loadErr != nil && err == nil {
		err = loadErr
	}
	if err != nil {
		return nil, err
	}
	return changed, nil
}

func (s *Screen) addFromCatalog(ctx context.Context, values map[string]bool) error {
	_, err := s.AddFromCatalog(ctx, values)
	return err
}

// HandleDelete removes the list at url after confirm agrees. It reports whether
// the list was removed.
func (s *Screen) HandleDelete(ctx context.Context, url string, confirm ConfirmFunc) (bool, error) {
	if confirm != nil && !confirm(s.loc.Get(intl.ListConfirmDelete)) {
		return false, nil
	}

	s.setProcessing(func(p *Processing) { p.Remove = true })
	err := s.client.RemoveURL(ctx, api.RemoveURLRequest{URL: url, Whitelist: s.opts.Kind.Whitelist()})
	s.setProcessing(func(p *Processing) { p.Remove = false })
	if err != nil {
		return false, fmt.Errorf("removing %s: %w", url, err)
	}

	s.WithTable(func(t *table.Table[Filter]) { t.SelectRow(table.StringID(url), false) })
	logging.FromContext(ctx).Info().Ctx(ctx).Str("component", "filtering").Str("url", url).Msg("filter removed")
	return true, s.Load(ctx)
}

// RemoveSelected removes every selected list after a single confirmation and
// returns how many were removed.
func (s *Screen) RemoveSelected(ctx context.Context, confirm ConfirmFunc) (int, error) {
	var urls []string
	s.WithTable(func(t *table.Table[Filter]) {
		for _, id := range t.State().Selected.IDs() {
			urls = append(urls, id.String())
		}
	})
	if len(urls) == 0 {
		return 0, ErrNothingSelected
	}
	if confirm != nil && !confirm(s.loc.Get(intl.ListConfirmDelete)) {
		return 0, nil
	}

	s.setProcessing(func(p *Processing) { p.Remove = true })
	removed := make([]bool, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentAdds)
	for i, url := range urls {
		g.Go(func() error {
			if err := s.client.RemoveURL(gctx, api.RemoveURLRequest{URL: url, Whitelist: s.opts.Kind.Whitelist()}); err != nil {
				return fmt.Errorf("removing %s: %w", url, err)
			}
			removed[i] = true
			return nil
		})
	}
	err := g.Wait()
	s.setProcessing(func(p *Processing) { p.Remove = false })

	count := 0
	s.WithTable(func(t *table.Table[Filter]) {
		for i, ok := range removed {
			if ok {
				t.SelectRow(table.StringID(urls[i]), false)
				count++
			}
		}
	})

	if loadErr := s.Load(ctx); loadErr != nil && err == nil {
		err = loadErr
	}
	return count, err
}

// ToggleFilter enables or disables the list at url.
func (s *Screen) ToggleFilter(ctx context.Context, url string, data ToggleData) error {
	s.setProcessing(func(p *Processing) { p.Config = true })
	err := s.client.SetURL(ctx, api.SetURLRequest{
		URL:       url,
		Whitelist: s.opts.Kind.Whitelist(),
		Data:      api.FilterData{Name: data.Name, URL: data.URL, Enabled: data.Enabled},
	})
	s.setProcessing(func(p *Processing) { p.Config = false })
	if err != nil {
		return fmt.Errorf("toggling %s: %w", url, err)
	}

	logging.FromContext(ctx).Info().
		Ctx(ctx).
		Str("component", "filtering").
		Str("url", url).
		Bool("enabled", data.Enabled).
		Msg("filter toggled")
	return s.Load(ctx)
}

// SetEnabled enables or disables the loaded list at url.
func (s *Screen) SetEnabled(ctx context.Context, url string, enabled bool) error {
	f, ok := FindByURL(s.Filters(), url)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFilterNotFound, url)
	}
	return s.ToggleFilter(ctx, url, ToggleData{Name: f.Name, URL: f.URL, Enabled: enabled})
}

// HandleRefresh re-downloads the lists and returns how many changed.
func (s *Screen) HandleRefresh(ctx context.Context) (int, error) {
	s.setProcessing(func(p *Processing) { p.Refresh = true })
	resp, err := s.client.Refresh(ctx, api.RefreshRequest{Whitelist: s.opts.Kind.Whitelist()})
	s.setProcessing(func(p *Processing) { p.Refresh = false })
	if err != nil {
		return 0, fmt.Errorf("refreshing %ss: %w", s.opts.Kind, err)
	}

	logging.FromContext(ctx).Info().Ctx(ctx).Str("component", "filtering").Int("updated", resp.Updated).Msg("filters refreshed")
	return resp.Updated, s.Load(ctx)
}
