package datagrid

import "fmt"

// PaginationInfo is supplied by the host from its last fetch response.
// The table never derives these numbers itself.
type PaginationInfo struct {
	TotalItems int `json:"totalItems" yaml:"totalItems" toml:"totalItems"`
	TotalPages int `json:"totalPages" yaml:"totalPages" toml:"totalPages"`
	Limit      int `json:"limit"      yaml:"limit"      toml:"limit"`
}

// PageControls is the state of the pagination controls of a rendered table.
type PageControls struct {
	Page       int
	TotalPages int
	TotalItems int
	Limit      int
	HasPrev    bool
	HasNext    bool
	// FirstItem and LastItem are the 1-based item range of the page,
	// both 0 if there are no items.
	FirstItem int
	LastItem  int
}

// Summary returns the item range and page position
// like "11-20 of 95 · page 2/10".
func (c *PageControls) Summary() string {
	return fmt.Sprintf("%d-%d of %d · page %d/%d", c.FirstItem, c.LastItem, c.TotalItems, c.Page, max(c.TotalPages, 1))
}

// Paginator tracks the current page starting at 1
// and calls OnPaginate whenever the page changes,
// either by user interaction via SetPage
// or by a host update via Update.
//
// The total number of pages is host supplied ground truth.
type Paginator struct {
	page       int
	info       *PaginationInfo
	OnPaginate func(page int)
}

// NewPaginator returns a Paginator on page 1.
func NewPaginator(onPaginate func(page int)) *Paginator {
	return &Paginator{page: 1, OnPaginate: onPaginate}
}

// Page returns the current 1-based page.
func (p *Paginator) Page() int {
	if p.page < 1 {
		return 1
	}
	return p.page
}

// Info returns the last PaginationInfo passed to Update
// or nil if pagination is not used.
func (p *Paginator) Info() *PaginationInfo {
	return p.info
}

// SetPage changes the current page by user interaction.
// The page is clamped to the known page range.
// OnPaginate is called only if the page changed.
// Returns if the page changed.
func (p *Paginator) SetPage(page int) bool {
	page = p.clamp(page)
	if page == p.Page() {
		return false
	}
	p.page = page
	p.notify()
	return true
}

// Update passes new host pagination info to the Paginator.
// A changed Limit resets the page to 1
// and a page beyond the new TotalPages is clamped to the last page,
// both calling OnPaginate.
// A nil info disables pagination without changing the page.
// Returns if the page changed.
func (p *Paginator) Update(info *PaginationInfo) bool {
	if info == nil {
		p.info = nil
		return false
	}
	prev := p.info
	next := *info
	p.info = &next

	page := p.Page()
	if prev != nil && prev.Limit != next.Limit {
		page = 1
	}
	page = p.clamp(page)
	if page == p.Page() {
		return false
	}
	p.page = page
	p.notify()
	return true
}

// Controls returns the state of the pagination controls
// or nil if no PaginationInfo is known.
func (p *Paginator) Controls() *PageControls {
	if p.info == nil {
		return nil
	}
	page := p.Page()
	c := &PageControls{
		Page:       page,
		TotalPages: p.info.TotalPages,
		TotalItems: p.info.TotalItems,
		Limit:      p.info.Limit,
		HasPrev:    page > 1,
		HasNext:    page < p.info.TotalPages,
	}
	if c.TotalItems > 0 && c.Limit > 0 {
		c.FirstItem = min((page-1)*c.Limit+1, c.TotalItems)
		c.LastItem = min(page*c.Limit, c.TotalItems)
	}
	return c
}

func (p *Paginator) clamp(page int) int {
	if p.info != nil {
		page = min(page, max(p.info.TotalPages, 1))
	}
	return max(page, 1)
}

func (p *Paginator) notify() {
	if p.OnPaginate != nil {
		p.OnPaginate(p.page)
	}
}
