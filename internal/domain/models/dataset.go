package models

// Dataset is the in-memory, read-only view of the loaded unicorn file.
//
// A Dataset is built once (at startup or per filter call) and never mutated
// afterwards, so it can be shared between request goroutines without locking.
// Accessors hand out copies.
type Dataset struct {
	companies []Company
	header    []string
	extra     []string
	domains   map[Field][]string
}

// NewDataset builds a Dataset from already validated companies.
//
// header is the source header in file order; extra lists the columns that are
// not mapped onto Company fields (their values live in Company.Extra).
func NewDataset(header, extra []string, companies []Company) *Dataset {
	ds := &Dataset{
		companies: append([]Company(nil), companies...),
		header:    append([]string(nil), header...),
		extra:     append([]string(nil), extra...),
		domains:   make(map[Field][]string, 2),
	}
	for _, f := range []Field{FieldCountry, FieldIndustry} {
		ds.domains[f] = distinct(ds.companies, f)
	}
	return ds
}

// subset builds a Dataset that keeps the parent's header and category domains.
func (d *Dataset) subset(companies []Company) *Dataset {
	return &Dataset{
		companies: companies,
		header:    d.header,
		extra:     d.extra,
		domains:   d.domains,
	}
}

// Len returns the number of companies; a nil Dataset is empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.companies)
}

// Companies returns a copy of the rows in source order.
func (d *Dataset) Companies() []Company {
	if d == nil {
		return []Company{}
	}
	return append([]Company(nil), d.companies...)
}

// Each calls fn for every company in source order without copying the slice.
func (d *Dataset) Each(fn func(Company)) {
	if d == nil {
		return
	}
	for _, c := range d.companies {
		fn(c)
	}
}

// Header returns the source header in file order.
func (d *Dataset) Header() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.header...)
}

// ExtraColumns returns the header names stored in Company.Extra.
func (d *Dataset) ExtraColumns() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.extra...)
}

// Domain returns the distinct values ever observed for f, in first-seen order.
//
// For a filtered Dataset the domain is inherited from the full dataset it was
// derived from, so validation stays stable across repeated filtering.
func (d *Dataset) Domain(f Field) []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.domains[f]...)
}

// Where returns a new Dataset holding the companies for which keep returns true.
func (d *Dataset) Where(keep func(Company) bool) *Dataset {
	if d == nil {
		return nil
	}
	out := make([]Company, 0)
	for _, c := range d.companies {
		if keep(c) {
			out = append(out, c)
		}
	}
	return d.subset(out)
}

func distinct(companies []Company, f Field) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range companies {
		v, _ := c.Category(f)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
