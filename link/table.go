package link

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Table is the YAML document form of a link table, so hosts can ship the
// registration table as configuration instead of code:
//
//	schemes:
//	  - myapp
//	links:
//	  - destination: HOME
//	  - destination: PROFILE
//	    path: profile
//	  - destination: PROFILE_OTHER
//	    path: profile/{id}
//
// Entry order in the document is the match order.
type Table struct {
	Schemes []string     `yaml:"schemes,omitempty"`
	Hosts   []string     `yaml:"hosts,omitempty"`
	Links   []TableEntry `yaml:"links"`
}

// TableEntry is a single destination in a Table document. An absent or empty
// path marks the default destination.
type TableEntry struct {
	Destination string `yaml:"destination"`
	Path        string `yaml:"path,omitempty"`
}

// LoadTable parses a YAML link table and builds a resolver from it. Loading
// performs the same validation as Register.
func LoadTable(data []byte) (*Resolver, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("link: parse table: %w", err)
	}
	return t.Build()
}

// Build compiles the table into a resolver.
func (t Table) Build() (*Resolver, error) {
	r := NewResolver()
	if len(t.Schemes) > 0 {
		r.Schemes(t.Schemes...)
	}
	if len(t.Hosts) > 0 {
		r.Hosts(t.Hosts...)
	}

	entries := make([]Entry, len(t.Links))
	for i, l := range t.Links {
		entries[i] = Entry{Name: l.Destination, Template: l.Path}
	}

	if err := r.Register(entries...); err != nil {
		return nil, err
	}
	return r, nil
}
