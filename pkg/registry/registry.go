// Package registry provides the owning handle for an in-memory
// registry document and its file persistence
package registry

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mcpconf/mcpconf/pkg/converter"
	"github.com/mcpconf/mcpconf/pkg/schema"
	"github.com/mcpconf/mcpconf/pkg/types"
)

// Registry owns one in-memory registry document. Mutations are simple
// last-write-wins updates on the underlying maps; the type provides no
// internal locking and expects a single actor, callers serialize
// access if they share one.
type Registry struct {
	doc    *types.Registry
	logger *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger attaches a logger used for import skips and category
// edits. Without it the registry is silent.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates a registry around an empty document.
func New(opts ...Option) *Registry {
	return FromDocument(types.NewRegistry(), opts...)
}

// FromDocument creates a registry around an existing document.
func FromDocument(doc *types.Registry, opts ...Option) *Registry {
	r := &Registry{
		doc:    doc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.doc.Servers == nil {
		r.doc.Servers = make(map[string]*types.Entry)
	}
	return r
}

// Document returns the underlying registry document.
func (r *Registry) Document() *types.Registry {
	return r.doc
}

// AddServer adds or replaces a server; last write wins, no merge.
func (r *Registry) AddServer(id string, entry *types.Entry) {
	r.doc.Servers[id] = entry
}

// RemoveServer removes a server and reports whether it existed.
func (r *Registry) RemoveServer(id string) bool {
	if _, ok := r.doc.Servers[id]; !ok {
		return false
	}
	delete(r.doc.Servers, id)
	return true
}

// GetServer looks up a server by identifier.
func (r *Registry) GetServer(id string) (*types.Entry, bool) {
	entry, ok := r.doc.Servers[id]
	return entry, ok
}

// ListServers returns server identifiers sorted alphabetically,
// optionally filtered by deployment type and category. An unknown
// deployment value yields no results; category membership referencing
// identifiers without an entry is tolerated and simply filters to
// nothing.
func (r *Registry) ListServers(deployment, category string) []string {
	ids := make([]string, 0, len(r.doc.Servers))
	for id := range r.doc.Servers {
		ids = append(ids, id)
	}

	if deployment != "" {
		dep := types.DeploymentType(deployment)
		if !dep.IsValid() {
			return nil
		}
		filtered := ids[:0]
		for _, id := range ids {
			if r.doc.Servers[id].Deployment == dep {
				filtered = append(filtered, id)
			}
		}
		ids = filtered
	}

	if category != "" && r.doc.Categories != nil {
		members := map[string]bool{}
		for _, id := range r.doc.Categories[category] {
			members[id] = true
		}
		filtered := ids[:0]
		for _, id := range ids {
			if members[id] {
				filtered = append(filtered, id)
			}
		}
		ids = filtered
	}

	sort.Strings(ids)
	return ids
}

// SearchServers returns identifiers of servers whose id, name,
// description, or capability identifiers contain the query,
// case-insensitively, sorted alphabetically.
func (r *Registry) SearchServers(query string) []string {
	query = strings.ToLower(query)
	var results []string

	for id, entry := range r.doc.Servers {
		if strings.Contains(strings.ToLower(id), query) ||
			strings.Contains(strings.ToLower(entry.Name), query) ||
			strings.Contains(strings.ToLower(entry.Description), query) {
			results = append(results, id)
			continue
		}
		if entry.Capabilities != nil && (containsFold(entry.Capabilities.Tools, query) ||
			containsFold(entry.Capabilities.Resources, query) ||
			containsFold(entry.Capabilities.Prompts, query)) {
			results = append(results, id)
		}
	}

	sort.Strings(results)
	return results
}

func containsFold(items []string, query string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), query) {
			return true
		}
	}
	return false
}

// Categories returns a copy of the category map.
func (r *Registry) Categories() map[string][]string {
	categories := make(map[string][]string, len(r.doc.Categories))
	for name, members := range r.doc.Categories {
		categories[name] = append([]string(nil), members...)
	}
	return categories
}

// AddToCategory adds a server identifier to a category, creating the
// category if needed. Membership is not deduplicated beyond an exact
// repeat and is not checked against the server map.
func (r *Registry) AddToCategory(category, id string) {
	if r.doc.Categories == nil {
		r.doc.Categories = make(map[string][]string)
	}
	for _, member := range r.doc.Categories[category] {
		if member == id {
			return
		}
	}
	r.doc.Categories[category] = append(r.doc.Categories[category], id)
	r.logger.Debug("added server to category",
		zap.String("category", category), zap.String("server", id))
}

// RemoveFromCategory removes a server identifier from a category and
// reports whether it was a member. Emptied categories are dropped.
func (r *Registry) RemoveFromCategory(category, id string) bool {
	members, ok := r.doc.Categories[category]
	if !ok {
		return false
	}
	for i, member := range members {
		if member != id {
			continue
		}
		members = append(members[:i], members[i+1:]...)
		if len(members) == 0 {
			delete(r.doc.Categories, category)
		} else {
			r.doc.Categories[category] = members
		}
		return true
	}
	return false
}

// ValidateServer re-validates a stored server by round-tripping it
// through the raw document shape. An unknown identifier reports a
// single "server" error rather than failing.
func (r *Registry) ValidateServer(id string) schema.ValidationErrors {
	entry, ok := r.GetServer(id)
	if !ok {
		return schema.ValidationErrors{"server": "Server not found"}
	}
	return schema.ValidateEntry(schema.EntryToRaw(entry))
}

// ToClaudeDesktop converts a stored server to the Claude Desktop format.
func (r *Registry) ToClaudeDesktop(id string) (map[string]any, error) {
	entry, ok := r.GetServer(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return converter.ToClaudeDesktop(entry, id), nil
}

// ToGithubMCP converts a stored server to the GitHub MCP format.
func (r *Registry) ToGithubMCP(id string) (map[string]any, error) {
	entry, ok := r.GetServer(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return converter.ToGithubMCP(entry, id)
}

// ToDXTManifest converts a stored server to a DXT manifest.
func (r *Registry) ToDXTManifest(id string) (map[string]any, error) {
	entry, ok := r.GetServer(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return converter.ToDXTManifest(entry, id)
}

// ToHostsLine converts a stored server to a hosts-file style line.
func (r *Registry) ToHostsLine(id string) (string, error) {
	entry, ok := r.GetServer(id)
	if !ok {
		return "", &NotFoundError{ID: id}
	}
	return converter.ToHostsLine(entry, id), nil
}

// ImportResult reports the outcome of an import: which identifiers
// were added and which were skipped with their validation errors.
type ImportResult struct {
	Added   []string
	Skipped map[string]schema.ValidationErrors
}

// ImportClaudeDesktop imports servers from a Claude Desktop
// configuration document. Entries that fail validation are skipped and
// reported rather than aborting the import.
func (r *Registry) ImportClaudeDesktop(doc map[string]any) *ImportResult {
	result := &ImportResult{Skipped: map[string]schema.ValidationErrors{}}

	imported := converter.FromClaudeDesktop(doc)
	ids := make([]string, 0, len(imported))
	for id := range imported {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		raw := imported[id]
		if errs := schema.ValidateEntry(raw); len(errs) > 0 {
			r.logger.Warn("skipping imported server with validation errors",
				zap.String("server", id), zap.String("errors", errs.Join()))
			result.Skipped[id] = errs
			continue
		}
		entry, err := schema.ParseEntry(raw)
		if err != nil {
			result.Skipped[id] = schema.ValidationErrors{"entry": err.Error()}
			continue
		}
		r.AddServer(id, entry)
		result.Added = append(result.Added, id)
	}

	return result
}
