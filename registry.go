package jsonschema

import (
	"context"
	"sync"
)

// Resource is a schema document tagged with the draft it was compiled
// under, its base URI, and its root Schema node. One Resource exists per
// distinct base URI discovered during compilation.
type Resource struct {
	Draft   Draft
	BaseURI string
	Root    *Schema
}

// Registry maps normalized base URI to the Resource registered under it.
// It is populated eagerly during Compiler.Build: every $ref/$dynamicRef/
// $recursiveRef whose base URI is not yet registered is retrieved and
// compiled into an entry here, and a failed retrieval or compilation fails
// the Build. Fragments and $anchor names are not checked here: a reference
// whose target fragment does not exist is left unresolved without an error.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]*Resource
}

func newRegistry() *Registry {
	return &Registry{resources: make(map[string]*Resource)}
}

func (r *Registry) get(uri string) (*Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resources[NormalizeURI(uri)]
	return res, ok
}

func (r *Registry) put(uri string, res *Resource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[NormalizeURI(uri)] = res
}

func (r *Registry) has(uri string) bool {
	_, ok := r.get(uri)
	return ok
}

// Len reports how many distinct resources the registry holds; mostly
// useful in tests asserting a retrieval closure terminated with the
// expected fan-out.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.resources)
}

// closeRegistry drains the compiler's set of unresolved reference base
// URIs, invoking retriever for each one not already known, compiling the
// returned document into a new Resource, and repeating until the frontier
// is empty or maxRetrievalDepth rounds have passed.
const maxRetrievalDepth = 64

func closeRegistry(ctx context.Context, c *Compiler, root *Schema, retriever Retriever) error {
	if retriever == nil {
		return nil
	}
	seen := map[string]bool{}
	for round := 0; round < maxRetrievalDepth; round++ {
		frontier := pendingBaseURIs(c, root, seen)
		if len(frontier) == 0 {
			return nil
		}
		for _, uri := range frontier {
			seen[uri] = true
			if c.registry.has(uri) {
				continue
			}
			doc, err := retriever.Retrieve(ctx, uri)
			if err != nil {
				return &ReferenceResolutionError{URI: uri, Err: err}
			}
			data, err := c.jsonEncoder(doc)
			if err != nil {
				return &ReferenceResolutionError{URI: uri, Err: err}
			}
			fetched, err := c.Compile(data, uri)
			if err != nil {
				return &ReferenceResolutionError{URI: uri, Err: err}
			}
			c.registry.put(uri, &Resource{Draft: fetched.Draft(), BaseURI: uri, Root: fetched})
		}
	}
	return ErrRetrievalDepthExceeded
}

// pendingBaseURIs walks the schema tree collecting the base-URI part of
// every unresolved $ref/$dynamicRef/$recursiveRef not already visited.
func pendingBaseURIs(c *Compiler, s *Schema, seen map[string]bool) []string {
	var out []string
	visited := map[*Schema]bool{}
	var walk func(*Schema)
	walk = func(s *Schema) {
		if s == nil || visited[s] {
			return
		}
		visited[s] = true

		collect := func(ref string, resolved *Schema) {
			if ref == "" || resolved != nil {
				return
			}
			base, _ := FragmentOf(ref)
			if base == "" {
				return
			}
			if !IsAbsoluteURI(base) && s.baseURI != "" {
				base = JoinURI(s.baseURI, base)
			}
			if seen[base] || c.registry.has(base) {
				return
			}
			out = append(out, base)
		}
		collect(s.Ref, s.ResolvedRef)
		collect(s.DynamicRef, s.ResolvedDynamicRef)
		collect(s.RecursiveRef, s.ResolvedRecursiveRef)

		if s.Defs != nil {
			for _, d := range s.Defs {
				walk(d)
			}
		}
		if s.Properties != nil {
			for _, p := range *s.Properties {
				walk(p)
			}
		}
		if s.PatternProperties != nil {
			for _, p := range *s.PatternProperties {
				walk(p)
			}
		}
		for _, sub := range s.AllOf {
			walk(sub)
		}
		for _, sub := range s.AnyOf {
			walk(sub)
		}
		for _, sub := range s.OneOf {
			walk(sub)
		}
		walk(s.Not)
		walk(s.If)
		walk(s.Then)
		walk(s.Else)
		for _, d := range s.DependentSchemas {
			walk(d)
		}
		for _, it := range s.PrefixItems {
			walk(it)
		}
		walk(s.Items)
		walk(s.Contains)
		walk(s.AdditionalProperties)
		walk(s.PropertyNames)
		walk(s.UnevaluatedProperties)
		walk(s.UnevaluatedItems)
		walk(s.ContentSchema)
	}
	walk(s)
	return out
}
