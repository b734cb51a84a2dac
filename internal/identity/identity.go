// Package identity normalizes third-party login payloads into one External shape.
//
// Each provider gets a small adapter behind the Provider interface; nothing in
// this package touches storage or the price core.
package identity

import (
	"errors"
	"sort"
	"strings"
)

// ErrMissingEmail is returned when a payload carries no usable email address.
var ErrMissingEmail = errors.New("identity payload has no email")

// ErrMissingSubject is returned when a payload carries no provider user id.
var ErrMissingSubject = errors.New("identity payload has no subject id")

// External is a provider-neutral view of a logged-in user.
type External struct {
	Provider    string
	ProviderID  string
	Email       string
	FirstName   string
	LastName    string
	DisplayName string
	AvatarURL   string
}

// Provider maps one identity provider's user payload.
type Provider interface {
	Name() string
	Map(raw []byte) (External, error)
}

// Registry looks providers up by name.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry indexes the given providers by their lower-cased name.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[strings.ToLower(p.Name())] = p
	}
	return r
}

// DefaultRegistry knows the Google and Facebook adapters.
func DefaultRegistry() *Registry {
	return NewRegistry(Google{}, Facebook{})
}

// Lookup finds a provider by case-insensitive name.
func (r *Registry) Lookup(name string) (Provider, bool) {
	p, ok := r.providers[strings.ToLower(name)]
	return p, ok
}

// Names lists the registered providers in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.providers))
	for n := range r.providers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// finish trims every field, fills DisplayName from the name parts and checks required fields.
func finish(e External) (External, error) {
	e.ProviderID = strings.TrimSpace(e.ProviderID)
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	e.DisplayName = strings.TrimSpace(e.DisplayName)
	e.AvatarURL = strings.TrimSpace(e.AvatarURL)

	if e.DisplayName == "" {
		e.DisplayName = strings.TrimSpace(e.FirstName + " " + e.LastName)
	}
	if e.ProviderID == "" {
		return External{}, ErrMissingSubject
	}
	if e.Email == "" {
		return External{}, ErrMissingEmail
	}
	return e, nil
}
