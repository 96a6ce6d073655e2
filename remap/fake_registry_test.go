package remap_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/c360studio/entityloader/registry"
)

const registryBase = "http://registry.example/entity/"

type createCall struct {
	localID string
	doc     string
}

type updateCall struct {
	id  string
	doc string
}

// fakeRegistry is an in-memory registry that records every call.
type fakeRegistry struct {
	creates []createCall
	updates []updateCall
	fetches []string
	stored  map[string]string

	// failCreateAt makes the n-th create (1-based) fail with createErr, or
	// with no location when createErr is nil.
	failCreateAt int
	createErr    error
	// location, when set, is returned for every create.
	location string
	// failUpdateAt makes the n-th update (1-based) return updateStatus.
	failUpdateAt int
	updateStatus int
	// override replaces the stored document returned by Fetch.
	override map[string]string
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{stored: make(map[string]string)}
}

func (f *fakeRegistry) Create(_ context.Context, localID string, doc []byte) (string, error) {
	f.creates = append(f.creates, createCall{localID: localID, doc: string(doc)})
	if len(f.creates) == f.failCreateAt {
		if f.createErr != nil {
			return "", f.createErr
		}
		return "", registry.ErrMissingLocation
	}
	iri := fmt.Sprintf("%s%d", registryBase, 100+len(f.creates))
	if f.location != "" {
		iri = f.location
	}
	f.stored[iri] = string(doc)
	return iri, nil
}

func (f *fakeRegistry) Update(_ context.Context, registryID string, doc []byte) error {
	f.updates = append(f.updates, updateCall{id: registryID, doc: string(doc)})
	if len(f.updates) == f.failUpdateAt {
		return &registry.StatusError{
			Method:     http.MethodPut,
			URL:        registryBase + registryID,
			StatusCode: f.updateStatus,
		}
	}
	return nil
}

func (f *fakeRegistry) Fetch(_ context.Context, registryIRI string) (*registry.Entity, error) {
	f.fetches = append(f.fetches, registryIRI)
	doc, ok := f.override[registryIRI]
	if !ok {
		doc, ok = f.stored[registryIRI]
	}
	if !ok {
		return nil, &registry.StatusError{Method: http.MethodGet, URL: registryIRI, StatusCode: http.StatusNotFound}
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return &registry.Entity{ID: strings.TrimPrefix(registryIRI, registryBase), Body: body}, nil
}

func (f *fakeRegistry) updatedIDs() []string {
	ids := make([]string, len(f.updates))
	for i, u := range f.updates {
		ids[i] = u.id
	}
	return ids
}
