/*
Copyright 2026 the Platform Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package results

import (
	"context"
)

// Document is a record as it is persisted.
type Document map[string]any

// Store persists documents into named collections.
//
//go:generate mockgen -source=store.go -destination=mock/store.go -package=mock
type Store interface {
	// Insert adds a document and returns the id the store assigned to it.
	Insert(ctx context.Context, collection string, document Document) (string, error)
	// Replace overwrites the document with the given id.
	Replace(ctx context.Context, collection, id string, document Document) error
}
