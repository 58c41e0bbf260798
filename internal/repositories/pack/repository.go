// Package pack defines the interface for content-pack persistence
package pack

//go:generate mockgen -destination=mock/mock_repository.go -package=packmock github.com/critfumble/content-api/internal/repositories/pack Repository

import (
	"context"

	"github.com/critfumble/content-api/internal/entities/content"
)

// Repository defines the interface for content-pack persistence
type Repository interface {
	// Create stores a new pack
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the pack ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a pack by ID
	// Returns errors.NotFound if the pack doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all known packs
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Update replaces a pack's metadata
	// Returns errors.NotFound if the pack doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a pack and all its items
	// Returns errors.NotFound if the pack doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// PutItems stores documents of one content type into a pack, keyed by index.
	// Existing items with the same index are replaced.
	PutItems(ctx context.Context, input PutItemsInput) (*PutItemsOutput, error)

	// GetItem retrieves one document from a pack
	// Returns errors.NotFound if the pack or item doesn't exist
	GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error)

	// ListItems retrieves all documents of one content type in a pack
	ListItems(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error)
}

// CreateInput defines the input for creating a pack
type CreateInput struct {
	Pack *content.Pack
}

// CreateOutput defines the output for creating a pack
type CreateOutput struct {
	Pack *content.Pack
}

// GetInput defines the input for getting a pack
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a pack
type GetOutput struct {
	Pack *content.Pack
}

// ListInput defines the input for listing packs
type ListInput struct {
	// ActiveOnly restricts the listing to activated packs
	ActiveOnly bool
}

// ListOutput defines the output for listing packs
type ListOutput struct {
	Packs []*content.Pack
}

// UpdateInput defines the input for updating a pack
type UpdateInput struct {
	Pack *content.Pack
}

// UpdateOutput defines the output for updating a pack
type UpdateOutput struct {
	Pack *content.Pack
}

// DeleteInput defines the input for deleting a pack
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a pack
type DeleteOutput struct{}

// PutItemsInput defines the input for storing documents in a pack
type PutItemsInput struct {
	PackID      string
	ContentType content.Type
	Items       []content.Document
}

// PutItemsOutput defines the output for storing documents
type PutItemsOutput struct {
	Stored int
}

// GetItemInput defines the input for getting one document
type GetItemInput struct {
	PackID      string
	ContentType content.Type
	Index       string
}

// GetItemOutput defines the output for getting one document
type GetItemOutput struct {
	Item content.Document
}

// ListItemsInput defines the input for listing a pack's documents of one type
type ListItemsInput struct {
	PackID      string
	ContentType content.Type
}

// ListItemsOutput defines the output for listing documents
type ListItemsOutput struct {
	Items []content.Document
}
