// Package content defines the interface for content-pack operations
package content

//go:generate mockgen -destination=mock/mock_service.go -package=contentmock github.com/critfumble/content-api/internal/services/content Service

import (
	"context"

	"github.com/critfumble/content-api/internal/entities/content"
)

// Service defines the interface for content generation and pack management
type Service interface {
	// GenerateItem serializes a form-field record into a canonical document
	GenerateItem(ctx context.Context, input *GenerateItemInput) (*GenerateItemOutput, error)

	// Pack lifecycle
	CreatePack(ctx context.Context, input *CreatePackInput) (*CreatePackOutput, error)
	GetPack(ctx context.Context, input *GetPackInput) (*GetPackOutput, error)
	ListPacks(ctx context.Context, input *ListPacksInput) (*ListPacksOutput, error)
	DeletePack(ctx context.Context, input *DeletePackInput) (*DeletePackOutput, error)
	SetPackActive(ctx context.Context, input *SetPackActiveInput) (*SetPackActiveOutput, error)

	// Item operations
	UploadItems(ctx context.Context, input *UploadItemsInput) (*UploadItemsOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
}

// GenerateItemInput defines the request for serializing one content item
type GenerateItemInput struct {
	ContentType content.Type
	Fields      content.Fields
}

// GenerateItemOutput defines the response for serializing one content item
type GenerateItemOutput struct {
	Document content.Document
}

// CreatePackInput defines the request for creating a pack
type CreatePackInput struct {
	Name    string
	Version string
}

// CreatePackOutput defines the response for creating a pack
type CreatePackOutput struct {
	Pack *content.Pack
}

// GetPackInput defines the request for getting a pack
type GetPackInput struct {
	PackID string
}

// GetPackOutput defines the response for getting a pack
type GetPackOutput struct {
	Pack *content.Pack
}

// ListPacksInput defines the request for listing packs
type ListPacksInput struct {
	ActiveOnly bool
}

// ListPacksOutput defines the response for listing packs
type ListPacksOutput struct {
	Packs []*content.Pack
}

// DeletePackInput defines the request for deleting a pack
type DeletePackInput struct {
	PackID string
}

// DeletePackOutput defines the response for deleting a pack
type DeletePackOutput struct{}

// SetPackActiveInput defines the request for toggling pack activation
type SetPackActiveInput struct {
	PackID string
	Active bool
}

// SetPackActiveOutput defines the response for toggling pack activation
type SetPackActiveOutput struct {
	Pack *content.Pack
}

// UploadItemsInput defines the request for bulk-uploading documents
type UploadItemsInput struct {
	PackID      string
	ContentType content.Type
	Documents   []content.Document
}

// UploadItemsOutput defines the response for bulk-uploading documents
type UploadItemsOutput struct {
	Results  []ItemResult
	Accepted int
	Rejected int
}

// ItemResult reports the outcome for one uploaded document
type ItemResult struct {
	Index    string   `json:"index"`
	Accepted bool     `json:"accepted"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// GetItemInput defines the request for resolving one item from active packs
type GetItemInput struct {
	ContentType content.Type
	Index       string
}

// GetItemOutput defines the response for resolving one item
type GetItemOutput struct {
	Item content.Document
}

// ListItemsInput defines the request for listing items from active packs
type ListItemsInput struct {
	ContentType content.Type
}

// ListItemsOutput defines the response for listing items
type ListItemsOutput struct {
	Items []content.Document
}
