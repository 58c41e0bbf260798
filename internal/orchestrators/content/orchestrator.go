// Package content implements the content service: serialization of form
// records into canonical documents and management of uploadable content packs.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/critfumble/content-api/internal/entities/content"
	"github.com/critfumble/content-api/internal/errors"
	"github.com/critfumble/content-api/internal/pkg/clock"
	"github.com/critfumble/content-api/internal/pkg/idgen"
	packrepo "github.com/critfumble/content-api/internal/repositories/pack"
	"github.com/critfumble/content-api/internal/serializer"
	contentsvc "github.com/critfumble/content-api/internal/services/content"
)

// Config holds dependencies for the content orchestrator
type Config struct {
	PackRepo    packrepo.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PackRepo == nil {
		vb.RequiredField("PackRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the content service
type Orchestrator struct {
	packRepo    packrepo.Repository
	idGenerator idgen.Generator
	clock       clock.Clock
}

// New creates a new content orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		packRepo:    cfg.PackRepo,
		idGenerator: cfg.IDGenerator,
		clock:       c,
	}, nil
}

// GenerateItem serializes one form-field record into its canonical document
func (o *Orchestrator) GenerateItem(ctx context.Context, input *contentsvc.GenerateItemInput) (*contentsvc.GenerateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, ok := content.ParseType(input.ContentType.String()); !ok {
		return nil, errors.InvalidArgumentf("unknown content type: %s", input.ContentType)
	}

	if missing := serializer.MissingFields(input.ContentType, input.Fields); len(missing) > 0 {
		vb := errors.NewValidationBuilder()
		for _, field := range missing {
			vb.RequiredField(field)
		}
		return nil, vb.Build()
	}

	return &contentsvc.GenerateItemOutput{
		Document: serializer.Serialize(input.ContentType, input.Fields),
	}, nil
}

// CreatePack creates a new, inactive content pack
func (o *Orchestrator) CreatePack(ctx context.Context, input *contentsvc.CreatePackInput) (*contentsvc.CreatePackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	version := input.Version
	if version == "" {
		version = "1.0.0"
	}

	now := o.clock.Now().Unix()
	p := &content.Pack{
		ID:        o.idGenerator.Generate(),
		Name:      input.Name,
		Version:   version,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := o.packRepo.Create(ctx, packrepo.CreateInput{Pack: p})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "created content pack",
		"pack_id", created.Pack.ID,
		"name", created.Pack.Name,
	)

	return &contentsvc.CreatePackOutput{Pack: created.Pack}, nil
}

// GetPack retrieves a pack by ID
func (o *Orchestrator) GetPack(ctx context.Context, input *contentsvc.GetPackInput) (*contentsvc.GetPackOutput, error) {
	if input == nil || input.PackID == "" {
		return nil, errors.InvalidArgument("pack ID is required")
	}

	output, err := o.packRepo.Get(ctx, packrepo.GetInput{ID: input.PackID})
	if err != nil {
		return nil, err
	}

	return &contentsvc.GetPackOutput{Pack: output.Pack}, nil
}

// ListPacks lists known packs, newest first
func (o *Orchestrator) ListPacks(ctx context.Context, input *contentsvc.ListPacksInput) (*contentsvc.ListPacksOutput, error) {
	if input == nil {
		input = &contentsvc.ListPacksInput{}
	}

	output, err := o.packRepo.List(ctx, packrepo.ListInput{ActiveOnly: input.ActiveOnly})
	if err != nil {
		return nil, err
	}

	return &contentsvc.ListPacksOutput{Packs: output.Packs}, nil
}

// DeletePack removes a pack and everything uploaded into it
func (o *Orchestrator) DeletePack(ctx context.Context, input *contentsvc.DeletePackInput) (*contentsvc.DeletePackOutput, error) {
	if input == nil || input.PackID == "" {
		return nil, errors.InvalidArgument("pack ID is required")
	}

	if _, err := o.packRepo.Delete(ctx, packrepo.DeleteInput{ID: input.PackID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted content pack", "pack_id", input.PackID)

	return &contentsvc.DeletePackOutput{}, nil
}

// SetPackActive toggles whether a pack's items are served
func (o *Orchestrator) SetPackActive(ctx context.Context, input *contentsvc.SetPackActiveInput) (*contentsvc.SetPackActiveOutput, error) {
	if input == nil || input.PackID == "" {
		return nil, errors.InvalidArgument("pack ID is required")
	}

	getOutput, err := o.packRepo.Get(ctx, packrepo.GetInput{ID: input.PackID})
	if err != nil {
		return nil, err
	}

	p := getOutput.Pack
	if p.Active == input.Active {
		return &contentsvc.SetPackActiveOutput{Pack: p}, nil
	}

	p.Active = input.Active
	p.UpdatedAt = o.clock.Now().Unix()

	updated, err := o.packRepo.Update(ctx, packrepo.UpdateInput{Pack: p})
	if err != nil {
		return nil, err
	}

	return &contentsvc.SetPackActiveOutput{Pack: updated.Pack}, nil
}

// UploadItems validates and stores a batch of documents into a pack. Each
// document is checked independently; one bad item never blocks the rest.
func (o *Orchestrator) UploadItems(ctx context.Context, input *contentsvc.UploadItemsInput) (*contentsvc.UploadItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PackID == "" {
		return nil, errors.InvalidArgument("pack ID is required")
	}
	if _, ok := content.ParseType(input.ContentType.String()); !ok {
		return nil, errors.InvalidArgumentf("unknown content type: %s", input.ContentType)
	}

	if _, err := o.packRepo.Get(ctx, packrepo.GetInput{ID: input.PackID}); err != nil {
		return nil, err
	}

	batch := make(map[string]bool, len(input.Documents))
	for _, doc := range input.Documents {
		if index := doc.Index(); index != "" {
			batch[index] = true
		}
	}

	output := &contentsvc.UploadItemsOutput{
		Results: make([]contentsvc.ItemResult, 0, len(input.Documents)),
	}

	accepted := make([]content.Document, 0, len(input.Documents))
	for _, doc := range input.Documents {
		result := o.checkDocument(ctx, input.PackID, input.ContentType, doc, batch)
		if result.Accepted {
			accepted = append(accepted, doc)
			output.Accepted++
		} else {
			output.Rejected++
		}
		output.Results = append(output.Results, result)
	}

	if len(accepted) > 0 {
		if _, err := o.packRepo.PutItems(ctx, packrepo.PutItemsInput{
			PackID:      input.PackID,
			ContentType: input.ContentType,
			Items:       accepted,
		}); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "uploaded content items",
		"pack_id", input.PackID,
		"content_type", input.ContentType,
		"accepted", output.Accepted,
		"rejected", output.Rejected,
	)

	return output, nil
}

// checkDocument validates one uploaded document. Structural problems reject
// the item; unresolved references only warn, because the target may arrive in
// a later upload.
func (o *Orchestrator) checkDocument(ctx context.Context, packID string, t content.Type, doc content.Document, batch map[string]bool) contentsvc.ItemResult {
	result := contentsvc.ItemResult{Index: doc.Index()}

	if result.Index == "" {
		result.Errors = append(result.Errors, "document is missing an index")
	} else if !strings.HasPrefix(result.Index, "custom-") {
		result.Errors = append(result.Errors, "index must carry the custom- prefix")
	}
	if doc.Name() == "" && t != content.TypeLevels {
		result.Errors = append(result.Errors, "document is missing a name")
	}
	if result.Index != "" {
		if url, _ := doc["url"].(string); url != "" && url != content.APIPath(t, result.Index) {
			result.Errors = append(result.Errors, fmt.Sprintf("url does not match %s", content.APIPath(t, result.Index)))
		}
	}

	if len(result.Errors) > 0 {
		return result
	}

	for _, ref := range collectReferences(doc) {
		if !strings.HasPrefix(ref.Index, "custom-") {
			continue
		}
		refType, ok := referenceType(ref)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("reference %q has an unrecognized url", ref.Index))
			continue
		}
		if refType == t && batch[ref.Index] {
			continue
		}
		if _, err := o.packRepo.GetItem(ctx, packrepo.GetItemInput{
			PackID:      packID,
			ContentType: refType,
			Index:       ref.Index,
		}); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("reference %q does not resolve within this pack", ref.Index))
		}
	}

	result.Accepted = true
	return result
}

// GetItem resolves one item from the activated packs, newest pack winning
func (o *Orchestrator) GetItem(ctx context.Context, input *contentsvc.GetItemInput) (*contentsvc.GetItemOutput, error) {
	if input == nil || input.Index == "" {
		return nil, errors.InvalidArgument("item index is required")
	}
	if _, ok := content.ParseType(input.ContentType.String()); !ok {
		return nil, errors.InvalidArgumentf("unknown content type: %s", input.ContentType)
	}

	listOutput, err := o.packRepo.List(ctx, packrepo.ListInput{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	for _, p := range listOutput.Packs {
		itemOutput, err := o.packRepo.GetItem(ctx, packrepo.GetItemInput{
			PackID:      p.ID,
			ContentType: input.ContentType,
			Index:       input.Index,
		})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		return &contentsvc.GetItemOutput{Item: itemOutput.Item}, nil
	}

	return nil, errors.NotFoundf("%s %s not found in any active pack", input.ContentType, input.Index)
}

// ListItems merges one content type across the activated packs. When two
// packs carry the same index, the newer pack's document is served.
func (o *Orchestrator) ListItems(ctx context.Context, input *contentsvc.ListItemsInput) (*contentsvc.ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, ok := content.ParseType(input.ContentType.String()); !ok {
		return nil, errors.InvalidArgumentf("unknown content type: %s", input.ContentType)
	}

	listOutput, err := o.packRepo.List(ctx, packrepo.ListInput{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	merged := make([]content.Document, 0)
	for _, p := range listOutput.Packs {
		itemsOutput, err := o.packRepo.ListItems(ctx, packrepo.ListItemsInput{
			PackID:      p.ID,
			ContentType: input.ContentType,
		})
		if err != nil {
			return nil, err
		}
		for _, doc := range itemsOutput.Items {
			if seen[doc.Index()] {
				continue
			}
			seen[doc.Index()] = true
			merged = append(merged, doc)
		}
	}

	return &contentsvc.ListItemsOutput{Items: merged}, nil
}

// collectReferences walks a document and gathers every embedded Reference.
// Uploaded documents arrive JSON-decoded, so references appear as maps; freshly
// serialized ones carry the typed form. Both are handled.
func collectReferences(v any) []content.Reference {
	var refs []content.Reference
	walkReferences(v, &refs)
	return refs
}

func walkReferences(v any, refs *[]content.Reference) {
	switch val := v.(type) {
	case content.Reference:
		*refs = append(*refs, val)
	case []content.Reference:
		*refs = append(*refs, val...)
	case content.Document:
		for key, nested := range val {
			if key == "index" || key == "name" || key == "url" {
				continue
			}
			walkReferences(nested, refs)
		}
	case map[string]any:
		if ref, ok := referenceFromMap(val); ok {
			*refs = append(*refs, ref)
			return
		}
		for _, nested := range val {
			walkReferences(nested, refs)
		}
	case []any:
		for _, item := range val {
			walkReferences(item, refs)
		}
	}
}

func referenceFromMap(m map[string]any) (content.Reference, bool) {
	index, _ := m["index"].(string)
	name, _ := m["name"].(string)
	url, _ := m["url"].(string)
	if index == "" || url == "" {
		return content.Reference{}, false
	}
	return content.Reference{Index: index, Name: name, URL: url}, true
}

// referenceType recovers the content type from a reference URL of the form
// /api/<type>/<slug>.
func referenceType(ref content.Reference) (content.Type, bool) {
	rest, ok := strings.CutPrefix(ref.URL, "/api/")
	if !ok {
		return "", false
	}
	raw, _, ok := strings.Cut(rest, "/")
	if !ok {
		return "", false
	}
	return content.ParseType(raw)
}
