package pack

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/critfumble/content-api/internal/entities/content"
	"github.com/critfumble/content-api/internal/errors"
	redisclient "github.com/critfumble/content-api/internal/redis"
)

const (
	packKeyPrefix = "pack:"
	packIndexKey  = "packs"

	// Error messages
	errPackNil      = "pack cannot be nil"
	errPackIDEmpty  = "pack ID cannot be empty"
	errIndexEmpty   = "item index cannot be empty"
	errItemNoIndex  = "item is missing an index"
	errTypeRequired = "content type is required"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed content-pack repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func packKey(id string) string {
	return packKeyPrefix + id
}

func itemsKey(id string, t content.Type) string {
	return packKeyPrefix + id + ":items:" + t.String()
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Pack == nil {
		return nil, errors.InvalidArgument(errPackNil)
	}
	if input.Pack.ID == "" {
		return nil, errors.InvalidArgument(errPackIDEmpty)
	}

	exists, err := r.client.Exists(ctx, packKey(input.Pack.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("pack with ID %s already exists", input.Pack.ID)
	}

	data, err := json.Marshal(input.Pack)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal pack")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, packKey(input.Pack.ID), data, 0)
	pipe.SAdd(ctx, packIndexKey, input.Pack.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create pack")
	}

	return &CreateOutput{Pack: input.Pack}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPackIDEmpty)
	}

	result, err := r.client.Get(ctx, packKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("pack with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get pack")
	}

	var p content.Pack
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal pack")
	}

	return &GetOutput{Pack: &p}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, packIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list packs")
	}

	packs := make([]*content.Pack, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// A pack deleted between SMembers and Get is not an error
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if input.ActiveOnly && !getOutput.Pack.Active {
			continue
		}
		packs = append(packs, getOutput.Pack)
	}

	// Newest first; ties broken by ID for a stable order
	sort.Slice(packs, func(i, j int) bool {
		if packs[i].UpdatedAt != packs[j].UpdatedAt {
			return packs[i].UpdatedAt > packs[j].UpdatedAt
		}
		return packs[i].ID < packs[j].ID
	})

	return &ListOutput{Packs: packs}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Pack == nil {
		return nil, errors.InvalidArgument(errPackNil)
	}
	if input.Pack.ID == "" {
		return nil, errors.InvalidArgument(errPackIDEmpty)
	}

	exists, err := r.client.Exists(ctx, packKey(input.Pack.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("pack with ID %s not found", input.Pack.ID)
	}

	data, err := json.Marshal(input.Pack)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal pack")
	}

	if err := r.client.Set(ctx, packKey(input.Pack.ID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update pack")
	}

	return &UpdateOutput{Pack: input.Pack}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPackIDEmpty)
	}

	exists, err := r.client.Exists(ctx, packKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("pack with ID %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, packKey(input.ID))
	for _, t := range content.AllTypes {
		pipe.Del(ctx, itemsKey(input.ID, t))
	}
	pipe.SRem(ctx, packIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete pack")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) PutItems(ctx context.Context, input PutItemsInput) (*PutItemsOutput, error) {
	if input.PackID == "" {
		return nil, errors.InvalidArgument(errPackIDEmpty)
	}
	if input.ContentType == "" {
		return nil, errors.InvalidArgument(errTypeRequired)
	}

	if _, err := r.Get(ctx, GetInput{ID: input.PackID}); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{}, len(input.Items))
	for _, item := range input.Items {
		index := item.Index()
		if index == "" {
			return nil, errors.InvalidArgument(errItemNoIndex)
		}
		data, err := json.Marshal(item)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal item %s", index)
		}
		fields[index] = data
	}

	if len(fields) == 0 {
		return &PutItemsOutput{}, nil
	}

	if err := r.client.HSet(ctx, itemsKey(input.PackID, input.ContentType), fields).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store items")
	}

	return &PutItemsOutput{Stored: len(fields)}, nil
}

func (r *redisRepository) GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error) {
	if input.PackID == "" {
		return nil, errors.InvalidArgument(errPackIDEmpty)
	}
	if input.Index == "" {
		return nil, errors.InvalidArgument(errIndexEmpty)
	}

	result, err := r.client.HGet(ctx, itemsKey(input.PackID, input.ContentType), input.Index).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item %s not found in pack %s", input.Index, input.PackID)
		}
		return nil, errors.Wrapf(err, "failed to get item")
	}

	var doc content.Document
	if err := json.Unmarshal([]byte(result), &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item")
	}

	return &GetItemOutput{Item: doc}, nil
}

func (r *redisRepository) ListItems(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error) {
	if input.PackID == "" {
		return nil, errors.InvalidArgument(errPackIDEmpty)
	}

	result, err := r.client.HGetAll(ctx, itemsKey(input.PackID, input.ContentType)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items")
	}

	indexes := make([]string, 0, len(result))
	for index := range result {
		indexes = append(indexes, index)
	}
	sort.Strings(indexes)

	items := make([]content.Document, 0, len(indexes))
	for _, index := range indexes {
		var doc content.Document
		if err := json.Unmarshal([]byte(result[index]), &doc); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal item %s", index)
		}
		items = append(items, doc)
	}

	return &ListItemsOutput{Items: items}, nil
}
