package content_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/critfumble/content-api/internal/entities/content"
	"github.com/critfumble/content-api/internal/errors"
	orchestrator "github.com/critfumble/content-api/internal/orchestrators/content"
	"github.com/critfumble/content-api/internal/pkg/clock"
	"github.com/critfumble/content-api/internal/pkg/idgen"
	packrepo "github.com/critfumble/content-api/internal/repositories/pack"
	contentsvc "github.com/critfumble/content-api/internal/services/content"
	"github.com/critfumble/content-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	svc     contentsvc.Service
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.clock = &clock.Fixed{T: time.Unix(1700000000, 0)}

	svc, err := orchestrator.New(&orchestrator.Config{
		PackRepo:    packrepo.NewRedisRepository(client),
		IDGenerator: idgen.NewSequential("pack"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) createPack(name string) *content.Pack {
	out, err := s.svc.CreatePack(s.ctx, &contentsvc.CreatePackInput{Name: name, Version: "1.0.0"})
	s.Require().NoError(err)
	return out.Pack
}

func (s *OrchestratorTestSuite) activate(packID string) {
	_, err := s.svc.SetPackActive(s.ctx, &contentsvc.SetPackActiveInput{PackID: packID, Active: true})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := orchestrator.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = orchestrator.New(&orchestrator.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateItem() {
	out, err := s.svc.GenerateItem(s.ctx, &contentsvc.GenerateItemInput{
		ContentType: content.TypeSpells,
		Fields: content.Fields{
			"name":   "Ice Knife",
			"school": "Conjuration",
			"desc":   "You create a shard of ice.",
			"level":  1,
		},
	})
	s.Require().NoError(err)
	s.Assert().Equal("custom-ice-knife", out.Document.Index())
	s.Assert().Equal("/api/spells/custom-ice-knife", out.Document["url"])
}

func (s *OrchestratorTestSuite) TestGenerateItemMissingFields() {
	_, err := s.svc.GenerateItem(s.ctx, &contentsvc.GenerateItemInput{
		ContentType: content.TypeSpells,
		Fields:      content.Fields{"name": "Ice Knife"},
	})
	s.Require().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	s.Require().NotNil(meta)
	s.Assert().Contains(meta, "validation_errors")
}

func (s *OrchestratorTestSuite) TestGenerateItemUnknownType() {
	_, err := s.svc.GenerateItem(s.ctx, &contentsvc.GenerateItemInput{
		ContentType: content.Type("artifacts"),
		Fields:      content.Fields{"name": "Orb"},
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreatePack() {
	p := s.createPack("Homebrew Horrors")

	s.Assert().Equal("pack_1", p.ID)
	s.Assert().Equal("Homebrew Horrors", p.Name)
	s.Assert().False(p.Active)
	s.Assert().Equal(int64(1700000000), p.CreatedAt)
}

func (s *OrchestratorTestSuite) TestCreatePackRequiresName() {
	_, err := s.svc.CreatePack(s.ctx, &contentsvc.CreatePackInput{Version: "1.0.0"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreatePackDefaultsVersion() {
	out, err := s.svc.CreatePack(s.ctx, &contentsvc.CreatePackInput{Name: "Unversioned"})
	s.Require().NoError(err)
	s.Assert().Equal("1.0.0", out.Pack.Version)
}

func (s *OrchestratorTestSuite) TestSetPackActive() {
	p := s.createPack("Homebrew Horrors")

	out, err := s.svc.SetPackActive(s.ctx, &contentsvc.SetPackActiveInput{PackID: p.ID, Active: true})
	s.Require().NoError(err)
	s.Assert().True(out.Pack.Active)

	got, err := s.svc.GetPack(s.ctx, &contentsvc.GetPackInput{PackID: p.ID})
	s.Require().NoError(err)
	s.Assert().True(got.Pack.Active)
}

func (s *OrchestratorTestSuite) TestDeletePack() {
	p := s.createPack("Homebrew Horrors")

	_, err := s.svc.DeletePack(s.ctx, &contentsvc.DeletePackInput{PackID: p.ID})
	s.Require().NoError(err)

	_, err = s.svc.GetPack(s.ctx, &contentsvc.GetPackInput{PackID: p.ID})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUploadItems() {
	p := s.createPack("Homebrew Horrors")

	out, err := s.svc.UploadItems(s.ctx, &contentsvc.UploadItemsInput{
		PackID:      p.ID,
		ContentType: content.TypeSpells,
		Documents: []content.Document{
			{
				"index": "custom-ice-knife",
				"name":  "Ice Knife",
				"url":   "/api/spells/custom-ice-knife",
			},
		},
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Accepted)
	s.Assert().Equal(0, out.Rejected)
	s.Require().Len(out.Results, 1)
	s.Assert().True(out.Results[0].Accepted)
	s.Assert().Empty(out.Results[0].Errors)
}

func (s *OrchestratorTestSuite) TestUploadItemsRejections() {
	p := s.createPack("Homebrew Horrors")

	out, err := s.svc.UploadItems(s.ctx, &contentsvc.UploadItemsInput{
		PackID:      p.ID,
		ContentType: content.TypeSpells,
		Documents: []content.Document{
			{"name": "No Index"},
			{"index": "fireball", "name": "Unprefixed"},
			{"index": "custom-bad-url", "name": "Bad URL", "url": "/api/spells/custom-other"},
			{"index": "custom-good", "name": "Good", "url": "/api/spells/custom-good"},
		},
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Accepted)
	s.Assert().Equal(3, out.Rejected)

	s.Assert().False(out.Results[0].Accepted)
	s.Assert().Contains(out.Results[0].Errors[0], "missing an index")
	s.Assert().False(out.Results[1].Accepted)
	s.Assert().Contains(out.Results[1].Errors[0], "custom- prefix")
	s.Assert().False(out.Results[2].Accepted)
	s.Assert().Contains(out.Results[2].Errors[0], "url does not match")
	s.Assert().True(out.Results[3].Accepted)
}

func (s *OrchestratorTestSuite) TestUploadItemsWarnsOnUnresolvedReference() {
	p := s.createPack("Homebrew Horrors")

	out, err := s.svc.UploadItems(s.ctx, &contentsvc.UploadItemsInput{
		PackID:      p.ID,
		ContentType: content.TypeSpells,
		Documents: []content.Document{
			{
				"index": "custom-ice-knife",
				"name":  "Ice Knife",
				"url":   "/api/spells/custom-ice-knife",
				"school": map[string]any{
					"index": "custom-hemomancy",
					"name":  "Hemomancy",
					"url":   "/api/magic-schools/custom-hemomancy",
				},
			},
		},
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Accepted)
	s.Require().Len(out.Results[0].Warnings, 1)
	s.Assert().Contains(out.Results[0].Warnings[0], "custom-hemomancy")
}

func (s *OrchestratorTestSuite) TestUploadItemsResolvesReferenceInSameBatch() {
	p := s.createPack("Homebrew Horrors")

	out, err := s.svc.UploadItems(s.ctx, &contentsvc.UploadItemsInput{
		PackID:      p.ID,
		ContentType: content.TypeTraits,
		Documents: []content.Document{
			{
				"index": "custom-stone-skin",
				"name":  "Stone Skin",
				"url":   "/api/traits/custom-stone-skin",
			},
			{
				"index": "custom-mountain-born",
				"name":  "Mountain Born",
				"url":   "/api/traits/custom-mountain-born",
				"parent": map[string]any{
					"index": "custom-stone-skin",
					"name":  "Stone Skin",
					"url":   "/api/traits/custom-stone-skin",
				},
			},
		},
	})
	s.Require().NoError(err)
	s.Assert().Equal(2, out.Accepted)
	s.Assert().Empty(out.Results[1].Warnings)
}

func (s *OrchestratorTestSuite) TestUploadItemsResolvesReferenceAcrossUploads() {
	p := s.createPack("Homebrew Horrors")

	_, err := s.svc.UploadItems(s.ctx, &contentsvc.UploadItemsInput{
		PackID:      p.ID,
		ContentType: content.TypeMagicSchools,
		Documents: []content.Document{
			{"index": "custom-hemomancy", "name": "Hemomancy", "url": "/api/magic-schools/custom-hemomancy"},
		},
	})
	s.Require().NoError(err)

	out, err := s.svc.UploadItems(s.ctx, &contentsvc.UploadItemsInput{
		PackID:      p.ID,
		ContentType: content.TypeSpells,
		Documents: []content.Document{
			{
				"index": "custom-blood-lance",
				"name":  "Blood Lance",
				"url":   "/api/spells/custom-blood-lance",
				"school": map[string]any{
					"index": "custom-hemomancy",
					"name":  "Hemomancy",
					"url":   "/api/magic-schools/custom-hemomancy",
				},
			},
		},
	})
	s.Require().NoError(err)
	s.Assert().Empty(out.Results[0].Warnings)
}

func (s *OrchestratorTestSuite) TestUploadItemsMissingPack() {
	_, err := s.svc.UploadItems(s.ctx, &contentsvc.UploadItemsInput{
		PackID:      "pack_missing",
		ContentType: content.TypeSpells,
		Documents:   []content.Document{{"index": "custom-x", "name": "X"}},
	})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetItemFromActivePack() {
	p := s.createPack("Homebrew Horrors")

	_, err := s.svc.UploadItems(s.ctx, &contentsvc.UploadItemsInput{
		PackID:      p.ID,
		ContentType: content.TypeSpells,
		Documents: []content.Document{
			{"index": "custom-ice-knife", "name": "Ice Knife", "url": "/api/spells/custom-ice-knife"},
		},
	})
	s.Require().NoError(err)

	// Inactive packs are invisible to item lookups
	_, err = s.svc.GetItem(s.ctx, &contentsvc.GetItemInput{
		ContentType: content.TypeSpells,
		Index:       "custom-ice-knife",
	})
	s.Assert().True(errors.IsNotFound(err))

	s.activate(p.ID)

	out, err := s.svc.GetItem(s.ctx, &contentsvc.GetItemInput{
		ContentType: content.TypeSpells,
		Index:       "custom-ice-knife",
	})
	s.Require().NoError(err)
	s.Assert().Equal("Ice Knife", out.Item.Name())
}

func (s *OrchestratorTestSuite) TestListItemsMergesActivePacks() {
	older := s.createPack("Base Pack")
	s.activate(older.ID)

	// The second pack activates later, so its documents win index collisions
	s.clock.T = s.clock.T.Add(time.Minute)
	newer := s.createPack("Override Pack")
	s.activate(newer.ID)

	_, err := s.svc.UploadItems(s.ctx, &contentsvc.UploadItemsInput{
		PackID:      older.ID,
		ContentType: content.TypeSpells,
		Documents: []content.Document{
			{"index": "custom-shared", "name": "Old Shared", "url": "/api/spells/custom-shared"},
			{"index": "custom-only-old", "name": "Only Old", "url": "/api/spells/custom-only-old"},
		},
	})
	s.Require().NoError(err)

	_, err = s.svc.UploadItems(s.ctx, &contentsvc.UploadItemsInput{
		PackID:      newer.ID,
		ContentType: content.TypeSpells,
		Documents: []content.Document{
			{"index": "custom-shared", "name": "New Shared", "url": "/api/spells/custom-shared"},
		},
	})
	s.Require().NoError(err)

	out, err := s.svc.ListItems(s.ctx, &contentsvc.ListItemsInput{ContentType: content.TypeSpells})
	s.Require().NoError(err)
	s.Require().Len(out.Items, 2)

	byIndex := make(map[string]string, len(out.Items))
	for _, doc := range out.Items {
		byIndex[doc.Index()] = doc.Name()
	}
	s.Assert().Equal("New Shared", byIndex["custom-shared"])
	s.Assert().Equal("Only Old", byIndex["custom-only-old"])
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
