package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// resumeID is the _id of the single resume document.
const resumeID = "resume"

// skillGroupDocument is a SkillGroup with its display position.
type skillGroupDocument struct {
	Order            int `bson:"order"`
	model.SkillGroup `bson:",inline"`
}

// MongoRepository serves content stored in MongoDB.
// Each content collection lives in a MongoDB collection of the same name.
type MongoRepository struct {
	db       *MongoDB
	validate *validator.Validate
}

// NewMongoRepository creates a new MongoDB backed content repository.
func NewMongoRepository(db *MongoDB) *MongoRepository {
	return &MongoRepository{
		db:       db,
		validate: newValidator(),
	}
}

// Items returns all items of a collection, newest first.
func (r *MongoRepository) Items(ctx context.Context, collection string) (items []model.ContentItem, err error) {
	if !model.IsCollection(collection) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.RecordContentLoad(collection, time.Since(start), status)
	}()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "slug", Value: 1}})
	cursor, err := r.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	items = []model.ContentItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Collection == "" {
			items[i].Collection = collection
		}
	}
	return items, nil
}

// Resume returns the resume document.
func (r *MongoRepository) Resume(ctx context.Context) (*model.Resume, error) {
	var resume model.Resume
	err := r.db.Resume.FindOne(ctx, bson.M{"_id": resumeID}).Decode(&resume)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("resume: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// Skills returns the skill groups ordered by position.
func (r *MongoRepository) Skills(ctx context.Context) ([]model.SkillGroup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.db.Skills.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []skillGroupDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	groups := make([]model.SkillGroup, 0, len(docs))
	for _, d := range docs {
		groups = append(groups, d.SkillGroup)
	}
	return groups, nil
}

// Upsert validates and stores an item, replacing any item with the same slug.
func (r *MongoRepository) Upsert(ctx context.Context, item model.ContentItem) error {
	if !model.IsCollection(item.Collection) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, item.Collection)
	}
	if err := validateDocument(r.validate, item.Collection+"/"+item.Slug, item); err != nil {
		return err
	}
	_, err := r.db.Collection(item.Collection).ReplaceOne(
		ctx,
		bson.M{"slug": item.Slug},
		item,
		options.Replace().SetUpsert(true),
	)
	return err
}

// SaveResume validates and stores the resume document.
func (r *MongoRepository) SaveResume(ctx context.Context, resume model.Resume) error {
	if err := validateDocument(r.validate, resumeID, resume); err != nil {
		return err
	}
	_, err := r.db.Resume.ReplaceOne(
		ctx,
		bson.M{"_id": resumeID},
		resume,
		options.Replace().SetUpsert(true),
	)
	return err
}

// SaveSkills replaces all skill groups, keeping their order.
func (r *MongoRepository) SaveSkills(ctx context.Context, groups []model.SkillGroup) error {
	docs := make([]any, 0, len(groups))
	for i, g := range groups {
		if err := validateDocument(r.validate, fmt.Sprintf("skills[%d]", i), g); err != nil {
			return err
		}
		docs = append(docs, skillGroupDocument{Order: i, SkillGroup: g})
	}

	if _, err := r.db.Skills.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := r.db.Skills.InsertMany(ctx, docs)
	return err
}

// Seed copies every document from src into MongoDB.
func (r *MongoRepository) Seed(ctx context.Context, src ContentRepositoryInterface) (int, error) {
	count := 0
	for _, name := range model.Collections {
		items, err := src.Items(ctx, name)
		if err != nil {
			return count, fmt.Errorf("seed %s: %w", name, err)
		}
		for _, item := range items {
			if err := r.Upsert(ctx, item); err != nil {
				return count, fmt.Errorf("seed %s/%s: %w", name, item.Slug, err)
			}
			count++
		}
	}

	resume, err := src.Resume(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return count, fmt.Errorf("seed resume: %w", err)
	default:
		if err := r.SaveResume(ctx, *resume); err != nil {
			return count, fmt.Errorf("seed resume: %w", err)
		}
		count++
	}

	groups, err := src.Skills(ctx)
	if err != nil {
		return count, fmt.Errorf("seed skills: %w", err)
	}
	if err := r.SaveSkills(ctx, groups); err != nil {
		return count, fmt.Errorf("seed skills: %w", err)
	}
	return count + len(groups), nil
}
