package repository

import (
	"context"
	"fmt"

	"workzup_backend/internal/recruiter/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository definition recruiter review persistence
type ReviewRepository interface {
	// UpsertReview one review per author per recruiter, a second write
	// from the same author replaces the first
	UpsertReview(ctx context.Context, review *domain.Review) error
	FindByRecruiter(ctx context.Context, recruiterID string) ([]domain.Review, error)
	RatingSummary(ctx context.Context, recruiterID string) (*domain.RatingSummary, error)
}

type reviewRepository struct {
	coll *mongo.Collection
}

// NewMongoReviewRepository create a ReviewRepository
func NewMongoReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{
		coll: db.Collection("recruiter_reviews"),
	}
}

func (r *reviewRepository) UpsertReview(ctx context.Context, review *domain.Review) error {
	filter := bson.M{"recruiter_id": review.RecruiterID, "author_id": review.AuthorID}
	update := bson.M{"$set": bson.M{
		"recruiter_id": review.RecruiterID,
		"author_id":    review.AuthorID,
		"rating":       review.Rating,
		"comment":      review.Comment,
		"created_at":   review.CreatedAt,
	}, "$setOnInsert": bson.M{
		"_id": review.ID,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *reviewRepository) FindByRecruiter(ctx context.Context, recruiterID string) ([]domain.Review, error) {
	filter := bson.M{"recruiter_id": recruiterID}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var reviews []domain.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// RatingSummary aggregate avg and count over one recruiter's reviews
func (r *reviewRepository) RatingSummary(ctx context.Context, recruiterID string) (*domain.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "recruiter_id", Value: recruiterID},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$recruiter_id"},
			{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "review_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate error: %w", err)
	}

	var results []domain.RatingSummary
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("cursor All error: %w", err)
	}

	if len(results) == 0 {
		return &domain.RatingSummary{RecruiterID: recruiterID}, nil
	}
	return &results[0], nil
}
