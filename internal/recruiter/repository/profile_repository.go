package repository

import (
	"context"

	"workzup_backend/internal/recruiter/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepository definition recruiter profile persistence
type ProfileRepository interface {
	UpsertProfile(ctx context.Context, profile *domain.RecruiterProfile) error
	FindProfile(ctx context.Context, memberID string) (*domain.RecruiterProfile, error)
	UpdateRating(ctx context.Context, memberID string, avg float64, count int) error
}

type profileRepository struct {
	coll *mongo.Collection
}

// NewMongoProfileRepository create a ProfileRepository
func NewMongoProfileRepository(db *mongo.Database) ProfileRepository {
	return &profileRepository{
		coll: db.Collection("recruiter_profiles"),
	}
}

func (r *profileRepository) UpsertProfile(ctx context.Context, profile *domain.RecruiterProfile) error {
	filter := bson.M{"member_id": profile.MemberID}
	update := bson.M{"$set": bson.M{
		"member_id":    profile.MemberID,
		"company_name": profile.CompanyName,
		"bio":          profile.Bio,
		"website":      profile.Website,
		"updated_at":   profile.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *profileRepository) FindProfile(ctx context.Context, memberID string) (*domain.RecruiterProfile, error) {
	filter := bson.M{"member_id": memberID}
	var profile domain.RecruiterProfile
	if err := r.coll.FindOne(ctx, filter).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateRating store the recomputed aggregate on the profile document
func (r *profileRepository) UpdateRating(ctx context.Context, memberID string, avg float64, count int) error {
	filter := bson.M{"member_id": memberID}
	update := bson.M{"$set": bson.M{
		"avg_rating":   avg,
		"review_count": count,
	}}
	_, err := r.coll.UpdateOne(ctx, filter, update)
	return err
}
