//go:build integration

package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"workzup_backend/internal/recruiter/repository"
	"workzup_backend/pkg/database"
	"workzup_backend/pkg/logger"
	testtool "workzup_backend/pkg/test_tool"
	token "workzup_backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var mongoDB *database.MongoDB

func TestMain(m *testing.M) {
	ctx := context.Background()
	logger.SetNewNop()

	mongoContainer, mongoHost, mongoPort, err := testtool.SetupContainer(ctx, testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	})
	if err != nil {
		log.Fatalf("Failed to start MongoDB container: %v", err)
	}
	defer mongoContainer.Terminate(ctx)

	mongoDB, err = database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    fmt.Sprintf("mongodb://%s:%s", mongoHost, mongoPort),
		RetryCount:    5,
		RetryInterval: 2 * time.Second,
	}, "test_recruiter_db")
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Close(ctx)

	os.Exit(m.Run())
}

func TestRecruiterFlow(t *testing.T) {
	ctx := context.Background()

	profileRepo := repository.NewMongoProfileRepository(mongoDB.Database)
	reviewRepo := repository.NewMongoReviewRepository(mongoDB.Database)
	uc := NewRecruiterUseCase(profileRepo, reviewRepo)

	profile, err := uc.UpsertProfile(ctx, "recruiter-1", string(token.RoleRecruiter), UpsertProfileReq{
		CompanyName: "Cafe Work",
		Bio:         "a small coffee chain",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cafe Work", profile.CompanyName)

	// two reviewers
	_, err = uc.AddReview(ctx, "seeker-1", string(token.RoleSeeker), "recruiter-1", AddReviewReq{Rating: 5, Comment: "great"})
	require.NoError(t, err)
	_, err = uc.AddReview(ctx, "seeker-2", string(token.RoleSeeker), "recruiter-1", AddReviewReq{Rating: 3, Comment: "ok"})
	require.NoError(t, err)

	profile, err = uc.GetProfile(ctx, "recruiter-1")
	require.NoError(t, err)
	assert.Equal(t, 2, profile.ReviewCount)
	assert.InDelta(t, 4.0, profile.AvgRating, 0.001)

	// a second review from the same author replaces the first
	_, err = uc.AddReview(ctx, "seeker-2", string(token.RoleSeeker), "recruiter-1", AddReviewReq{Rating: 5, Comment: "changed my mind"})
	require.NoError(t, err)

	profile, err = uc.GetProfile(ctx, "recruiter-1")
	require.NoError(t, err)
	assert.Equal(t, 2, profile.ReviewCount)
	assert.InDelta(t, 5.0, profile.AvgRating, 0.001)

	reviews, err := uc.ListReviews(ctx, "recruiter-1")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
