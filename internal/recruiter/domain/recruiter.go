package domain

import "time"

// RecruiterProfile public face of a recruiter account
type RecruiterProfile struct {
	MemberID    string    `bson:"member_id" json:"member_id"`
	CompanyName string    `bson:"company_name" json:"company_name"`
	Bio         string    `bson:"bio" json:"bio"`
	Website     string    `bson:"website" json:"website"`
	AvgRating   float64   `bson:"avg_rating" json:"avg_rating"`
	ReviewCount int       `bson:"review_count" json:"review_count"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Review one seeker's rating of a recruiter, one per author
type Review struct {
	ID          string    `bson:"_id" json:"id"`
	RecruiterID string    `bson:"recruiter_id" json:"recruiter_id"`
	AuthorID    string    `bson:"author_id" json:"author_id"`
	Rating      int       `bson:"rating" json:"rating"`
	Comment     string    `bson:"comment" json:"comment"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// RatingSummary aggregated review numbers for one recruiter
type RatingSummary struct {
	RecruiterID string  `bson:"_id" json:"recruiter_id"`
	AvgRating   float64 `bson:"avg_rating" json:"avg_rating"`
	ReviewCount int     `bson:"review_count" json:"review_count"`
}
