package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewSnippetDocument is one embedded review snippet inside a cache
// document.
type ReviewSnippetDocument struct {
	AuthorName              string `bson:"authorName"`
	Rating                  int    `bson:"rating"`
	Text                    string `bson:"text"`
	RelativeTimeDescription string `bson:"relativeTimeDescription"`
	PhotoURL                string `bson:"photoUrl"`
	UnixTime                int64  `bson:"unixTime"`
}

// ReviewCacheDocument is the stored review snapshot for one location. The
// place identifier doubles as the primary key so a refresh is a single
// whole-document replace.
type ReviewCacheDocument struct {
	PlaceID      string                  `bson:"_id"`
	Rating       float64                 `bson:"rating"`
	TotalRatings int                     `bson:"totalRatings"`
	Reviews      []ReviewSnippetDocument `bson:"reviews"`
	CachedAt     time.Time               `bson:"cachedAt"`
}

// ContactSubmissionDocument is one stored contact form message.
type ContactSubmissionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone,omitempty"`
	Message     string             `bson:"message"`
	SubmittedAt time.Time          `bson:"submittedAt"`
}
