package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is a catalog document as stored in the movies collection.
// Title is the only field guaranteed to be present; every other field may be
// absent from a given document and must stay optional, never defaulted.
type Movie struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title            string             `bson:"title" json:"title"`
	Plot             string             `bson:"plot,omitempty" json:"plot,omitempty"`
	FullPlot         string             `bson:"fullplot,omitempty" json:"fullplot,omitempty"`
	Genres           []string           `bson:"genres,omitempty" json:"genres,omitempty"`
	Runtime          int                `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Cast             []string           `bson:"cast,omitempty" json:"cast,omitempty"`
	NumMflixComments int                `bson:"num_mflix_comments,omitempty" json:"num_mflix_comments,omitempty"`
	Poster           string             `bson:"poster,omitempty" json:"poster,omitempty"`
	Languages        []string           `bson:"languages,omitempty" json:"languages,omitempty"`
	Released         *time.Time         `bson:"released,omitempty" json:"released,omitempty"`
	Directors        []string           `bson:"directors,omitempty" json:"directors,omitempty"`
	Writers          []string           `bson:"writers,omitempty" json:"writers,omitempty"`
	Awards           *Awards            `bson:"awards,omitempty" json:"awards,omitempty"`
	LastUpdated      *time.Time         `bson:"lastupdated,omitempty" json:"lastupdated,omitempty"`
	Year             int                `bson:"year,omitempty" json:"year,omitempty"`
	IMDB             *IMDB              `bson:"imdb,omitempty" json:"imdb,omitempty"`
	Countries        []string           `bson:"countries,omitempty" json:"countries,omitempty"`
	Rated            string             `bson:"rated,omitempty" json:"rated,omitempty"`
	Type             string             `bson:"type,omitempty" json:"type,omitempty"`
}

// Awards summarizes a movie's award record.
type Awards struct {
	Wins        int    `bson:"wins,omitempty" json:"wins,omitempty"`
	Nominations int    `bson:"nominations,omitempty" json:"nominations,omitempty"`
	Text        string `bson:"text,omitempty" json:"text,omitempty"`
}

// IMDB holds the external rating metadata nested in a movie document.
type IMDB struct {
	Rating float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Votes  int     `bson:"votes,omitempty" json:"votes,omitempty"`
	ID     int     `bson:"id,omitempty" json:"id,omitempty"`
}
