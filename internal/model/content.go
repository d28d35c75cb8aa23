package model

import "time"

// BlogPost is a marketing blog entry served from the content database.
type BlogPost struct {
	ID          int64
	Slug        string
	Title       string
	Summary     string
	Body        string
	Author      string
	PublishedAt time.Time
}

// UseCase is a marketing page describing Muzads for one kind of business.
type UseCase struct {
	ID       int64
	Slug     string
	Title    string
	Audience string
	Body     string
}
