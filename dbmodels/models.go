package dbmodels

import "time"

type GuideDoc struct {
	ID            string    `bson:"_id"`
	Title         string    `bson:"title"`
	Language      string    `bson:"language"`
	RepoURL       string    `bson:"repo_url"`
	TopicCount    int       `bson:"topic_count"`
	QuestionCount int       `bson:"question_count"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

type TopicDoc struct {
	ID            string    `bson:"_id"`
	GuideID       string    `bson:"guide_id"`
	Slug          string    `bson:"slug"`
	Title         string    `bson:"title"`
	Index         int       `bson:"index"`
	QuestionCount int       `bson:"question_count"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

type QuestionDoc struct {
	ID       string `bson:"_id"`
	GuideID  string `bson:"guide_id"`
	TopicID  string `bson:"topic_id"`
	Index    int    `bson:"index"`
	Text     string `bson:"text"`
	Anchor   string `bson:"anchor"`
	AnswerMD string `bson:"answer_md"`
}

type IndexDoc struct {
	ID        string    `bson:"_id"`
	GuideID   string    `bson:"guide_id"`
	ContentMD string    `bson:"content_md"`
	UpdatedAt time.Time `bson:"updated_at"`
}
