package dbmodels

import (
	"fmt"
	"time"

	"github.com/androidprep/guideutil/config"
	"github.com/androidprep/guideutil/ir"
	"github.com/androidprep/guideutil/jekyll"
	"github.com/androidprep/guideutil/mdutils"
	"github.com/globalsign/mgo"
)

var Log = config.Cfg().GetLogger()

// PushGuide upserts the guide, its topics, its questions and the rendered
// questions index into MongoDB. Document IDs are derived from slugs so
// repeated pushes of the same guide update in place.
func PushGuide(g ir.Guide, mongoURI, dbName string) (err error) {
	sess, err := mgo.DialWithTimeout(mongoURI, time.Duration(10*time.Second))
	if err != nil {
		return err
	}
	defer sess.Close()
	gd, topics, qs, idx := convertToDBDocs(g)
	db := sess.DB(dbName)

	for _, q := range qs {
		cInfo, err := db.C("question").UpsertId(q.ID, q)
		if err != nil {
			Log.Errorf("MongoDB error with 'question' object: %s", err.Error())
			return err
		}
		Log.Debug("Guide 'question' changes: ", *cInfo)
	}

	for _, t := range topics {
		cInfo, err := db.C("topic").UpsertId(t.ID, t)
		if err != nil {
			Log.Errorf("MongoDB error with 'topic' object: %s", err.Error())
			return err
		}
		Log.Debug("Guide 'topic' changes: ", *cInfo)
	}

	cInfo, err := db.C("guide_index").UpsertId(idx.ID, idx)
	if err != nil {
		Log.Errorf("MongoDB error with 'guide_index' object: %s", err.Error())
		return err
	}
	Log.Debug("Guide 'guide_index' changes: ", *cInfo)

	cInfo, err = db.C("guide").UpsertId(gd.ID, gd)
	if err != nil {
		Log.Errorf("MongoDB error with 'guide' object: %s", err.Error())
		return err
	}
	Log.Info("Guide 'guide' changes: ", *cInfo)

	return
}

func convertToDBDocs(g ir.Guide) (gd *GuideDoc, topics []*TopicDoc, qs []*QuestionDoc, idx *IndexDoc) {
	now := time.Now()
	gd = &GuideDoc{
		ID:        g.GetSlug(),
		Title:     g.GetTitle(),
		Language:  g.GetLanguage(),
		RepoURL:   g.GetRepoURL(),
		UpdatedAt: now,
	}
	for _, doc := range g.GetDocuments() {
		questions := doc.GetQuestions()
		if len(questions) == 0 {
			continue
		}
		topicID := fmt.Sprintf("%s_%s", g.GetSlug(), doc.GetSlug())
		updatedAt := doc.GetUpdatedAt()
		if updatedAt.IsZero() {
			updatedAt = now
		}
		topics = append(topics, &TopicDoc{
			ID:            topicID,
			GuideID:       gd.ID,
			Slug:          doc.GetSlug(),
			Title:         mdutils.StripDeclaredCount(doc.GetTitle()),
			Index:         doc.GetOrder(),
			QuestionCount: len(questions),
			UpdatedAt:     updatedAt,
		})
		for i, q := range questions {
			qs = append(qs, &QuestionDoc{
				ID:       fmt.Sprintf("%s_q_%d", topicID, i),
				GuideID:  gd.ID,
				TopicID:  topicID,
				Index:    i,
				Text:     q.GetText(),
				Anchor:   q.GetAnchor(),
				AnswerMD: q.GetAnswerMD(),
			})
		}
		gd.TopicCount++
		gd.QuestionCount += len(questions)
	}
	idx = &IndexDoc{
		ID:        fmt.Sprintf("%s_index", g.GetSlug()),
		GuideID:   gd.ID,
		ContentMD: jekyll.BuildQuestionsIndex(g),
		UpdatedAt: now,
	}
	return
}
