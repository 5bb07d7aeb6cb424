package syncserver

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/androidprep/guideutil/config"
	"github.com/androidprep/guideutil/dbmodels"
	"github.com/androidprep/guideutil/gitutils"
	"github.com/androidprep/guideutil/hookmodels"
	"github.com/androidprep/guideutil/jekyll"
	"github.com/androidprep/guideutil/smtputils"
	"github.com/exlinc/golang-utils/jsonhttp"
)

// repoPushEventWebhook regenerates the questions index whenever real commits
// land on the guide branch: clone, load, verify, rebuild QUESTIONS_INDEX.md,
// commit the result back and optionally push the guide into MongoDB.
func repoPushEventWebhook(w http.ResponseWriter, r *http.Request) {
	reqObj := hookmodels.RepoPushEventRequest{}
	err := hookmodels.SecureJSONDecodeAndCatchForAPI(w, r, config.Cfg().GHWebhookSecret, &reqObj)
	if err != nil {
		return
	}
	branchRef := "refs/heads/" + config.Cfg().GuideRepoBranch
	if reqObj.Ref != branchRef {
		Log.Info("Skipping push on ref: ", reqObj.Ref)
		jsonhttp.JSONSuccess(w, nil, fmt.Sprintf("No-op, must be %s branch to sync", config.Cfg().GuideRepoBranch))
		return
	}

	if len(reqObj.Commits) < 1 {
		Log.Info("Skipping. No commits")
		jsonhttp.JSONSuccess(w, nil, "No-op, must be commit-based")
		return
	}

	hasRealCommits := false
	for _, commit := range reqObj.Commits {
		if !strings.Contains(commit.Message, config.Cfg().GHAutoGenCommitMsg) {
			hasRealCommits = true
			break
		}
	}
	if !hasRealCommits {
		Log.Info("Skipping. Auto-gen commits only")
		jsonhttp.JSONSuccess(w, nil, "No-op, auto#gen commit")
		return
	}

	rootDir, err := ioutil.TempDir("", "guideutil-repo-dl-")
	if err != nil {
		Log.Error("An error occurred creating the temp directory: ", err)
		jsonhttp.JSONInternalError(w, "An error occurred creating the temp directory", "")
		return
	}
	defer os.RemoveAll(rootDir)

	err = gitutils.CloneRepo(reqObj.Repository.CloneURL, config.Cfg().GuideRepoBranch, rootDir)
	if err != nil {
		Log.Error("An error occurred cloning repo: ", err)
		notifyFailure(reqObj, "clone failed: "+err.Error())
		jsonhttp.JSONInternalError(w, "An error occurred cloning repo", "")
		return
	}

	guide, err := jekyll.NewJekyllFormat().Import(rootDir)
	if err != nil {
		Log.Error("An error occurred loading the guide: ", err)
		notifyFailure(reqObj, "guide load failed: "+err.Error())
		jsonhttp.JSONInternalError(w, "An error occurred loading the guide", "")
		return
	}

	if err = gitutils.SetDocTimestamps(rootDir, guide); err != nil {
		Log.Warn("Could not derive document timestamps from git log: ", err)
	}

	issues := jekyll.VerifyGuide(guide)
	for _, issue := range issues {
		if issue.Severity == jekyll.SeverityError {
			Log.Error(issue.String())
		} else {
			Log.Warn(issue.String())
		}
	}
	if jekyll.HasErrors(issues) {
		notifyFailure(reqObj, issuesSummary(issues))
		jsonhttp.JSONSuccess(w, nil, "Guide has verification errors, index not regenerated")
		return
	}

	indexPath := filepath.Join(rootDir, jekyll.IndexFileName)
	err = ioutil.WriteFile(indexPath, []byte(jekyll.BuildQuestionsIndex(guide)), 0644)
	if err != nil {
		Log.Error("An error occurred writing the questions index: ", err)
		jsonhttp.JSONInternalError(w, "An error occurred writing the questions index", "")
		return
	}

	changed, err := gitutils.IsRepoContentUpdated(rootDir)
	if err != nil {
		Log.Error("An error occurred checking the repo status: ", err)
		jsonhttp.JSONInternalError(w, "An error occurred checking the repo status", "")
		return
	}
	if changed {
		author := hookmodels.CommitAuthor{
			Name:  reqObj.Repository.Owner.Name,
			Email: reqObj.Repository.Owner.Email,
		}
		err = gitutils.CommitAndPush(rootDir, author, reqObj.Commits[0].ID)
		if err != nil {
			Log.Error("An error occurred pushing the regenerated index: ", err)
			notifyFailure(reqObj, "index push failed: "+err.Error())
			jsonhttp.JSONInternalError(w, "An error occurred pushing the regenerated index", "")
			return
		}
	}

	if config.Cfg().MgoURI != "" {
		err = dbmodels.PushGuide(guide, config.Cfg().MgoURI, config.Cfg().MgoDBName)
		if err != nil {
			Log.Error("An error occurred upserting the guide into MongoDB: ", err)
			notifyFailure(reqObj, "MongoDB upsert failed: "+err.Error())
			jsonhttp.JSONInternalError(w, "An error occurred upserting the guide", "")
			return
		}
	}

	jsonhttp.JSONSuccess(w, nil, "Guide synced")
}

func issuesSummary(issues []jekyll.Issue) string {
	var b strings.Builder
	for _, issue := range issues {
		b.WriteString(issue.String())
		b.WriteString("<br>")
	}
	return b.String()
}

func notifyFailure(reqObj hookmodels.RepoPushEventRequest, details string) {
	to := config.Cfg().NotifyEmail
	if to == "" {
		to = reqObj.Repository.Owner.Email
	}
	if to == "" {
		return
	}
	subject := fmt.Sprintf("Guide sync failed for %s", reqObj.Repository.FullName)
	_ = smtputils.SendEmail(to, subject, details)
}
