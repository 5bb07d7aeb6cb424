package gitutils

import (
	"path/filepath"
	"time"

	"github.com/androidprep/guideutil/config"
	"github.com/androidprep/guideutil/hookmodels"
	"github.com/androidprep/guideutil/ir"
	git "gopkg.in/src-d/go-git.v4"
	"gopkg.in/src-d/go-git.v4/plumbing"
	"gopkg.in/src-d/go-git.v4/plumbing/object"
	"gopkg.in/src-d/go-git.v4/plumbing/transport/http"
	"gopkg.in/src-d/go-git.v4/storage/memory"
)

var Log = config.Cfg().GetLogger()

func CloneRepo(cloneURL, branch, targetDir string) (err error) {
	cloneRef := plumbing.NewBranchReferenceName(branch)
	Log.Infof("Cloning repo %s ref %s into %s", cloneURL, cloneRef, targetDir)
	_, err = git.PlainClone(targetDir, false, &git.CloneOptions{
		URL:               cloneURL,
		ReferenceName:     cloneRef,
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
		SingleBranch:      true,
	})
	return err
}

func CloneRepoMem(cloneURL, branch string) (r *git.Repository, err error) {
	cloneRef := plumbing.NewBranchReferenceName(branch)
	Log.Infof("Cloning repo %s ref %s into memory", cloneURL, cloneRef)
	r, err = git.Clone(memory.NewStorage(), nil, &git.CloneOptions{
		URL:               cloneURL,
		ReferenceName:     cloneRef,
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
		SingleBranch:      true,
	})
	return r, err
}

// IsRepoContentUpdated stages any working tree changes and reports whether
// there was anything to stage.
func IsRepoContentUpdated(repoPath string) (contentChanged bool, err error) {
	Log.Debug("In IsRepoContentUpdated")

	r, err := git.PlainOpen(repoPath)
	if err != nil {
		Log.Error("Local Git Repo Open Issue ", err)
		return false, err
	}

	w, err := r.Worktree()
	if err != nil {
		Log.Error("Local Git Repo Worktree Issue ", err)
		return false, err
	}

	status, err := w.Status()
	if err != nil {
		Log.Error("Local Git Repo Worktree Status Issue ", err)
		return false, err
	}

	if status.IsClean() {
		Log.Info("No changes to Git Repo content")
		return false, nil
	}

	for k := range status {
		Log.Debug("Adding File ", k)
		_, err = w.Add(k)
		if err != nil {
			Log.Error("Local Git Repo Add File Issue ", err)
			return true, err
		}
	}

	return true, nil
}

func CommitAndPush(repoPath string, author hookmodels.CommitAuthor, triggerCommit string) (err error) {
	r, err := git.PlainOpen(repoPath)
	if err != nil {
		Log.Error("Local Git Repo Open Issue ", err)
		return err
	}

	w, err := r.Worktree()
	if err != nil {
		Log.Error("Local Git Repo Worktree Issue ", err)
		return err
	}

	autoGenCommitMsg := config.Cfg().GHAutoGenCommitMsg + "_" + SubstringFirstN(triggerCommit, 7)

	commit, err := w.Commit(autoGenCommitMsg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author.Name,
			Email: author.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		Log.Error("Local Git Repo Commit Issue ", err)
		return err
	}

	Log.Info("Generated auto Commit ", commit)
	err = r.Push(&git.PushOptions{Auth: &http.BasicAuth{
		Username: "abc123", // anything except an empty string
		Password: config.Cfg().GHUserToken,
	}})

	return err
}

// SetDocTimestamps stamps each document with the author time of the newest
// commit touching its file.
func SetDocTimestamps(repoPath string, g ir.Guide) (err error) {
	Log.Debug("In SetDocTimestamps")
	r, err := git.PlainOpen(repoPath)
	if err != nil {
		Log.Errorf("Local Git Repo Issue %v", err)
		return err
	}

	for _, doc := range g.GetDocuments() {
		if doc.GetFSPath() == "" {
			continue
		}
		fileName, err := filepath.Rel(repoPath, doc.GetFSPath())
		if err != nil {
			continue
		}
		Log.Debugf("Local Git File %s", fileName)
		commitsIter, err := r.Log(&git.LogOptions{FileName: &fileName, Order: git.LogOrderCommitterTime})
		if err != nil {
			Log.Errorf("Local Git Commits Issue for %s %v", fileName, err)
			return err
		}
		commit, err := commitsIter.Next()
		commitsIter.Close()
		if err != nil {
			continue
		}
		if !commit.Author.When.IsZero() {
			doc.SetUpdatedAt(commit.Author.When)
		}
	}

	return
}

func SubstringFirstN(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}
