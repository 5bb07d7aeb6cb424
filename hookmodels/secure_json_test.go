package hookmodels

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return fmt.Sprintf("%x", mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/master"}`)
	sig := signBody(body, "s3cret")
	assert.True(t, VerifySignature(body, "s3cret", sig))
	assert.False(t, VerifySignature(body, "wrong", sig))
	assert.False(t, VerifySignature([]byte("tampered"), "s3cret", sig))
}

func TestSecureJSONDecode(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/master","repository":{"name":"guide","clone_url":"https://example.com/guide.git"},"commits":[{"id":"abc123","message":"edit"}]}`)
	req := httptest.NewRequest("POST", "/v1/github/repo-push-event", bytes.NewReader(body))
	req.Header.Set("X-Hub-Signature", "sha1="+signBody(body, "s3cret"))
	w := httptest.NewRecorder()

	out := RepoPushEventRequest{}
	err := SecureJSONDecodeAndCatchForAPI(w, req, "s3cret", &out)
	assert.NoError(t, err)
	assert.Equal(t, "refs/heads/master", out.Ref)
	assert.Equal(t, "guide", out.Repository.Name)
	assert.Len(t, out.Commits, 1)
	assert.Equal(t, "abc123", out.Commits[0].ID)
}

func TestSecureJSONDecode_BadSignature(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/master"}`)
	req := httptest.NewRequest("POST", "/v1/github/repo-push-event", bytes.NewReader(body))
	req.Header.Set("X-Hub-Signature", "sha1="+signBody(body, "other-secret"))
	w := httptest.NewRecorder()

	out := RepoPushEventRequest{}
	err := SecureJSONDecodeAndCatchForAPI(w, req, "s3cret", &out)
	assert.Error(t, err)
	assert.NotEqual(t, http.StatusOK, w.Code)
}

func TestSecureJSONDecode_MissingSignature(t *testing.T) {
	req := httptest.NewRequest("POST", "/v1/github/repo-push-event", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()

	out := RepoPushEventRequest{}
	err := SecureJSONDecodeAndCatchForAPI(w, req, "s3cret", &out)
	assert.Error(t, err)
}
