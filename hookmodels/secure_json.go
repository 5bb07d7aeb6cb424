package hookmodels

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/exlinc/golang-utils/jsonhttp"
	"github.com/pkg/errors"
)

// SecureJSONDecodeAndCatchForAPI verifies the X-Hub-Signature HMAC of a
// webhook delivery against hubSecret and decodes the payload into outStruct.
// On any failure it has already written the API error response; callers just
// return.
func SecureJSONDecodeAndCatchForAPI(w http.ResponseWriter, r *http.Request, hubSecret string, outStruct interface{}) error {
	buf := bytes.Buffer{}
	buf.ReadFrom(r.Body)
	reqBody := buf.Bytes()
	icSig := r.Header.Get("X-Hub-Signature")
	if icSig == "" || !strings.HasPrefix(icSig, "sha1=") {
		jsonhttp.JSONForbiddenError(w, "Missing request signature", "")
		return errors.New("missing signature")
	}
	icSig = strings.Replace(icSig, "sha1=", "", 1)
	if !VerifySignature(reqBody, hubSecret, icSig) {
		jsonhttp.JSONForbiddenError(w, "Invalid request signature", "")
		return errors.New("invalid signature")
	}
	err := json.Unmarshal(reqBody, &outStruct)
	if err != nil {
		jsonhttp.JSONBadRequestError(w, "Invalid JSON", "")
		return err
	}
	return nil
}

// VerifySignature checks a hex-encoded HMAC-SHA1 signature over body using
// constant-time comparison.
func VerifySignature(body []byte, secret, signature string) bool {
	computedSignatureHMAC := hmac.New(sha1.New, []byte(secret))
	computedSignatureHMAC.Write(body)
	computedSig := fmt.Sprintf("%x", computedSignatureHMAC.Sum(nil))
	return hmac.Equal([]byte(computedSig), []byte(signature))
}
