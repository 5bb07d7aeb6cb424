package syncserver

import (
	"net/http"

	"github.com/exlinc/golang-utils/jsonhttp"
)

func index(w http.ResponseWriter, r *http.Request) {
	jsonhttp.JSONSuccess(w, nil, "Server healthy")
}
