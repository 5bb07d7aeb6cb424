package syncserver

import (
	"fmt"
	"net/http"
	"os"

	"github.com/androidprep/guideutil/config"
	"github.com/gorilla/handlers"
)

var Log = config.Cfg().GetLogger()
var CorsHandler = handlers.CORS(handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}), handlers.AllowCredentials(), handlers.AllowedHeaders([]string{"x-locale", "content-type", "access-control-request-headers", "access-control-request-method", "x-csrftoken"}), handlers.AllowedOrigins([]string{"*"}))

func ServeSync() {
	Log.Info("Starting guide sync HTTP server")
	err := http.ListenAndServe(fmt.Sprintf("%s:%s", config.Cfg().SyncServerAddr, config.Cfg().SyncServerPort), CorsHandler(handlers.CombinedLoggingHandler(os.Stdout, createRouter())))
	Log.Error(err)
	Log.Info("Stopped guide sync HTTP server")
}
