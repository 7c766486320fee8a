package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride rewrites POST requests carrying a _method form field
// into the verb that field names. HTML forms cannot submit DELETE or
// PUT directly, so templates post with a hidden _method input instead.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			ct := r.Header.Get("Content-Type")
			if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
				if err := r.ParseMultipartForm(32 << 20); err != nil {
					// fall back for urlencoded bodies
					_ = r.ParseForm()
				}
				switch strings.ToUpper(r.FormValue("_method")) {
				case http.MethodDelete:
					r.Method = http.MethodDelete
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodPatch:
					r.Method = http.MethodPatch
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
