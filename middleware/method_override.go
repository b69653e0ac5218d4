package middleware

import (
	"net/http"
	"strings"
)

const overrideParam = "_method"

// MethodOverride rewrites a POST carrying a _method query or form field into
// the PUT or DELETE request the router expects, so plain HTML forms can reach
// those routes. It wraps the whole engine because the rewritten method has to
// take part in route matching.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.URL.Query().Get(overrideParam)
			if method == "" && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
				r.ParseForm()
				method = r.PostForm.Get(overrideParam)
			}
			switch strings.ToUpper(method) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
