package middleware

import "net/http"

// allowedMethods covers every verb the portal routes register.
const allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"

// CORSMiddleware answers preflight requests and stamps the CORS headers on
// every response. The portals are served from separate origins, so the
// policy is intentionally open.
type CORSMiddleware struct{}

func NewCORSMiddleware() *CORSMiddleware {
	return &CORSMiddleware{}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
