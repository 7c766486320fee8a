package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/main/show/{id}", "listing.show", ok)

	path, found := r.Path("listing.show")
	if !found || path != "/main/show/{id}" {
		t.Errorf("Path = %q, %v", path, found)
	}

	url, err := r.URL("listing.show", map[string]string{"id": "7"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/main/show/7" {
		t.Errorf("URL = %q", url)
	}

	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route name")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var guarded bool
	guard := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			guarded = true
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	g := r.Group("/main", guard)
	g.Get("/order", "order.index", ok)

	req := httptest.NewRequest(http.MethodGet, "/main/order", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !guarded {
		t.Error("group middleware did not run")
	}
}

func TestRoutesTable(t *testing.T) {
	r := router.New()
	r.Get("/", "auth.login_page", ok)
	r.Post("/login", "auth.login", ok)

	routes := r.Routes()
	if len(routes) != 2 {
		t.Fatalf("routes = %d, want 2", len(routes))
	}
	names := map[string]bool{}
	for _, ri := range routes {
		names[ri.Name] = true
	}
	if !names["auth.login_page"] || !names["auth.login"] {
		t.Errorf("route names = %v", names)
	}
}
