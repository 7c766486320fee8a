package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/controllers"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/graph"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/repositories"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/routes"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/router"
)

// apiApp drives the JSON surface. It seeds one shopkeeper with a
// two-item catalogue.
type apiApp struct {
	t       *testing.T
	handler http.Handler
}

func newAPIApp(t *testing.T) *apiApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Shopkeeper{}, &models.Listing{}, &models.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	shopkeepers := repositories.NewShopkeeperRepository(db)
	listings := repositories.NewListingRepository(db)

	authService := services.NewAuthService(shopkeepers)
	listingService := services.NewListingService(listings)

	sk, err := authService.Signup(context.Background(), services.SignupInput{
		Name: "Saurav Mehta", Email: "saurav@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("seed shopkeeper: %v", err)
	}
	for _, in := range []services.ListingInput{
		{Name: "LED Bulb", Category: "Lighting", CostPrice: 100, SellingPrice: 150},
		{Name: "Table Fan", Category: "Appliances", CostPrice: 1100, SellingPrice: 1550},
	} {
		if _, errs, err := listingService.Create(sk.ID, in); err != nil || len(errs) > 0 {
			t.Fatalf("seed listing: %v %v", err, errs)
		}
	}

	schema, err := graph.NewSchema(listingService)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	r := router.New()
	routes.RegisterAPI(r, controllers.NewAPIController(authService, listingService, schema))
	return &apiApp{t: t, handler: r.Handler()}
}

func (a *apiApp) post(target, token, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *apiApp) get(target, token string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// login exchanges the seeded credentials for a token.
func (a *apiApp) login(t *testing.T) string {
	t.Helper()
	rec := a.post("/api/login", "", `{"email":"saurav@example.com","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if out.Data.Token == "" {
		t.Fatal("empty token")
	}
	return out.Data.Token
}

func TestAPILoginRejectsBadCredentials(t *testing.T) {
	app := newAPIApp(t)
	rec := app.post("/api/login", "", `{"email":"saurav@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login = %d, want 401", rec.Code)
	}
}

func TestAPIListingsRequireToken(t *testing.T) {
	app := newAPIApp(t)

	if rec := app.get("/api/listings", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token = %d, want 401", rec.Code)
	}
	if rec := app.get("/api/listings", "garbage"); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token = %d, want 401", rec.Code)
	}
}

func TestAPIListings(t *testing.T) {
	app := newAPIApp(t)
	token := app.login(t)

	rec := app.get("/api/listings", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("listings = %d: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Data []models.Listing `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Data) != 2 {
		t.Errorf("listings = %d, want 2", len(out.Data))
	}
}

func TestGraphQLQueries(t *testing.T) {
	app := newAPIApp(t)
	token := app.login(t)

	rec := app.post("/api/graphql", token, `{"query":"{ categories }"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("graphql = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Lighting") || !strings.Contains(body, "Appliances") {
		t.Errorf("categories missing: %s", body)
	}

	rec = app.post("/api/graphql", token, `{"query":"{ listings(category: \"Lighting\") { name selling_price } }"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("graphql = %d: %s", rec.Code, rec.Body.String())
	}
	body = rec.Body.String()
	if !strings.Contains(body, "LED Bulb") {
		t.Errorf("filtered listings missing item: %s", body)
	}
	if strings.Contains(body, "Table Fan") {
		t.Errorf("filter leaked other category: %s", body)
	}
}

func TestGraphQLBadQuery(t *testing.T) {
	app := newAPIApp(t)
	token := app.login(t)

	rec := app.post("/api/graphql", token, `{"query":"{ nope }"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad query = %d, want 400", rec.Code)
	}
}
