package controllers_test

import (
	"bytes"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/controllers"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/repositories"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/routes"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/views"
	"github.com/Saurav-S-Mehta-07/RetailEdge/config"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/middleware"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/router"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/session"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/storage"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/ws"
)

// testApp drives the full HTML surface through the router, carrying
// cookies across requests like a browser would.
type testApp struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
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

	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	shopkeepers := repositories.NewShopkeeperRepository(db)
	listings := repositories.NewListingRepository(db)
	orders := repositories.NewOrderRepository(db)

	authService := services.NewAuthService(shopkeepers)
	listingService := services.NewListingService(listings)
	orderService := services.NewOrderService(orders, listings)

	r := router.New()
	r.Use(session.Middleware(session.NewMemoryStore(), session.DefaultOptions()))
	r.Use(middleware.MethodOverride)
	routes.RegisterWeb(r, routes.WebControllers{
		Auth:      controllers.NewAuthController(authService, authService, renderer),
		Listing:   controllers.NewListingController(listingService, renderer),
		Category:  controllers.NewCategoryController(listingService, renderer),
		Order:     controllers.NewOrderController(orderService, listingService, renderer),
		Dashboard: controllers.NewDashboardController(authService, listingService, services.NewSyntheticMetrics(), renderer, ws.NewHub()),
	})

	return &testApp{t: t, handler: r.Handler(), cookies: make(map[string]*http.Cookie)}
}

func (a *testApp) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	a.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(a.cookies, c.Name)
			continue
		}
		a.cookies[c.Name] = c
	}
	return rec
}

func (a *testApp) get(target string) *httptest.ResponseRecorder {
	return a.do(http.MethodGet, target, nil)
}

func (a *testApp) post(target string, form url.Values) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, target, form)
}

// signup registers and logs in a shopkeeper in one request.
func (a *testApp) signup(email string) {
	a.t.Helper()
	rec := a.post("/signup", url.Values{
		"name":     {"Saurav Mehta"},
		"email":    {email},
		"password": {"secret123"},
		"phone":    {"9876543210"},
		"shopname": {"Mehta Electronics"},
		"location": {"Rajpur Road"},
		"city":     {"Dehradun"},
	})
	if loc := rec.Header().Get("Location"); loc != "/main" {
		a.t.Fatalf("signup redirect = %q, want /main", loc)
	}
}

// addItem creates a listing through the form endpoint.
func (a *testApp) addItem(name, category string) {
	a.t.Helper()
	rec := a.post("/main", url.Values{
		"name":          {name},
		"category":      {category},
		"cost_price":    {"100"},
		"selling_price": {"150"},
		"stock":         {"10"},
	})
	if loc := rec.Header().Get("Location"); loc != "/main" {
		a.t.Fatalf("add item redirect = %q, want /main", loc)
	}
}

// itemID extracts the first listing id from the index page.
func (a *testApp) itemID(name string) string {
	a.t.Helper()
	body := a.get("/main").Body.String()
	idx := strings.Index(body, ">"+name+"<")
	if idx < 0 {
		a.t.Fatalf("item %q not on index page", name)
	}
	start := strings.LastIndex(body[:idx], "/main/show/")
	if start < 0 {
		a.t.Fatalf("no show link for %q", name)
	}
	rest := body[start+len("/main/show/"):]
	return rest[:strings.IndexAny(rest, `"`)]
}

func TestProtectedRoutesRedirect(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/main", "/main/categories", "/main/dashboard", "/main/order", "/addlist", "/main/show/1"} {
		rec := app.get(target)
		if rec.Code != http.StatusFound {
			t.Errorf("GET %s = %d, want 302", target, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Errorf("GET %s redirects to %q, want /", target, loc)
		}
	}
}

func TestSignupLogsStraightIn(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")

	rec := app.get("/main")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /main = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Mehta Electronics") {
		t.Error("index page missing shop name")
	}
}

func TestSignupDuplicateEmailRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.get("/logout")

	rec := app.post("/signup", url.Values{
		"name":     {"Someone Else"},
		"email":    {"saurav@example.com"},
		"password": {"secret123"},
	})
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("duplicate signup redirect = %q, want /", loc)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.get("/logout")

	rec := app.post("/login", url.Values{
		"email":    {"saurav@example.com"},
		"password": {"wrong"},
	})
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("bad login redirect = %q, want /", loc)
	}

	if rec := app.get("/main"); rec.Header().Get("Location") != "/" {
		t.Error("bad login must not create an authenticated session")
	}
}

func TestLoginLogoutCycle(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.get("/logout")

	rec := app.post("/login", url.Values{
		"email":    {"saurav@example.com"},
		"password": {"secret123"},
	})
	if loc := rec.Header().Get("Location"); loc != "/main" {
		t.Fatalf("login redirect = %q, want /main", loc)
	}
	if rec := app.get("/main"); rec.Code != http.StatusOK {
		t.Fatalf("GET /main after login = %d", rec.Code)
	}

	app.get("/logout")
	if rec := app.get("/main"); rec.Header().Get("Location") != "/" {
		t.Error("session survives logout")
	}
}

func TestGuestPagesPushAuthenticatedUsersAway(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")

	for _, target := range []string{"/", "/signup"} {
		rec := app.get(target)
		if loc := rec.Header().Get("Location"); loc != "/main" {
			t.Errorf("GET %s redirect = %q, want /main", target, loc)
		}
	}
}

func TestCreateListingFlow(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.addItem("LED Bulb", "Lighting")

	body := app.get("/main").Body.String()
	if !strings.Contains(body, "LED Bulb") {
		t.Error("index page missing new item")
	}
	if !strings.Contains(body, "Lighting") {
		t.Error("index page missing category")
	}
}

func TestCreateListingMissingFields(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")

	rec := app.post("/main", url.Values{"brand": {"Acme"}})
	if loc := rec.Header().Get("Location"); loc != "/addlist" {
		t.Errorf("invalid create redirect = %q, want /addlist", loc)
	}
}

func TestCreateListingInvalidFormKeepsStorageClean(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")

	root := t.TempDir()
	config.Set("STORAGE_DISK", "local")
	config.Set("STORAGE_LOCAL_ROOT", root)
	config.Set("STORAGE_URL", "http://localhost:8080/storage")
	storage.Connect()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("brand", "Acme")
	part, err := mw.CreateFormFile("image", "photo.jpg")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	part.Write([]byte("image-bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/main", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range app.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/addlist" {
		t.Fatalf("invalid create redirect = %q, want /addlist", loc)
	}

	// The rejected form must not leave the uploaded image behind.
	var stored []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			stored = append(stored, path)
		}
		return nil
	})
	if len(stored) != 0 {
		t.Errorf("storage not empty after rejected form: %v", stored)
	}
}

func TestShowAndEditPages(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.addItem("LED Bulb", "Lighting")
	id := app.itemID("LED Bulb")

	if rec := app.get("/main/show/" + id); rec.Code != http.StatusOK {
		t.Errorf("GET show = %d", rec.Code)
	}
	if rec := app.get("/main/edit/" + id); rec.Code != http.StatusOK {
		t.Errorf("GET edit = %d", rec.Code)
	}
	if rec := app.get("/main/edit/9999"); rec.Code != http.StatusNotFound {
		t.Errorf("GET edit missing = %d, want 404", rec.Code)
	}
}

func TestUpdateListing(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.addItem("LED Bulb", "Lighting")
	id := app.itemID("LED Bulb")

	rec := app.post("/main/show/"+id, url.Values{
		"name":          {"Smart Bulb"},
		"category":      {"Lighting"},
		"cost_price":    {"120"},
		"selling_price": {"199"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update = %d, want rendered show page", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Smart Bulb") {
		t.Error("show page missing updated name")
	}
	if !strings.Contains(rec.Body.String(), "Item updated successfully!") {
		t.Error("show page missing flash")
	}
}

func TestDeleteListingViaMethodOverride(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.addItem("LED Bulb", "Lighting")
	id := app.itemID("LED Bulb")

	rec := app.post("/main/"+id, url.Values{"_method": {"DELETE"}})
	if loc := rec.Header().Get("Location"); loc != "/main" {
		t.Fatalf("delete redirect = %q, want /main", loc)
	}
	if strings.Contains(app.get("/main").Body.String(), "LED Bulb") {
		t.Error("item still on index after delete")
	}
}

func TestDeleteForeignListingIs404(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.addItem("LED Bulb", "Lighting")
	id := app.itemID("LED Bulb")
	app.get("/logout")

	app.signup("aditi@example.com")
	rec := app.post("/main/"+id, url.Values{"_method": {"DELETE"}})
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign delete = %d, want 404", rec.Code)
	}
}

func TestBuyItemFlow(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.addItem("LED Bulb", "Lighting")
	id := app.itemID("LED Bulb")

	if rec := app.get("/buyItem/" + id); rec.Code != http.StatusOK {
		t.Fatalf("GET buy page = %d", rec.Code)
	}

	rec := app.post("/buyItem/"+id, url.Values{"quantity": {"2"}})
	if loc := rec.Header().Get("Location"); loc != "/main/show/"+id {
		t.Fatalf("buy redirect = %q, want /main/show/%s", loc, id)
	}

	body := app.get("/main/order").Body.String()
	if !strings.Contains(body, "LED Bulb") {
		t.Error("order page missing purchased item")
	}
}

func TestBuyItemRejectsZeroQuantity(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.addItem("LED Bulb", "Lighting")
	id := app.itemID("LED Bulb")

	rec := app.post("/buyItem/"+id, url.Values{"quantity": {"0"}})
	if loc := rec.Header().Get("Location"); loc != "/buyItem/"+id {
		t.Errorf("zero quantity redirect = %q, want /buyItem/%s", loc, id)
	}
}

func TestDeleteOrder(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.addItem("LED Bulb", "Lighting")
	id := app.itemID("LED Bulb")
	app.post("/buyItem/"+id, url.Values{"quantity": {"1"}})

	body := app.get("/main/order").Body.String()
	start := strings.Index(body, "/main/order/")
	if start < 0 {
		t.Fatal("no delete form on order page")
	}
	rest := body[start+len("/main/order/"):]
	orderID := rest[:strings.IndexAny(rest, `"`)]

	rec := app.post("/main/order/"+orderID, url.Values{"_method": {"DELETE"}})
	if loc := rec.Header().Get("Location"); loc != "/main/order" {
		t.Fatalf("order delete redirect = %q", loc)
	}
	if !strings.Contains(app.get("/main/order").Body.String(), "No orders yet.") {
		t.Error("order still listed after delete")
	}
}

func TestCategoryFilter(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")
	app.addItem("LED Bulb", "Lighting")
	app.addItem("Table Fan", "Appliances")

	body := app.get("/main/categories?q=Lighting").Body.String()
	if !strings.Contains(body, "LED Bulb") {
		t.Error("filtered page missing matching item")
	}
	if strings.Contains(body, "Table Fan") {
		t.Error("filtered page shows item from another category")
	}

	body = app.get("/main/categories").Body.String()
	if !strings.Contains(body, "LED Bulb") || !strings.Contains(body, "Table Fan") {
		t.Error("unfiltered page should show every item")
	}
}

func TestDashboardRenders(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")

	rec := app.get("/main/dashboard")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET dashboard = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Demo Product 1") {
		t.Error("dashboard missing top sellers")
	}
}

func TestFlashShownOnceAfterLogin(t *testing.T) {
	app := newTestApp(t)
	app.signup("saurav@example.com")

	first := app.get("/main").Body.String()
	if !strings.Contains(first, "Welcome, Saurav Mehta!") {
		t.Error("first page load missing welcome flash")
	}
	second := app.get("/main").Body.String()
	if strings.Contains(second, "Welcome, Saurav Mehta!") {
		t.Error("flash shown twice")
	}
}
