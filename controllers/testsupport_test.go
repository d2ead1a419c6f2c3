package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Engel1110/gaming-room-cust/controllers"
	"github.com/Engel1110/gaming-room-cust/middleware"
	"github.com/Engel1110/gaming-room-cust/models"
	"github.com/Engel1110/gaming-room-cust/routes"
	"github.com/Engel1110/gaming-room-cust/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// In-memory fakes standing in for postgres and redis. They honor the same
// error contracts as the real repositories (gorm.ErrRecordNotFound, unique
// usernames).

type memUserRepo struct {
	byUsername map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, ok := r.byUsername[user.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	cp := *user
	r.byUsername[user.Username] = &cp
	return nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := r.byUsername[username]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memCartRepo struct {
	lines  []models.CartLine
	nextID uint
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{nextID: 1}
}

func (r *memCartRepo) Create(ctx context.Context, line *models.CartLine) error {
	line.ID = r.nextID
	r.nextID++
	r.lines = append(r.lines, *line)
	return nil
}

func (r *memCartRepo) FindByID(ctx context.Context, id uint) (*models.CartLine, error) {
	for _, l := range r.lines {
		if l.ID == id {
			cp := l
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCartRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.CartLine, error) {
	var out []models.CartLine
	for _, l := range r.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memCartRepo) Delete(ctx context.Context, id uint) error {
	for i, l := range r.lines {
		if l.ID == id {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

type memSessionStore struct {
	sessions map[string]string
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]string)}
}

func (s *memSessionStore) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	s.sessions[sessionID] = userID
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	return s.sessions[sessionID], nil
}

func (s *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

// testApp wires the real services and router over the in-memory fakes.
type testApp struct {
	router *gin.Engine
	users  *memUserRepo
	carts  *memCartRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMemUserRepo()
	carts := newMemCartRepo()

	authService := services.NewAuthService(users, zap.NewNop())
	sessionService := services.NewSessionService(newMemSessionStore(), "test-secret", time.Hour)
	cartService := services.NewCartService(carts, zap.NewNop())
	catalogService := services.NewCatalogService()

	r := gin.New()
	routes.Register(r,
		controllers.NewAuthController(authService, sessionService),
		controllers.NewCartController(cartService),
		controllers.NewCatalogController(catalogService),
		sessionService,
	)

	return &testApp{router: r, users: users, carts: carts}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func formPost(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func credentials(username, password string) url.Values {
	return url.Values{"username": {username}, "password": {password}}
}

// register creates an account and asserts the redirect to login.
func (a *testApp) register(t *testing.T, username, password string) {
	t.Helper()
	w := a.do(formPost("/register", credentials(username, password)))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

// login authenticates and returns the session cookie.
func (a *testApp) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	w := a.do(formPost("/login", credentials(username, password)))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set on login")
	return nil
}
