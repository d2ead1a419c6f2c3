package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Engel1110/gaming-room-cust/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_ListsCatalog(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "alice", "pw1")
	cookie := app.login(t, "alice", "pw1")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	w := app.do(req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.CatalogItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 8)
	assert.Equal(t, "Gaming Chair", resp.Items[0].Name)
	assert.Equal(t, 100.0, resp.Items[0].Variants[0].Price)
}
