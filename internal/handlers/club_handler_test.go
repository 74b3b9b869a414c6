package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubtix/internal/models"
)

func TestClubInfo(t *testing.T) {
	r, db, cfg := setupTest(t)
	admin := createUser(t, db, "admin@x.com", models.RoleAdmin)
	user := createUser(t, db, "member@x.com", models.RoleUser)
	adminHeaders := map[string]string{"Authorization": authHeader(t, cfg, admin)}

	t.Run("first read creates the singleton", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/club", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, parseBody(t, w)["id"])

		var count int64
		db.Model(&models.ClubInfo{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("admin updates fields in place", func(t *testing.T) {
		w := performRequest(r, "PUT", "/api/v1/club", map[string]any{
			"name":          "Riverside Dance Club",
			"instagram_url": "https://instagram.com/riverside",
		}, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Riverside Dance Club", parseBody(t, w)["name"])

		var count int64
		db.Model(&models.ClubInfo{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("update is admin only", func(t *testing.T) {
		w := performRequest(r, "PUT", "/api/v1/club", map[string]any{
			"name": "Hijacked",
		}, map[string]string{"Authorization": authHeader(t, cfg, user)})
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("social endpoints echo the configured urls", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/social/instagram", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := parseBody(t, w)
		assert.Equal(t, "https://instagram.com/riverside", body["url"])
		assert.Equal(t, "https://instagram.com/riverside", body["embed_url"])
	})
}
