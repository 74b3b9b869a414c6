package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubtix/internal/models"
)

func TestListEvents(t *testing.T) {
	r, db, cfg := setupTest(t)
	createEvent(t, db, "published-show", models.EventStatusPublished)
	createEvent(t, db, "secret-draft", models.EventStatusDraft)
	admin := createUser(t, db, "admin@x.com", models.RoleAdmin)

	t.Run("anonymous sees only published", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/events", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := parseBody(t, w)
		events := body["events"].([]any)
		require.Len(t, events, 1)
		assert.Equal(t, "published-show", events[0].(map[string]any)["slug"])

		meta := body["pagination"].(map[string]any)
		assert.Equal(t, 1.0, meta["page"])
		assert.Equal(t, 20.0, meta["per_page"])
		assert.Equal(t, 1.0, meta["total"])
	})

	t.Run("admin sees drafts too", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/events", nil, map[string]string{
			"Authorization": authHeader(t, cfg, admin),
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, parseBody(t, w)["events"].([]any), 2)
	})

	t.Run("title search", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/events?q=published", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, parseBody(t, w)["events"].([]any), 1)
	})

	t.Run("per_page is clamped", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/events?per_page=500", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		meta := parseBody(t, w)["pagination"].(map[string]any)
		assert.Equal(t, 100.0, meta["per_page"])
	})
}

func TestListEventsPriceFilter(t *testing.T) {
	r, db, _ := setupTest(t)
	cheap := createEvent(t, db, "cheap-night", models.EventStatusPublished)
	pricey := createEvent(t, db, "gala-dinner", models.EventStatusPublished)
	createTicketType(t, db, cheap, 10.00, 50, 0)
	createTicketType(t, db, pricey, 120.00, 50, 0)

	w := performRequest(r, "GET", "/api/v1/events?min_price=50", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	events := parseBody(t, w)["events"].([]any)
	require.Len(t, events, 1)
	assert.Equal(t, "gala-dinner", events[0].(map[string]any)["slug"])
}

func TestGetEvent(t *testing.T) {
	r, db, cfg := setupTest(t)
	event := createEvent(t, db, "anniversary", models.EventStatusPublished)
	createTicketType(t, db, event, 25.00, 100, 0)
	inactive := createTicketType(t, db, event, 5.00, 10, 0)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	createEvent(t, db, "unreleased", models.EventStatusDraft)
	admin := createUser(t, db, "admin@x.com", models.RoleAdmin)

	t.Run("published event includes active ticket types only", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/events/anniversary", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := parseBody(t, w)
		assert.Equal(t, "anniversary", body["slug"])
		tickets := body["ticket_types"].([]any)
		require.Len(t, tickets, 1)
		tt := tickets[0].(map[string]any)
		assert.Equal(t, 25.0, tt["price"])
		assert.Equal(t, 100.0, tt["quantity_available"])
		assert.Equal(t, true, tt["is_available"])
	})

	t.Run("draft is hidden from anonymous", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/events/unreleased", nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("draft is visible to admin", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/events/unreleased", nil, map[string]string{
			"Authorization": authHeader(t, cfg, admin),
		})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown slug", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/events/nope", nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateEvent(t *testing.T) {
	r, db, cfg := setupTest(t)
	admin := createUser(t, db, "admin@x.com", models.RoleAdmin)
	user := createUser(t, db, "user@x.com", models.RoleUser)
	adminHeaders := map[string]string{"Authorization": authHeader(t, cfg, admin)}

	payload := map[string]any{
		"title":          "Winter Showcase 2026",
		"venue":          "Black Box",
		"start_datetime": "2026-12-05T19:00:00Z",
	}

	t.Run("anonymous is rejected", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/v1/events", payload, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/v1/events", payload, map[string]string{
			"Authorization": authHeader(t, cfg, user),
		})
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("slug derived from title, status defaults to draft", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/v1/events", payload, adminHeaders)

		require.Equal(t, http.StatusCreated, w.Code)
		body := parseBody(t, w)
		assert.Equal(t, "winter-showcase-2026", body["slug"])
		assert.Equal(t, "draft", body["status"])
	})

	t.Run("duplicate slug", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/v1/events", payload, adminHeaders)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Event slug already exists", parseBody(t, w)["error"])
	})

	t.Run("missing title fails validation", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/v1/events", map[string]any{
			"venue": "Nowhere",
		}, adminHeaders)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, parseBody(t, w)["details"], "title")
	})
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	r, db, cfg := setupTest(t)
	admin := createUser(t, db, "admin@x.com", models.RoleAdmin)
	adminHeaders := map[string]string{"Authorization": authHeader(t, cfg, admin)}
	event := createEvent(t, db, "mutable", models.EventStatusDraft)

	t.Run("partial update publishes without touching other fields", func(t *testing.T) {
		w := performRequest(r, "PUT", "/api/v1/events/"+event.ID.String(), map[string]any{
			"status": "published",
		}, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		body := parseBody(t, w)
		assert.Equal(t, "published", body["status"])
		assert.Equal(t, "Event mutable", body["title"])
	})

	t.Run("delete", func(t *testing.T) {
		w := performRequest(r, "DELETE", "/api/v1/events/"+event.ID.String(), nil, adminHeaders)
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		db.Model(&models.Event{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("update of missing event", func(t *testing.T) {
		w := performRequest(r, "PUT", "/api/v1/events/"+event.ID.String(), map[string]any{
			"title": "gone",
		}, adminHeaders)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
