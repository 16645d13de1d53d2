package content

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	contentsvc "tmf-backend/internal/application/content"
	"tmf-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContentTest(t *testing.T) (*fiber.App, *Handlers, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Announcement{},
		&domain.Blog{},
		&domain.Program{},
		&domain.Internship{},
	))
	return fiber.New(), &Handlers{Service: &contentsvc.Service{DB: db}}, db
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestBlogLifecycle_DraftUntilPublished(t *testing.T) {
	app, h, _ := setupContentTest(t)
	app.Post("/blogs", h.CreateBlog)
	app.Get("/blogs/published", h.PublicBlogs)
	app.Patch("/blogs/:id/publish", h.PublishBlog)
	app.Patch("/blogs/:id/unpublish", h.UnpublishBlog)

	req := httptest.NewRequest("POST", "/blogs", jsonBody(t, fiber.Map{
		"title":   "Annual Report 2026",
		"content": "This year the foundation reached 40 villages.",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var created struct {
		Data struct {
			Blog domain.Blog `json:"blog"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, domain.StatusDraft, created.Data.Blog.Status)
	assert.Equal(t, "General", created.Data.Blog.Category)

	// Draft is invisible on the public feed.
	resp, err = app.Test(httptest.NewRequest("GET", "/blogs/published", nil))
	require.NoError(t, err)
	var feed struct {
		Data struct {
			Blogs []domain.Blog `json:"blogs"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	assert.Empty(t, feed.Data.Blogs)

	// Publish, then it appears.
	id := created.Data.Blog.ID.String()
	resp, err = app.Test(httptest.NewRequest("PATCH", "/blogs/"+id+"/publish", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/blogs/published", nil))
	require.NoError(t, err)
	feed.Data.Blogs = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	require.Len(t, feed.Data.Blogs, 1)
	assert.Equal(t, "Annual Report 2026", feed.Data.Blogs[0].Title)

	// Unpublish pulls it back off the feed.
	resp, err = app.Test(httptest.NewRequest("PATCH", "/blogs/"+id+"/unpublish", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/blogs/published", nil))
	require.NoError(t, err)
	feed.Data.Blogs = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	assert.Empty(t, feed.Data.Blogs)
}

func TestCreateBlog_RequiresTitleAndContent(t *testing.T) {
	app, h, _ := setupContentTest(t)
	app.Post("/blogs", h.CreateBlog)

	req := httptest.NewRequest("POST", "/blogs", jsonBody(t, fiber.Map{"title": "No body"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestPublishBlog_UnknownID(t *testing.T) {
	app, h, _ := setupContentTest(t)
	app.Patch("/blogs/:id/publish", h.PublishBlog)

	resp, err := app.Test(httptest.NewRequest("PATCH", "/blogs/"+uuid.NewString()+"/publish", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestPublicAnnouncements_FiltersByVisibility(t *testing.T) {
	app, h, db := setupContentTest(t)
	app.Get("/announcements/published", h.PublicAnnouncements)

	seed := []domain.Announcement{
		{Title: "Home banner", Message: "On the home page", Visibility: "home", Status: domain.StatusPublished},
		{Title: "Donate page note", Message: "On the donate page", Visibility: "donate", Status: domain.StatusPublished},
		{Title: "Unpublished", Message: "Hidden", Visibility: "home", Status: domain.StatusDraft},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/announcements/published?visibility=home", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data struct {
			Announcements []domain.Announcement `json:"announcements"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Announcements, 1)
	assert.Equal(t, "Home banner", body.Data.Announcements[0].Title)
}

func TestUpdateBlog_KeepsStatus(t *testing.T) {
	app, h, db := setupContentTest(t)
	app.Put("/blogs/:id", h.UpdateBlog)

	blog := domain.Blog{Title: "Old title", Category: "News", Content: "Old body", Status: domain.StatusPublished}
	require.NoError(t, db.Create(&blog).Error)

	req := httptest.NewRequest("PUT", "/blogs/"+blog.ID.String(), jsonBody(t, fiber.Map{
		"title":   "New title",
		"content": "New body",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var updated domain.Blog
	require.NoError(t, db.First(&updated, "id = ?", blog.ID).Error)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "News", updated.Category)
	assert.Equal(t, domain.StatusPublished, updated.Status)
}

func TestDeleteBlog(t *testing.T) {
	app, h, db := setupContentTest(t)
	app.Delete("/blogs/:id", h.DeleteBlog)

	blog := domain.Blog{Title: "Gone soon", Content: "Body"}
	require.NoError(t, db.Create(&blog).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/blogs/"+blog.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&domain.Blog{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
