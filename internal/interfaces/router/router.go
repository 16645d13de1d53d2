package router

import (
	"net/http"
	"time"

	adminsvc "tmf-backend/internal/application/admin"
	authsvc "tmf-backend/internal/application/auth"
	certsvc "tmf-backend/internal/application/certificates"
	contactsvc "tmf-backend/internal/application/contact"
	contentsvc "tmf-backend/internal/application/content"
	dashsvc "tmf-backend/internal/application/dashboard"
	donsvc "tmf-backend/internal/application/donations"
	emailsvc "tmf-backend/internal/application/emails"
	impactsvc "tmf-backend/internal/application/impact"
	"tmf-backend/internal/application/realtime"
	uploadsvc "tmf-backend/internal/application/uploads"
	volsvc "tmf-backend/internal/application/volunteers"
	"tmf-backend/internal/config"
	"tmf-backend/internal/infrastructure/database"
	adminhandler "tmf-backend/internal/interfaces/handlers/admin"
	authhandler "tmf-backend/internal/interfaces/handlers/auth"
	certhandler "tmf-backend/internal/interfaces/handlers/certificates"
	contacthandler "tmf-backend/internal/interfaces/handlers/contact"
	contenthandler "tmf-backend/internal/interfaces/handlers/content"
	dashhandler "tmf-backend/internal/interfaces/handlers/dashboard"
	donhandler "tmf-backend/internal/interfaces/handlers/donations"
	healthhandler "tmf-backend/internal/interfaces/handlers/health"
	impacthandler "tmf-backend/internal/interfaces/handlers/impact"
	uploadhandler "tmf-backend/internal/interfaces/handlers/uploads"
	volhandler "tmf-backend/internal/interfaces/handlers/volunteers"
	"tmf-backend/internal/middleware"
	"tmf-backend/internal/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// loadLocation resolves the configured timezone, falling back to UTC when
// the name is unknown on the host.
func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Str("timezone", name).Msg("unknown timezone, using UTC")
		return time.UTC
	}
	return loc
}

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// App bundles everything CreateApp wires so entrypoints can start the
// certificate worker and close resources.
type App struct {
	Fiber  *fiber.App
	DB     *gorm.DB
	Rdb    *redis.Client
	Hub    *realtime.Hub
	Certs  *certsvc.Service
	Sender emailsvc.Sender
}

func CreateApp(cfg *config.Config) (*App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, err
	}
	app.Use(sessionHandler)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{Rdb: rdb, Config: cfg}
	app.Get("/", hh.Dashboard)
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)
	app.Get("/api/health", hh.APIHealth)

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
		hh.DB = &gormDBPinger{db: db}
	}

	result := &App{Fiber: app, DB: db, Rdb: rdb}
	if db == nil {
		return result, nil
	}

	var sender emailsvc.Sender
	if smtp := emailsvc.NewSMTPClient(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSecure, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail); smtp != nil {
		sender = smtp
	}
	hub := realtime.NewHub(log.Logger)
	certs := &certsvc.Service{DB: db, VerifyBase: cfg.VerifyBaseURL}
	als := &adminsvc.LogsService{DB: db, Log: log.Logger}
	result.Hub = hub
	result.Certs = certs
	result.Sender = sender

	// Auth
	as := &authsvc.Service{DB: db}
	ah := &authhandler.Handlers{Service: as, Rdb: rdb, Config: sessionCfg}
	ag := app.Group("/api/v1/auth")
	ag.Post("/login", ah.Login)
	ag.Get("/me", ah.Me)
	ag.Post("/logout", ah.Logout)
	ag.Post("/can-access", middleware.RequireAuth(), ah.CanAccess)

	// Certificate verification (public HTML)
	ch := &certhandler.Handlers{Service: certs}
	app.Get("/verify/:certificateId", ch.Verify)

	// Donations
	ds := &donsvc.Service{DB: db, Certs: certs, Sender: sender, Hub: hub, Log: log.Logger}
	dh := &donhandler.Handlers{Service: ds}
	dg := app.Group("/api/v1/donations")
	dg.Post("/", dh.Create)
	dg.Get("/leaderboard", dh.Leaderboard)
	dg.Post("/send-certificate", dh.SendCertificate)
	dg.Get("/", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ViewDonations), dh.List)

	// Impact widgets
	ims := &impactsvc.Service{DB: db, Loc: loadLocation(cfg.Timezone)}
	imh := &impacthandler.Handlers{Service: ims}
	img := app.Group("/api/v1/impact")
	img.Get("/live", imh.LiveStats)
	img.Get("/rules", imh.ListRules)
	img.Get("/goal", imh.Goal)
	img.Put("/rules", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageImpact), imh.UpsertRule)
	img.Delete("/rules", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageImpact), imh.DeleteRule)
	img.Put("/goal", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageImpact), imh.SetGoal)

	// Volunteers
	vs := &volsvc.Service{DB: db, Sender: sender, Hub: hub, Log: log.Logger}
	vh := &volhandler.Handlers{Service: vs, Logs: als}
	vg := app.Group("/api/v1/volunteers")
	vg.Post("/", vh.Apply)
	vg.Get("/", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageVolunteers), vh.List)
	vg.Patch("/status", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageVolunteers), vh.UpdateStatus)
	vg.Delete("/:id", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageVolunteers), vh.Remove)

	// Contact
	cs := &contactsvc.Service{DB: db, Sender: sender, Hub: hub, Log: log.Logger}
	cth := &contacthandler.Handlers{Service: cs, Logs: als}
	cg := app.Group("/api/v1/contact")
	cg.Post("/", cth.Submit)
	cg.Get("/", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageMessages), cth.List)
	cg.Patch("/status", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageMessages), cth.UpdateStatus)
	cg.Post("/reply", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageMessages), cth.Reply)
	cg.Delete("/:id", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageMessages), cth.Remove)

	// Content
	cos := &contentsvc.Service{DB: db, Hub: hub}
	coh := &contenthandler.Handlers{Service: cos}

	ang := app.Group("/api/v1/announcements")
	ang.Get("/published", coh.PublicAnnouncements)
	ang.Use(middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageAnnouncements))
	ang.Post("/", coh.CreateAnnouncement)
	ang.Get("/", coh.ListAnnouncements)
	ang.Put("/:id", coh.UpdateAnnouncement)
	ang.Patch("/:id/publish", coh.PublishAnnouncement)
	ang.Patch("/:id/unpublish", coh.UnpublishAnnouncement)
	ang.Delete("/:id", coh.DeleteAnnouncement)

	bg := app.Group("/api/v1/blogs")
	bg.Get("/published", coh.PublicBlogs)
	bg.Use(middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageBlogs))
	bg.Post("/", coh.CreateBlog)
	bg.Get("/", coh.ListBlogs)
	bg.Get("/:id", coh.GetBlog)
	bg.Put("/:id", coh.UpdateBlog)
	bg.Patch("/:id/publish", coh.PublishBlog)
	bg.Patch("/:id/unpublish", coh.UnpublishBlog)
	bg.Delete("/:id", coh.DeleteBlog)

	pg := app.Group("/api/v1/programs")
	pg.Get("/published", coh.PublicPrograms)
	pg.Use(middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManagePrograms))
	pg.Post("/", coh.CreateProgram)
	pg.Get("/", coh.ListPrograms)
	pg.Put("/:id", coh.UpdateProgram)
	pg.Patch("/:id/publish", coh.PublishProgram)
	pg.Patch("/:id/unpublish", coh.UnpublishProgram)
	pg.Delete("/:id", coh.DeleteProgram)

	ig := app.Group("/api/v1/internships")
	ig.Get("/published", coh.PublicInternships)
	ig.Use(middleware.RequireAuth(), middleware.AuthorizePermission(constants.ManageInternships))
	ig.Post("/", coh.CreateInternship)
	ig.Get("/", coh.ListInternships)
	ig.Put("/:id", coh.UpdateInternship)
	ig.Patch("/:id/publish", coh.PublishInternship)
	ig.Patch("/:id/unpublish", coh.UnpublishInternship)
	ig.Delete("/:id", coh.DeleteInternship)

	// Admin: users, logs, notifications
	aus := &adminsvc.UsersService{DB: db, Redis: rdb, Log: log.Logger}
	ans := &adminsvc.NotificationsService{DB: db}
	adh := &adminhandler.Handlers{Users: aus, Logs: als, Notifications: ans}

	adg := app.Group("/api/v1/admin", middleware.RequireAuth())
	adg.Post("/users", middleware.AuthorizePermission(constants.ManageUsers), adh.CreateUser)
	adg.Get("/users", middleware.AuthorizePermission(constants.ManageUsers), adh.ListUsers)
	adg.Patch("/users/role", middleware.AuthorizePermission(constants.ManageUsers), adh.UpdateRole)
	adg.Delete("/users/:id", middleware.AuthorizePermission(constants.ManageUsers), adh.DeleteUser)
	adg.Post("/logs", adh.RecordLog)
	adg.Get("/logs", middleware.AuthorizePermission(constants.ManageUsers), adh.ListLogs)
	adg.Get("/notifications", adh.ListNotifications)
	adg.Patch("/notifications/read-all", adh.MarkAllNotificationsRead)
	adg.Patch("/notifications/:id/read", adh.MarkNotificationRead)

	// Dashboard + realtime
	dbs := &dashsvc.Service{DB: db}
	dbh := &dashhandler.Handlers{Service: dbs, Hub: hub}
	dbg := app.Group("/api/v1/dashboard", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ViewDashboard))
	dbg.Get("/", dbh.Summary)
	dbg.Use("/ws", dbh.WSUpgrade)
	dbg.Get("/ws", dbh.WS())

	// Uploads
	sc := &uploadsvc.HTTPClient{BaseURL: cfg.SupabaseURL, SecretKey: cfg.SupabaseSecretKey}
	ups := &uploadsvc.Service{Client: sc, SupabaseURL: cfg.SupabaseURL}
	uph := &uploadhandler.Handlers{Service: ups}
	app.Post("/api/v1/uploads/sign", middleware.RequireAuth(), middleware.AuthorizePermission(constants.UploadContent), uph.SignUpload)

	return result, nil
}

// Handler adapts the Fiber app for net/http serverless runtimes.
func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
