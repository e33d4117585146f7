package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/memory-blog/backend/types"
	"github.com/oliverisaac/goli"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	_ "github.com/ncruces/go-sqlite3/embed"
	sqlite "github.com/ncruces/go-sqlite3/gormlite"
	"gorm.io/gorm"
)

func init() {
	goli.InitLogrus(logrus.InfoLevel)
}

// ok and fail wrap every handler response in the envelope the frontend
// expects. Failures still travel as HTTP 200, only the envelope code flips.
func ok[T any](c echo.Context, data T) error {
	return c.JSON(http.StatusOK, types.OK(data))
}

func fail[T any](c echo.Context, err error) error {
	logrus.Error(err)
	return c.JSON(http.StatusOK, types.Fail[T](err.Error()))
}

func main() {
	err := run()
	if err != nil {
		logrus.Fatal(err)
	}
}

func run() error {
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error(errors.Wrap(err, "Failed to load .env"))
	}

	tz := os.Getenv("TZ")
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return errors.Wrap(err, "failed to load timezone")
		}
		time.Local = loc
	}

	cfg, err := types.ConfigFromEnv()
	if err != nil {
		return errors.Wrap(err, "Loading config from env")
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to connect database")
	}

	err = db.AutoMigrate(
		&types.User{},
		&types.Category{},
		&types.Note{},
		&types.TagOne{},
		&types.TagTwo{},
		&types.Friend{},
		&types.Talk{},
		&types.Image{},
		&types.Setting{},
	)
	if err != nil {
		return errors.Wrap(err, "Failed to migrate")
	}

	if err := seedAdmin(db, cfg); err != nil {
		return errors.Wrap(err, "seeding admin user")
	}

	e := newServer(db, cfg)
	return e.Start(cfg.HTTPAddr)
}

func newServer(db *gorm.DB, cfg types.Config) *echo.Echo {
	e := echo.New()

	origErrHandler := e.HTTPErrorHandler
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		logrus.Error(err)
		origErrHandler(err, c)
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		Skipper:           middleware.DefaultSkipper,
		StackSize:         4 << 10, // 4 KB
		DisableStackAll:   false,
		DisablePrintStack: false,
		LogLevel:          log.ERROR,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logrus.Error(errors.Wrap(err, "recovered panic:"))
			for _, l := range strings.Split(string(stack), "\n") {
				logrus.Errorf("stack: %s", strings.ReplaceAll(l, "\t", "  "))
			}
			return nil
		},
		DisableErrorHandler: false,
	}))

	e.Use(middleware.Secure())
	e.Use(middleware.CORS())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}\n",
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/healthz"
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public surface
	e.POST("/api/login", login(db, cfg))

	e.GET("/api/public/notes", listPublicNotes(db))
	e.GET("/api/public/notes/page", listPublicNotes(db))
	e.POST("/api/public/notes/search", searchNotes(db))
	e.GET("/api/public/notes/:id", noteDetail(db))
	e.GET("/api/public/topnotes", topNotes(db))

	e.GET("/api/category", listCategories(db))
	e.GET("/api/public/category", listCategories(db))

	e.GET("/api/tagone", listTagOnes(db))
	e.GET("/api/tagtwo", listTagTwos(db))
	e.GET("/api/public/tagone", listTagOnes(db))
	e.GET("/api/public/tagtwo", listTagTwos(db))

	e.GET("/api/friends", listFriends(db))
	e.GET("/api/public/friends", listPublicFriends(db))
	e.POST("/api/public/friends", createFriend(db))

	e.GET("/api/talk", listTalks(db))
	e.GET("/api/public/talk", listTalks(db))

	e.GET("/api/public/user", getUserInfo(db))
	e.GET("/api/public/social", getSocialInfo(db))

	// Uploaded images are linked from public pages, so downloads stay open.
	e.Static("/api/protect/download", cfg.UploadDir)

	// Admin surface
	admin := e.Group("/api/protected", adminGate(cfg))

	admin.GET("/notes", listAdminNotes(db))
	admin.POST("/notes", createNote(db))
	admin.DELETE("/notes", deleteNotes(db))
	admin.POST("/notes/:id", updateNote(db))

	admin.POST("/category", createCategory(db))
	admin.DELETE("/category", deleteCategories(db))
	admin.POST("/category/:id", updateCategory(db))

	admin.POST("/tagone", createTagOne(db))
	admin.POST("/tagtwo", createTagTwo(db))
	admin.DELETE("/tag", deleteTags(db))

	admin.POST("/friend", createFriend(db))
	admin.DELETE("/friends", deleteFriends(db))
	admin.DELETE("/friend/:id", deleteFriend(db))
	admin.PUT("/friend/:id", updateFriend(db))
	admin.POST("/friends/:id", updateFriend(db))

	admin.POST("/talk", createTalk(db))
	admin.POST("/talk/:id", updateTalk(db))
	admin.DELETE("/talk/:id", deleteTalk(db))

	admin.GET("/websetting", getWebSettings(db))
	admin.POST("/websetting", updateWebSettings(db))
	admin.PUT("/social", updateSocialInfo(db))

	// Older dashboard builds call the talk and upload routes under
	// /api/protect, keep those paths answering.
	legacy := e.Group("/api/protect", adminGate(cfg))
	legacy.POST("/talk", createTalk(db))
	legacy.POST("/talk/:id", updateTalk(db))
	legacy.DELETE("/talk/:id", deleteTalk(db))
	legacy.POST("/upload", uploadImage(db, cfg))
	legacy.GET("/images", listImages(db))
	legacy.DELETE("/delImg", deleteImages(db, cfg))

	return e
}
