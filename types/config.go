package types

import (
	errs "errors"
	"fmt"
	"os"
	"path"

	"github.com/oliverisaac/goli"
	"github.com/pkg/errors"
)

type Config struct {
	HTTPAddr      string
	DBPath        string
	AdminToken    string
	AdminAccount  string
	AdminPassword string
	UploadDir     string
}

func ConfigFromEnv() (Config, error) {
	ret := Config{}
	var retErr error

	ret.HTTPAddr = goli.DefaultEnv("MEMORY_BLOG_ADDR", ":3000")

	dbPath, ok := os.LookupEnv("MEMORY_BLOG_DB_PATH")
	if !ok {
		retErr = errs.Join(retErr, fmt.Errorf("You must define env MEMORY_BLOG_DB_PATH"))
	} else if _, err := os.Stat(path.Dir(dbPath)); err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "Directory for MEMORY_BLOG_DB_PATH must exist"))
	}
	ret.DBPath = dbPath

	ret.AdminToken, ok = os.LookupEnv("MEMORY_BLOG_ADMIN_TOKEN")
	if !ok {
		retErr = errs.Join(retErr, fmt.Errorf("You must define env MEMORY_BLOG_ADMIN_TOKEN"))
	}

	// Only used to seed the admin user on an empty database.
	ret.AdminAccount = os.Getenv("MEMORY_BLOG_ADMIN_ACCOUNT")
	ret.AdminPassword = os.Getenv("MEMORY_BLOG_ADMIN_PASSWORD")

	ret.UploadDir = goli.DefaultEnv("MEMORY_BLOG_UPLOAD_DIR", "uploads")

	return ret, retErr
}
