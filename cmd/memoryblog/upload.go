package main

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// uploadImage stores the first file of the multipart request under the
// upload dir, names it with a timestamp prefix to dodge collisions, and
// records the served URL.
func uploadImage(db *gorm.DB, cfg types.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		form, err := c.MultipartForm()
		if err != nil {
			return fail[string](c, errors.Wrap(err, "reading multipart form"))
		}

		var file *multipart.FileHeader
		for _, files := range form.File {
			if len(files) > 0 {
				file = files[0]
				break
			}
		}
		if file == nil {
			return fail[string](c, errors.New("Upload failed"))
		}

		name := time.Now().Format("20060102150405") + "_" + filepath.Base(file.Filename)
		if err := saveUpload(file, filepath.Join(cfg.UploadDir, name)); err != nil {
			return fail[string](c, err)
		}

		url := "/api/protect/download/" + name
		if err := db.Create(&types.Image{ImageURL: url}).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "recording image"))
		}
		return ok(c, url)
	}
}

func saveUpload(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "opening upload")
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrap(err, "creating upload dir")
	}
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "creating file")
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return errors.Wrap(err, "writing file")
}

func listImages(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		images := []types.Image{}
		if err := db.Order("image_key DESC").Find(&images).Error; err != nil {
			return fail[[]types.Image](c, errors.Wrap(err, "listing images"))
		}
		return ok(c, images)
	}
}

// deleteImages removes images by their served URL: the file first, then the
// row. Unknown URLs are skipped.
func deleteImages(db *gorm.DB, cfg types.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var urls []string
		if err := c.Bind(&urls); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing image urls"))
		}

		for _, url := range urls {
			var img types.Image
			if err := db.First(&img, "image_url = ?", url).Error; err != nil {
				continue
			}

			if name := uploadName(url); name != "" {
				_ = os.Remove(filepath.Join(cfg.UploadDir, name))
			}
			if err := db.Delete(&types.Image{}, "image_key = ?", img.ImageKey).Error; err != nil {
				return fail[string](c, errors.Wrap(err, "deleting image"))
			}
		}
		return ok(c, "Deleted")
	}
}

// uploadName extracts the stored filename from a served URL, accepting both
// the current /download/ form and the older /upload/ one.
func uploadName(url string) string {
	for _, marker := range []string{"/download/", "/upload/"} {
		if _, after, found := strings.Cut(url, marker); found {
			return filepath.Base(after)
		}
	}
	return ""
}
