package controllers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webbasics/gin-examples/config"
	"github.com/webbasics/gin-examples/models"
	"github.com/webbasics/gin-examples/utils"
)

// UploadController handles multipart file uploads to the local upload directory.
type UploadController struct {
	cfg config.AppConfig
}

func NewUploadController(cfg config.AppConfig) *UploadController {
	return &UploadController{cfg: cfg}
}

// UploadExample accepts 1 to UploadMaxFiles files under the "my_files" field.
// Policy violations (zero files, too many files) are answered with HTTP 200 and
// a failure-shaped body; the status code never changes. That mirrors the
// contract this route has always had, so clients key off the body, not the code.
func (u *UploadController) UploadExample(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusOK, models.UploadRejected("could not parse multipart form data"))
		return
	}

	files := form.File["my_files"]
	if len(files) == 0 {
		ctx.JSON(http.StatusOK, models.UploadRejected("you must upload at least one file"))
		return
	}
	if len(files) > u.cfg.UploadMaxFiles {
		ctx.JSON(http.StatusOK, models.UploadRejected(fmt.Sprintf("you may upload at most %d files", u.cfg.UploadMaxFiles)))
		return
	}

	if err := os.MkdirAll(u.cfg.UploadDir, 0o755); err != nil {
		utils.Sugar.Errorf("create upload directory: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create upload directory"})
		return
	}

	maxSize := int64(u.cfg.UploadMaxSizeMB) * 1024 * 1024
	stored := make([]models.UploadedFile, 0, len(files))
	for _, header := range files {
		desc, err := u.saveOne(header.Filename, header.Size, maxSize, func() (io.ReadCloser, error) {
			return header.Open()
		})
		if err != nil {
			utils.Sugar.Errorf("save upload %q: %v", header.Filename, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store uploaded file"})
			return
		}
		stored = append(stored, desc)
	}

	ctx.JSON(http.StatusOK, models.UploadAccepted(stored))
}

// saveOne persists a single part under a timestamped name, enforcing the byte cap
// with a limited reader rather than trusting the declared header size.
func (u *UploadController) saveOne(original string, declared, maxSize int64, open func() (io.ReadCloser, error)) (models.UploadedFile, error) {
	if declared > 0 && declared > maxSize {
		return models.UploadedFile{}, fmt.Errorf("file exceeds %d bytes", maxSize)
	}

	src, err := open()
	if err != nil {
		return models.UploadedFile{}, err
	}
	defer src.Close()

	storedName := models.StoredFilename(original, time.Now())
	dstPath := filepath.Join(u.cfg.UploadDir, storedName)

	out, err := os.Create(dstPath)
	if err != nil {
		return models.UploadedFile{}, err
	}
	defer out.Close()

	lr := &io.LimitedReader{R: src, N: maxSize + 1}
	written, err := io.Copy(out, lr)
	if err != nil {
		_ = os.Remove(dstPath)
		return models.UploadedFile{}, err
	}
	if written > maxSize {
		_ = os.Remove(dstPath)
		return models.UploadedFile{}, fmt.Errorf("file exceeds %d bytes", maxSize)
	}

	return models.UploadedFile{
		OriginalName: filepath.Base(original),
		StoredName:   storedName,
		Size:         written,
		Path:         dstPath,
	}, nil
}
