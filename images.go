package metaengine

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/eringen/metaengine/metaconfig"
)

// Share images are cropped and scaled to the size social platforms render
// large link previews at.
const (
	shareImageWidth  = 1200
	shareImageHeight = 630
	jpegQuality      = 85
	maxUploadSize    = 10 << 20 // 10MB
	shareImageSubdir = "uploads/og"
)

// processShareImage decodes src, center-crops it to the share aspect ratio,
// scales it to shareImageWidth x shareImageHeight, and encodes it as JPEG.
func processShareImage(src io.Reader, originalName string) (ShareImage, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return ShareImage{}, nil, fmt.Errorf("decode image: %w", err)
	}

	crop := coverRect(img.Bounds(), shareImageWidth, shareImageHeight)
	dst := image.NewRGBA(image.Rect(0, 0, shareImageWidth, shareImageHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return ShareImage{}, nil, fmt.Errorf("encode jpeg: %w", err)
	}

	base := slugifyFilename(originalName)
	if base == "" {
		base = "share"
	}
	return ShareImage{
		Filename: fmt.Sprintf("%s-%d.jpg", base, time.Now().Unix()),
		Width:    shareImageWidth,
		Height:   shareImageHeight,
		Size:     int64(buf.Len()),
	}, buf.Bytes(), nil
}

// coverRect returns the largest rectangle centered in b with aspect w:h.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	bw, bh := b.Dx(), b.Dy()
	if bw*h > bh*w {
		cw := bh * w / h
		x0 := b.Min.X + (bw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := bw * h / w
	y0 := b.Min.Y + (bh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}

// slugifyFilename converts a filename (without extension) to a URL-safe slug.
func slugifyFilename(name string) string {
	ext := filepath.Ext(name)
	return Slugify(strings.TrimSuffix(name, ext))
}

// handleShareImageUpload stores an uploaded share image under the static dir
// and makes it the config's default image.
func (a *App) handleShareImageUpload(c echo.Context) error {
	if !a.uploadLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many uploads. Try again later.")
	}
	file, err := c.FormFile("image")
	if err != nil {
		return c.String(http.StatusBadRequest, "No image file provided")
	}
	if file.Size > maxUploadSize {
		return c.String(http.StatusBadRequest, "File too large (max 10MB)")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, data, err := processShareImage(io.LimitReader(src, maxUploadSize), file.Filename)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}

	dir := filepath.Join(a.Config.StaticDir, filepath.FromSlash(shareImageSubdir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, img.Filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	img.Path = "/public/" + shareImageSubdir + "/" + img.Filename

	if _, err := a.Meta.Update(metaconfig.Partial{DefaultImage: &img.Path}); err != nil {
		return err
	}
	a.Logger.Info("share image uploaded", zap.String("path", img.Path), zap.Int64("bytes", img.Size))
	return c.Redirect(http.StatusSeeOther, "/admin/meta/?msg=image")
}
