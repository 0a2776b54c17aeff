package host

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/phanxgames/vista"
)

// resolveAsset joins a story-relative asset path onto dir. Absolute paths
// are returned unchanged.
func resolveAsset(dir, name string) string {
	if name == "" || filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// decodeImage decodes a PNG, JPEG, BMP or WebP file.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open background: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode background %s: %w", path, err)
	}
	return img, nil
}

// loadBackground decodes path into an ebiten image.
func loadBackground(path string) (*ebiten.Image, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// backgroundScale returns the scale factors that stretch an image of size
// (iw, ih) over the content surface at zoom.
func backgroundScale(iw, ih int, content vista.ContentSize, zoom float64) (float64, float64) {
	if iw <= 0 || ih <= 0 {
		return zoom, zoom
	}
	return content.Width / float64(iw) * zoom, content.Height / float64(ih) * zoom
}
