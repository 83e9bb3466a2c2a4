package events

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

var eventpicUploadPath = "./static/eventpic"

// saveEventImage stores the optional "image" form file for an event and
// writes a 300px-wide thumbnail next to it. Returns the public path, or
// "" when no file was attached.
func saveEventImage(r *http.Request, slug string) (string, error) {
	file, _, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	thumbDir := filepath.Join(eventpicUploadPath, "thumb")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	fileName := slug + ".jpg"
	if err := imaging.Save(img, filepath.Join(eventpicUploadPath, fileName)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/eventpic/" + fileName, nil
}
