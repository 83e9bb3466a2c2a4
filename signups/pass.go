package signups

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"campushub/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

func passSecret() []byte {
	if s := os.Getenv("PASS_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("campushub_pass_secret")
}

// passPayload is what check-in scanners verify: slug|email|ts|signature.
func passPayload(slug, email string, ts int64) string {
	data := fmt.Sprintf("%s|%s|%d", slug, email, ts)
	h := hmac.New(sha256.New, passSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// DownloadPass renders a PDF event pass for a registration, looked up by
// the email it was submitted with.
func (a *API) DownloadPass(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")
	email := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("email")))
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	regs := a.Repo.ListRegistrations(r.Context(), slug)
	var found bool
	var name string
	var ts int64
	for _, reg := range regs {
		if reg.Email == email {
			found = true
			name = reg.Name
			ts = reg.TS
		}
	}
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "No registration found for this email")
		return
	}

	title := slug
	if e, ok := a.Repo.GetEventBySlug(r.Context(), slug); ok {
		title = e.Title
	}

	qrPNG, err := qrcode.Encode(passPayload(slug, email, ts), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Event Pass")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Event: %s", title))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Name: %s", name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Email: %s", email))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Registered: %s", time.UnixMilli(ts).UTC().Format("Jan 2, 2006 15:04 MST")))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=pass-"+slug+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
