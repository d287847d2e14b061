package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/vigovia/itinerary-pdf/internal/domain"
)

// Disposition values accepted by the ?disposition= query parameter.
const (
	DispositionAttachment = "attachment"
	DispositionInline     = "inline"
)

// ReferenceHeader carries the itinerary's deterministic reference on PDF responses.
const ReferenceHeader = "X-Itinerary-Ref"

// GeneratePDF handles POST /api/generate-pdf.
// Status codes:
//   - 200: PDF bytes with Content-Disposition naming "<destination>_Itinerary.pdf"
//   - 400: body is not an itinerary, or tripDetails is missing
//   - 413: body exceeds the configured cap
//   - 500: the renderer failed
func (s *Server) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	disposition := DispositionAttachment
	if err := runtime.BindQueryParameter("form", true, false, "disposition", r.URL.Query(), &disposition); err != nil {
		writeError(w, http.StatusBadRequest, titleInvalid, err.Error())
		return
	}
	if disposition != DispositionAttachment && disposition != DispositionInline {
		writeError(w, http.StatusBadRequest, titleInvalid,
			fmt.Sprintf("disposition must be %q or %q", DispositionAttachment, DispositionInline))
		return
	}

	var doc *domain.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			writeError(w, http.StatusRequestEntityTooLarge, titleTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooBig.Limit))
			return
		case errors.Is(err, io.EOF):
			// Empty body: fall through so validation reports the missing trip details.
		default:
			writeError(w, http.StatusBadRequest, titleInvalid, err.Error())
			return
		}
	}

	out, err := s.itineraries.Generate(r.Context(), doc)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, titleInvalid, unwrapMessage(err))
			return
		}
		s.log.ErrorContext(r.Context(), "generate pdf", "error", err)
		writeError(w, http.StatusInternalServerError, titleGeneration, unwrapMessage(err))
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/pdf")
	h.Set("Content-Disposition", contentDisposition(disposition, out.Filename))
	h.Set("Content-Length", strconv.Itoa(len(out.Content)))
	h.Set(ReferenceHeader, out.Reference.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Content)
}

// contentDisposition builds the header value with a quoted ASCII filename.
// Names that needed substitution also carry an RFC 5987 filename* parameter.
func contentDisposition(kind, filename string) string {
	safe := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, filename)

	v := fmt.Sprintf("%s; filename=%q", kind, safe)
	if safe != filename {
		v += "; filename*=UTF-8''" + url.PathEscape(filename)
	}
	return v
}
