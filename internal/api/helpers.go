package api

import (
	"encoding/json/v2"
	"mime"
	"net/http"

	domainerrors "github.com/bookclubapp/bookclub-server/internal/errors"
)

// decodeJSON enforces the JSON media type, decodes the body strictly
// (unknown members rejected) and runs struct validation on the result.
func (s *Server) decodeJSON(r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return domainerrors.UnsupportedMediaType("unsupported media type, JSON expected")
	}

	if err := json.UnmarshalRead(r.Body, dst, json.RejectUnknownMembers(true)); err != nil {
		return domainerrors.Validation("missing, incorrectly-spelled or extra fields")
	}

	return s.validator.Validate(dst)
}
