package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const maxBodyBytes = 1 << 20

var errBadJSON = errors.New("bad json")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// decodeJSON reads a bounded JSON body, checks it against schema when one is
// given and decodes it into dst.
func decodeJSON(r *http.Request, schema *gojsonschema.Schema, dst any) error {
	ct := strings.ToLower(r.Header.Get("Content-Type"))
	if ct != "" && !strings.HasPrefix(ct, "application/json") {
		return fmt.Errorf("%w: Content-Type must be application/json", errBadJSON)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if schema != nil {
		res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
		if err != nil {
			return fmt.Errorf("%w: %v", errBadJSON, err)
		}
		if !res.Valid() {
			var sb strings.Builder
			for i, e := range res.Errors() {
				if i > 0 {
					sb.WriteString("; ")
				}
				sb.WriteString(e.String())
			}
			return fmt.Errorf("%w: %s", errBadJSON, sb.String())
		}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	return nil
}
