package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/camperplan/camperplan/internal/api/response"
)

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into dst. On failure it writes a
// 400 problem response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, r, "invalid request body", nil)
		return false
	}
	return true
}

// decodeJSONOptional is decodeJSON for endpoints whose body is
// optional. An empty body leaves dst at its zero value and reports
// success. The body length cannot be trusted to detect emptiness
// (chunked requests report -1), so an EOF on the first token is the
// signal instead.
func decodeJSONOptional(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	response.BadRequest(w, r, "invalid request body", nil)
	return false
}
