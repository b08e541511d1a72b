// Package server exposes class file decoding over HTTP.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dhamidi/cpool/classfile"
	"github.com/dhamidi/cpool/format"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cpool.server")

// MaxBodySize bounds the size of an uploaded class file.
const MaxBodySize = 16 << 20

var contentTypes = map[string]string{
	"line": "text/plain; charset=utf-8",
	"json": "application/json",
	"cbor": "application/cbor",
}

type Server struct {
	mux           *http.ServeMux
	defaultFormat string
}

func NewServer(defaultFormat string) (*Server, error) {
	if _, ok := contentTypes[defaultFormat]; !ok {
		return nil, fmt.Errorf("unknown format: %s (expected line, json, or cbor)", defaultFormat)
	}

	s := &Server{
		mux:           http.NewServeMux(),
		defaultFormat: defaultFormat,
	}
	s.mux.HandleFunc("POST /decode", s.handleDecode)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, "ok\n")
}

// handleDecode decodes the request body as a class file and writes the
// resolved constant pool in the format named by the "format" query parameter.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("format")
	if name == "" {
		name = s.defaultFormat
	}
	contentType, ok := contentTypes[name]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown format: %s", name), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	class, err := classfile.Parse(data)
	if err != nil {
		log.Debugf("decode request from %s: %s", r.RemoteAddr, err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	var buf bytes.Buffer
	enc, err := format.NewEncoder(name, &buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := enc.Encode(class); err != nil {
		log.Errorf("encode %s: %s", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(buf.Bytes())
}
