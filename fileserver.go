package main

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"
)

const indexPage = "/index.html"

// fileServer is http.FileServer, except that a request naming index.html
// gets the file itself instead of a redirect to its directory.
type fileServer struct {
	root    http.FileSystem
	handler http.Handler
}

func newFileServer(root string) http.Handler {
	dir := http.Dir(root)
	return &fileServer{root: dir, handler: http.FileServer(dir)}
}

func (s *fileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upath := r.URL.Path
	if !strings.HasPrefix(upath, "/") {
		upath = "/" + upath
	}
	if !strings.HasSuffix(upath, indexPage) {
		s.handler.ServeHTTP(w, r)
		return
	}

	f, err := s.root.Open(path.Clean(upath))
	if err != nil {
		msg, code := toHTTPError(err)
		http.Error(w, msg, code)
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		msg, code := toHTTPError(err)
		http.Error(w, msg, code)
		return
	}
	if fi.IsDir() {
		http.Redirect(w, r, path.Base(upath)+"/", http.StatusMovedPermanently)
		return
	}
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
}

// toHTTPError maps a filesystem error to the reply http.FileServer would
// send for it.
func toHTTPError(err error) (string, int) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "404 page not found", http.StatusNotFound
	case errors.Is(err, fs.ErrPermission):
		return "403 Forbidden", http.StatusForbidden
	default:
		log.Printf("DEBUG: fileServer - open error: %v", err)
		return "500 Internal Server Error", http.StatusInternalServerError
	}
}
