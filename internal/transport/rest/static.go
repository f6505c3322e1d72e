package rest

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const indexFile = "index.html"

// StaticHandler serves the browser client. Paths that do not name a file
// fall back to index.html so client-side routes survive a reload.
type StaticHandler struct {
	fsys  fs.FS
	files http.Handler
}

// NewStaticHandler serves files from dir.
func NewStaticHandler(dir string) *StaticHandler {
	return newStaticHandlerFS(os.DirFS(dir))
}

func newStaticHandlerFS(fsys fs.FS) *StaticHandler {
	return &StaticHandler{fsys: fsys, files: http.FileServerFS(fsys)}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeError(w, http.StatusNotFound, "route not found")
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name != "" && name != indexFile {
		if fi, err := fs.Stat(h.fsys, name); err == nil && !fi.IsDir() {
			h.files.ServeHTTP(w, r)
			return
		}
	}

	if _, err := fs.Stat(h.fsys, indexFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	http.ServeFileFS(w, r, h.fsys, indexFile)
}
