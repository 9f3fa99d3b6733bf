package frontend

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Map view shown before the browser has produced a position of its own.
const (
	defaultMapLat    = 59.3293
	defaultMapLon    = 18.0686
	defaultMapRadius = 4000
)

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/static/css/app.css">
</head>
<body>
<main id="app">
<div id="map" data-api="{{.APIPath}}" data-lat="{{.Lat}}" data-lon="{{.Lon}}" data-radius="{{.Radius}}"></div>
</main>
<script src="/static/js/app.js"></script>
</body>
</html>
`

func RegisterHandlers(log zerolog.Logger, router *chi.Mux, wwwrootPath string) *chi.Mux {

	router.Get("/", NewIndexHandler(log))

	FileServer(router, "/static", http.Dir(wwwrootPath))

	return router
}

// NewIndexHandler serves the application shell that bootstraps the map
// frontend. All data on the page is loaded by the browser through the
// cafe search API.
func NewIndexHandler(log zerolog.Logger) http.HandlerFunc {
	index := template.Must(template.New("index.html").Parse(indexTemplate))

	return func(w http.ResponseWriter, r *http.Request) {
		data := struct {
			Title   string
			APIPath string
			Lat     float64
			Lon     float64
			Radius  int
		}{
			Title:   "CafeScout",
			APIPath: "/api/cafes",
			Lat:     defaultMapLat,
			Lon:     defaultMapLon,
			Radius:  defaultMapRadius,
		}

		w.Header().Add("Content-Type", "text/html; charset=utf-8")

		if err := index.Execute(w, data); err != nil {
			log.Error().Err(err).Msg("failed to render the application shell")
		}
	}
}

// FileServer mounts a static file tree on the router, redirecting bare
// directory requests so relative asset paths keep working.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit any URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, r)
	})
}
