package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"pictureme/internal/http/handlers"
	"pictureme/internal/middleware"
)

// NewRouter wires the HTTP surface. Authenticated routes sit behind the JWT
// middleware; the catalog and health endpoints stay public.
func NewRouter(app *handlers.App, countryLookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.CORS([]string{"*"}),
		middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute),
		middleware.I18N("en", countryLookup),
		middleware.Logger(app.Logger),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/catalog", app.Catalog)

	r.Post("/v1/auth/google", app.AuthGoogleVerify)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.JWTSecret))

		r.Get("/v1/me", app.Me)

		r.Route("/v1/studio/runs", func(r chi.Router) {
			r.Post("/", app.StudioStart)
			r.Route("/{run_id}", func(r chi.Router) {
				r.Get("/", app.StudioRun)
				r.Get("/zip", app.StudioZip)
				r.Post("/save-all", app.StudioSaveAll)
				r.Route("/jobs/{job_id}", func(r chi.Router) {
					r.Post("/retry", app.StudioRetry)
					r.Get("/download", app.StudioJobDownload)
				})
			})
		})

		r.Route("/v1/images", func(r chi.Router) {
			r.Get("/", app.ImagesList)
			r.Post("/save", app.ImageSave)
			r.Get("/{image_id}", app.ImageGet)
		})

		r.Post("/v1/remix", app.Remix)

		r.Route("/v1/prompts", func(r chi.Router) {
			r.Post("/enhance", app.PromptEnhance)
			r.Post("/analyze", app.PromptAnalyze)
		})
	})

	if app.Store != nil {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(app.Store.BasePath())))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
