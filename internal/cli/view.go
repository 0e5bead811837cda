package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/export"
	"github.com/sligocki/gedcom/pkg/render"
)

// shutdownTimeout bounds how long view waits for in-flight requests
// after the context is cancelled.
const shutdownTimeout = 5 * time.Second

// viewOpts holds the command-line flags for the view command.
type viewOpts struct {
	addr     string // listen address
	detailed bool   // include life years in node labels
	sel      selectionOpts
}

// newViewCmd creates the view command. It renders the selected subgraph
// once and serves it on localhost until interrupted.
func newViewCmd() *cobra.Command {
	opts := viewOpts{}

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Serve the rendered pedigree chart on localhost",
		Long: `Render the selected subgraph once and serve it over HTTP.

Routes:
  /            chart page
  /graph.svg   the rendered chart
  /graph.json  the node/edge export

The server runs until interrupted. Like render, GEDCOM input requires
exactly one selection mode.

Examples:
  gedcom view family.ged --all
  gedcom view family.ged --dna --addr localhost:9000`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := errors.ValidateListenAddr(opts.addr); err != nil {
				return err
			}
			return runView(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include birth and death years in labels")
	addSelectionFlags(cmd, &opts.sel)

	return cmd
}

func runView(ctx context.Context, input string, opts *viewOpts) error {
	logger := loggerFromContext(ctx)

	ropts := renderOpts{detailed: opts.detailed, sel: opts.sel}
	g, highlight, err := loadRenderGraph(ctx, input, &ropts)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	dot := render.ToDOT(g, render.Options{Highlight: highlight})

	prog := newProgress(logger)
	svg, err := renderFormat(dot, formatSVG)
	if err != nil {
		return err
	}
	prog.done("Rendered chart")

	srv := &http.Server{
		Addr:    opts.addr,
		Handler: viewRouter(logger, g, svg),
	}

	printSuccess("Serving %d people", len(g.Nodes))
	printInfo("Open %s", StyleLink.Render("http://"+opts.addr))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// viewRouter builds the chi router serving the precomputed chart. All
// handlers are read-only over data rendered before the server starts, so
// no synchronization is needed.
func viewRouter(logger *charmlog.Logger, g export.Graph, svg []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, viewPage, len(g.Nodes), len(g.Edges))
	})

	r.Get("/graph.svg", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	})

	r.Get("/graph.json", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := export.WriteJSON(g, w); err != nil {
			logger.Errorf("Write JSON: %v", err)
		}
	})

	return r
}

// requestLogger logs one debug line per request with method, path,
// status, and latency.
func requestLogger(logger *charmlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)
			logger.Debug("Request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).Round(time.Millisecond),
			)
		})
	}
}

// viewPage is the chart page. The SVG carries a normalized viewBox, so
// sizing it with CSS keeps the whole chart visible.
const viewPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>gedcom</title>
<style>
body { font-family: sans-serif; margin: 2rem; background: #fafafa; }
header { color: #555; margin-bottom: 1rem; }
img { width: 100%%; background: white; border: 1px solid #ddd; }
</style>
</head>
<body>
<header>%d people, %d parent links &middot; <a href="/graph.json">graph.json</a></header>
<img src="/graph.svg" alt="pedigree chart">
</body>
</html>
`
