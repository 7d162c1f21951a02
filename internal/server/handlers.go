package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/matzehuels/adaptivegrid/pkg/buildinfo"
	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/observability"
	"github.com/matzehuels/adaptivegrid/pkg/pipeline"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthBody struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{
		Status:  "ok",
		Version: buildinfo.Version,
		Commit:  buildinfo.Commit,
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	sc, opts, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.cfg.Runner.Layout(r.Context(), sc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sc, opts, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}

	// Reject bad render options before spending time on the layout.
	if err := opts.ValidateForRender(); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.cfg.Runner.Execute(r.Context(), pipeline.Input{Scene: sc}, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("X-Layout-Tracks", strconv.Itoa(result.Stats.TrackCount))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// decode reads the scene body and the query overrides.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*scene.Scene, pipeline.Options, error) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	sc, err := scene.Read(body, scene.FormatJSON)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, pipeline.Options{}, errTooLarge(tooLarge.Limit)
		}
		return nil, pipeline.Options{}, err
	}

	opts, err := parseOptions(r.URL.Query())
	if err != nil {
		return nil, pipeline.Options{}, err
	}
	opts.Logger = s.cfg.Logger.With("request_id", RequestIDFromContext(r.Context()))
	return sc, opts, nil
}

// parseOptions maps query parameters onto pipeline options.
func parseOptions(q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{
		Strategy:   q.Get("strategy"),
		Anchor:     q.Get("anchor"),
		Style:      q.Get("style"),
		Background: q.Get("background"),
	}

	var err error
	if opts.Width, err = floatParam(q, "width"); err != nil {
		return opts, err
	}
	if opts.MinItemWidth, err = floatParam(q, "min_item_width"); err != nil {
		return opts, err
	}
	if v := q.Get("columns"); v != "" {
		if opts.Columns, err = strconv.Atoi(v); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "columns must be an integer, got %q", v)
		}
	}
	if q.Has("spacing") {
		v, err := floatParam(q, "spacing")
		if err != nil {
			return opts, err
		}
		opts.Spacing = &v
	}
	if q.Has("padding") {
		v, err := floatParam(q, "padding")
		if err != nil {
			return opts, err
		}
		opts.Padding = &v
	}
	if opts.Unbounded, err = boolParam(q, "unbounded"); err != nil {
		return opts, err
	}
	if opts.Guides, err = boolParam(q, "guides"); err != nil {
		return opts, err
	}

	if err := opts.ValidateForLayout(); err != nil {
		return opts, err
	}
	return opts, nil
}

func floatParam(q url.Values, name string) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, v)
	}
	return f, nil
}

func boolParam(q url.Values, name string) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s must be true or false, got %q", name, v)
	}
	return b, nil
}

// =============================================================================
// Responses
// =============================================================================

func errNotFound(r *http.Request) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path)
}

func errTooLarge(limit int64) error {
	return errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", limit)
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		s.cfg.Logger.Error("request failed", "err", err, "request_id", RequestIDFromContext(r.Context()))
		code = string(errors.ErrCodeInternal)
		msg = "internal error"
	}
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	observability.HTTP().OnError(r.Context(), r.Method, routePattern(r), err)
	writeJSON(w, status, errorBody{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
