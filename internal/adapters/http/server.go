package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	api "carboncalc/internal/api"
	"carboncalc/internal/ports"
	"carboncalc/internal/services/calculations"
)

const maxBodyBytes = 1 << 20

// Server implements the generated StrictServerInterface.
type Server struct {
	calcs ports.Calculations
	log   zerolog.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(calcs ports.Calculations, log zerolog.Logger) *Server {
	return &Server{calcs: calcs, log: log.With().Str("component", "http").Logger()}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerFromMux(handler, r)
	return r
}

// Strict handler methods

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) StartCalc(ctx context.Context, req api.StartCalcRequestObject) (api.StartCalcResponseObject, error) {
	id, err := s.calcs.Start(ctx, contactFromAPI(req.Body))
	if err != nil {
		return nil, err
	}
	return api.StartCalc200JSONResponse{Id: id}, nil
}

// UpdateInfo maps success=false to a bare 404.
func (s *Server) UpdateInfo(ctx context.Context, req api.UpdateInfoRequestObject) (api.UpdateInfoResponseObject, error) {
	m, err := measurementsFromAPI(req.Body)
	if err != nil {
		return api.UpdateInfo400JSONResponse{Error: err.Error()}, nil
	}
	ok, err := s.calcs.UpdateInfo(ctx, req.Body.Id, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return api.UpdateInfo404Response{}, nil
	}
	return api.UpdateInfo200JSONResponse{Success: true}, nil
}

func (s *Server) GetResult(ctx context.Context, req api.GetResultRequestObject) (api.GetResultResponseObject, error) {
	res, err := s.calcs.Result(ctx, req.Id)
	if errors.Is(err, calculations.ErrNotFound) {
		return api.GetResult404Response{}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetResult200JSONResponse{
		Energy:         res.Energy,
		Transportation: res.Transportation,
		SolidWaste:     res.SolidWaste,
		Total:          res.Total,
	}, nil
}

// requestError answers undecodable bodies.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
}

// responseError answers handler errors; details stay in the log.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error().Err(err).
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("path", r.URL.Path).
		Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}
