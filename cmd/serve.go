package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tabvox/tabvox/constants"
	"github.com/tabvox/tabvox/convert"
	"github.com/tabvox/tabvox/detect"
	"github.com/tabvox/tabvox/model"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the converter over HTTP",
	Long:  `Serves the converter over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// HandleConvert is the POST /convert handler. Exported so the e2e tests can
// hit it through httptest without a running server.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	var input model.ConvertRequestBody
	if err := json.Unmarshal(body, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	out, err := convert.Convert(input.Text, input.Settings.Resolve())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.ConvertResponse{
		Format: detect.DetectFormat(input.Text).String(),
		Output: out,
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// statusFor maps the converter's sentinel errors to HTTP statuses: bad
// input is 422, the defensive unsupported-format case is 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, convert.ErrEmptyInput),
		errors.Is(err, convert.ErrNoValidFormat),
		errors.Is(err, convert.ErrNoValidChords),
		errors.Is(err, convert.ErrNoNotesFound):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.New().String()
		next.ServeHTTP(w, r)
		log.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")

	handler := cors.Default().Handler(requestLogger(router))
	addr := ":" + constants.GetServePort()
	log.Info().Str("addr", addr).Msg("listening")
	log.Fatal().Err(http.ListenAndServe(addr, handler)).Msg("server stopped")
}
