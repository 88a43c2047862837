package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Miroslaw-3/EOQ-Calculator/internal/batch"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/constants"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/eoq"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/input"
	"github.com/Miroslaw-3/EOQ-Calculator/pkg/output"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

// Load error kinds reported by the batch endpoint.
const (
	KindSourceNotFound  = "source_not_found"
	KindMalformedSource = "malformed_source"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	policy        batch.Policy
	metrics       *Metrics
}

// NewHandler constructs the HTTP handler that serves the web UI and the EOQ API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string, policy batch.Policy) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
		policy:        policy,
		metrics:       NewMetrics(),
	}

	mux := http.NewServeMux()

	// Single computation from form values
	mux.HandleFunc("/api/eoq", h.metrics.Instrument("/api/eoq", h.handleEOQ))

	// Batch computation (file upload or JSON records)
	mux.HandleFunc("/api/batch", h.metrics.Instrument("/api/batch", h.handleBatch))

	mux.HandleFunc("/api/version", h.metrics.Instrument("/api/version", h.handleVersion))
	mux.Handle("/metrics", h.metrics.Handler())

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return h.withRequestID(mux)
}

type loggerKey struct{}

// withRequestID tags each request with the caller's X-Request-ID or a new
// UUID, echoes it in the response and attaches it to the request logger.
func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		logger := h.logger.With(zap.String("requestId", id))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerKey{}, logger)))
	})
}

func (h *handler) requestLogger(r *http.Request) *zap.Logger {
	if logger, ok := r.Context().Value(loggerKey{}).(*zap.Logger); ok {
		return logger
	}
	return h.logger
}

type eoqRequest struct {
	Year         interface{} `json:"year"`
	AnnualDemand interface{} `json:"annualDemand"`
	SetupCost    interface{} `json:"setupCost"`
	HoldingCost  interface{} `json:"holdingCost"`
}

type eoqResponse struct {
	Row    output.Row    `json:"row"`
	Result resultPayload `json:"result"`
}

type resultPayload struct {
	Year              *int    `json:"year,omitempty"`
	AnnualDemand      float64 `json:"annualDemand"`
	EOQ               float64 `json:"eoq"`
	OrderingCost      float64 `json:"orderingCost"`
	HoldingCostTotal  float64 `json:"holdingCostTotal"`
	TotalCost         float64 `json:"totalCost"`
	OrdersPerYear     float64 `json:"ordersPerYear"`
	DaysBetweenOrders float64 `json:"daysBetweenOrders"`
}

type batchResponse struct {
	Rows     []output.Row    `json:"rows"`
	Skipped  []skippedRecord `json:"skipped"`
	Total    int             `json:"total"`
	Summary  string          `json:"summary"`
	CSV      string          `json:"csv"`
	Duration string          `json:"duration"`
}

type skippedRecord struct {
	Index   int    `json:"index"`
	Year    *int   `json:"year,omitempty"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

func (h *handler) handleEOQ(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEOQ"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	var req eoqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	params, err := input.ParseParameters(
		fieldText(req.Year),
		fieldText(req.AnnualDemand),
		fieldText(req.SetupCost),
		fieldText(req.HoldingCost),
		h.policy.MinYear,
	)
	if err != nil {
		h.respondParameterError(w, r, err, op)
		return
	}

	result, err := eoq.ComputeParams(params)
	if err != nil {
		h.respondParameterError(w, r, err, op)
		return
	}
	h.metrics.ObserveComputed(1)

	h.requestLogger(r).Debug("eoq computed",
		zap.String("op", op),
		zap.Float64("eoq", result.EOQ),
		zap.Float64("totalCost", result.TotalCost),
	)

	h.writeJSON(w, http.StatusOK, eoqResponse{
		Row:    output.NewRow(result),
		Result: newResultPayload(result),
	})
}

func (h *handler) respondParameterError(w http.ResponseWriter, r *http.Request, err error, op string) {
	resp := errorResponse{Error: err.Error()}

	var paramErr *eoq.InvalidParameterError
	var yearErr *input.InvalidYearError
	switch {
	case errors.As(err, &paramErr):
		resp.Kind = "invalid_parameter"
		resp.Field = paramErr.Field
	case errors.As(err, &yearErr):
		resp.Kind = "invalid_year"
		resp.Field = constants.FieldYear
	default:
		resp.Kind = "invalid_input"
	}

	h.requestLogger(r).Error("eoq request failed",
		zap.String("op", op),
		zap.Int("status", http.StatusBadRequest),
		zap.String("kind", resp.Kind),
		zap.String("error", resp.Error),
	)
	h.writeJSON(w, http.StatusBadRequest, resp)
}

func (h *handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBatch"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var (
		records []batch.Record
		err     error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		records, err = h.recordsFromUpload(r)
	} else {
		records, err = recordsFromJSON(r.Body)
	}
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondLoadError(w, r, err, op)
		return
	}

	processor := batch.NewProcessor(h.requestLogger(r), h.policy)
	outcome := processor.Process(records)

	results := outcome.Results
	if sortParam := r.URL.Query().Get("sort"); sortParam != "" {
		if sorted, _ := strconv.ParseBool(sortParam); sorted {
			results = batch.SortByYear(results)
		}
	}

	h.metrics.ObserveComputed(len(results))
	skipped := make([]skippedRecord, 0, len(outcome.Skipped))
	for _, s := range outcome.Skipped {
		h.metrics.ObserveSkipped(string(s.Reason))
		skipped = append(skipped, skippedRecord{
			Index:   s.Index,
			Year:    s.Year,
			Reason:  string(s.Reason),
			Message: s.Reason.Message(),
		})
	}

	rows := output.NewRows(results)
	elapsed := time.Since(start)

	h.requestLogger(r).Info("batch computed",
		zap.String("op", op),
		zap.Int("total", outcome.Total),
		zap.Int("computed", len(rows)),
		zap.Int("skipped", len(skipped)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, batchResponse{
		Rows:     rows,
		Skipped:  skipped,
		Total:    outcome.Total,
		Summary:  output.Summary(outcome),
		CSV:      output.CsvString(rows),
		Duration: elapsed.String(),
	})
}

func (h *handler) recordsFromUpload(r *http.Request) ([]batch.Record, error) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, err
		}
		return nil, &batch.MalformedSourceError{Format: "multipart", Err: err}
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		return nil, &batch.SourceNotFoundError{Path: "file", Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.requestLogger(r).Warn("failed to close uploaded file",
				zap.String("op", "server.recordsFromUpload"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, &batch.SourceNotFoundError{Path: fileHeader.Filename, Err: err}
	}

	records, err := batch.DecodeRecords(batch.FormatFromPath(fileHeader.Filename), &buf)
	if err != nil {
		var malformed *batch.MalformedSourceError
		if errors.As(err, &malformed) {
			malformed.Path = fileHeader.Filename
		}
		return nil, err
	}
	return records, nil
}

// recordsFromJSON reads a {"records": [...]} body.
func recordsFromJSON(body io.Reader) ([]batch.Record, error) {
	var payload struct {
		Records json.RawMessage `json:"records"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, err
		}
		return nil, &batch.MalformedSourceError{Format: constants.SourceFormatJSON, Err: err}
	}
	if len(payload.Records) == 0 {
		return nil, &batch.MalformedSourceError{
			Format: constants.SourceFormatJSON,
			Err:    errors.New("missing records field"),
		}
	}
	return batch.DecodeRecords(constants.SourceFormatJSON, bytes.NewReader(payload.Records))
}

func (h *handler) respondLoadError(w http.ResponseWriter, r *http.Request, err error, op string) {
	kind := loadErrorKind(err)
	if kind != "" {
		h.metrics.ObserveLoadError(kind)
	}

	h.requestLogger(r).Error("batch request failed",
		zap.String("op", op),
		zap.Int("status", http.StatusBadRequest),
		zap.String("kind", kind),
		zap.Error(err),
	)
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: kind})
}

func loadErrorKind(err error) string {
	var notFound *batch.SourceNotFoundError
	var malformed *batch.MalformedSourceError
	switch {
	case errors.As(err, &notFound):
		return KindSourceNotFound
	case errors.As(err, &malformed):
		return KindMalformedSource
	default:
		return ""
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.requestLogger(r).Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func newResultPayload(r eoq.Result) resultPayload {
	return resultPayload{
		Year:              r.Year,
		AnnualDemand:      r.AnnualDemand,
		EOQ:               r.EOQ,
		OrderingCost:      r.OrderingCost,
		HoldingCostTotal:  r.HoldingCostTotal,
		TotalCost:         r.TotalCost,
		OrdersPerYear:     r.OrdersPerYear,
		DaysBetweenOrders: r.DaysBetweenOrders,
	}
}

// fieldText renders a JSON value as the text a user would have typed.
func fieldText(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
