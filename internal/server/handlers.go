package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tournevent/taxservice/internal/processor"
	"github.com/tournevent/taxservice/pkg/taxprovider"
	"go.uber.org/zap"
)

const (
	descMissingRequiredField = "%s is required."
	descUnexpectedError      = "An unexpected error has occurred.  Your request could not be completed at this time."
	descUnreadableBody       = "Request body could not be parsed."
)

const (
	opCalculateTax = "calculate_tax"
	opGetRate      = "get_rate"
)

// Request outcome labels for metrics.
const (
	statusSuccess = "success"
	statusNoData  = "no_data"
	statusFailure = "failure"
	statusInvalid = "invalid"
	statusError   = "error"
)

func (s *Server) handleCalculateTax(w http.ResponseWriter, r *http.Request) {
	const name = "TaxController.CalculateTax"
	start := s.clock.Now()
	status := statusError
	defer func() {
		s.metrics.RecordRequest(opCalculateTax, string(processor.ActiveProvider), status, s.clock.Since(start).Seconds())
	}()

	var req *taxprovider.CalculateTaxRequest
	if !s.decode(w, r, name, &req) {
		status = statusInvalid
		return
	}
	s.logEntry(r, name, req)

	var errs []processor.ErrorResponse
	if req == nil || isBlank(req.State) {
		errs = append(errs, missingField("State"))
	}
	if req == nil || isBlank(req.ZipPostalCode) {
		errs = append(errs, missingField("ZipPostalCode"))
	}
	if len(errs) > 0 {
		status = statusInvalid
		s.writeJSON(w, r, http.StatusBadRequest, errs)
		return
	}

	outcome, err := s.service.CalculateTax(r.Context(), req)
	if err != nil {
		s.handleError(w, r, name, req, err)
		return
	}
	status = s.writeOutcome(w, r, outcome)
}

func (s *Server) handleGetRate(w http.ResponseWriter, r *http.Request) {
	const name = "RateController.GetRate"
	start := s.clock.Now()
	status := statusError
	defer func() {
		s.metrics.RecordRequest(opGetRate, string(processor.ActiveProvider), status, s.clock.Since(start).Seconds())
	}()

	var req *taxprovider.GetRateRequest
	if !s.decode(w, r, name, &req) {
		status = statusInvalid
		return
	}
	s.logEntry(r, name, req)

	if req == nil || isBlank(req.ZipPostalCode) {
		status = statusInvalid
		s.writeJSON(w, r, http.StatusBadRequest, []processor.ErrorResponse{missingField("ZipPostalCode")})
		return
	}

	outcome, err := s.service.GetRate(r.Context(), req)
	if err != nil {
		s.handleError(w, r, name, req, err)
		return
	}
	status = s.writeOutcome(w, r, outcome)
}

// decode reads a JSON body into dst. An empty body leaves dst untouched so
// the handler reports the missing fields. It writes the 400 response itself
// and returns false when the body is not valid JSON.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, name string, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	s.logger.Ctx(r.Context()).Info(name+": unreadable request body",
		zap.String("request_id", requestID(r.Context())),
		zap.Error(err),
	)
	s.writeJSON(w, r, http.StatusBadRequest, []processor.ErrorResponse{
		processor.NewErrorResponse(processor.CodeUnexpectedError, descUnreadableBody),
	})
	return false
}

// writeOutcome maps a processor outcome to 200 or 400 and returns the
// metrics status label.
func (s *Server) writeOutcome(w http.ResponseWriter, r *http.Request, outcome processor.Outcome) string {
	if !outcome.Success() {
		s.writeJSON(w, r, http.StatusBadRequest, outcome.Errors())
		return statusFailure
	}

	switch data := outcome.Data().(type) {
	case processor.CalculateTaxResponse:
		s.writeJSON(w, r, http.StatusOK, data)
	case processor.GetRateResponse:
		s.writeJSON(w, r, http.StatusOK, data)
	case processor.NoData:
		s.writeJSON(w, r, http.StatusOK, data)
		return statusNoData
	default:
		panic(fmt.Sprintf("server: unhandled response data %T", data))
	}
	return statusSuccess
}

// handleError logs an uncaught processor error and answers 500 without
// exposing any provider detail.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, name string, req interface{}, err error) {
	s.logger.Ctx(r.Context()).Error(name+": request failed",
		zap.String("request_id", requestID(r.Context())),
		zap.Any("request", req),
		zap.Error(err),
	)

	s.metrics.RecordError(string(processor.ActiveProvider), taxprovider.ErrorCode(err))

	s.writeJSON(w, r, http.StatusInternalServerError, []processor.ErrorResponse{
		processor.NewErrorResponse(processor.CodeUnexpectedError, descUnexpectedError),
	})
}

func (s *Server) logEntry(r *http.Request, name string, req interface{}) {
	s.logger.Ctx(r.Context()).Info(name+": executing",
		zap.String("request_id", requestID(r.Context())),
		zap.Any("request", req),
	)
}

func missingField(field string) processor.ErrorResponse {
	return processor.NewErrorResponse(processor.CodeMissingRequiredField, fmt.Sprintf(descMissingRequiredField, field))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// writeJSON commits status before encoding, so an encode failure can only
// be logged.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Ctx(r.Context()).Debug("Failed to write response",
			zap.String("request_id", requestID(r.Context())),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
}
