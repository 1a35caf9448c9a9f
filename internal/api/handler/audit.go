package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/page-audit-api/internal/usecases/reporting"
	"github.com/vfg2006/page-audit-api/pkg/apiErrors"
	"github.com/vfg2006/page-audit-api/pkg/log"
	"github.com/vfg2006/page-audit-api/pkg/utils"
)

const maxRequestBody = 1 << 16

// createAuditRequest aceita datas em YYYY-MM-DD ou RFC3339
type createAuditRequest struct {
	ConnectionID string `json:"connection_id"`
	Preset       string `json:"preset"`
	Since        string `json:"since"`
	Until        string `json:"until"`
}

func (req createAuditRequest) toDomain() (domain.AuditRequest, error) {
	since, err := parseTimeParam(req.Since)
	if err != nil {
		return domain.AuditRequest{}, errors.Wrap(err, "since inválido")
	}
	until, err := parseTimeParam(req.Until)
	if err != nil {
		return domain.AuditRequest{}, errors.Wrap(err, "until inválido")
	}

	return domain.AuditRequest{
		ConnectionID: strings.TrimSpace(req.ConnectionID),
		Preset:       req.Preset,
		Since:        since,
		Until:        until,
	}, nil
}

func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return utils.ParseDate(value)
}

// CreateAudit executa uma auditoria para a conexão informada
func CreateAudit(auditor auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityOrReject(w, r)
		if !ok {
			return
		}

		var body createAuditRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		req, err := body.toDomain()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		record, err := auditor.Run(r.Context(), identity, req)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Auditoria não concluída")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, record)
	})
}

func ListAudits(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityOrReject(w, r)
		if !ok {
			return
		}

		limit, err := intQueryParam(r, "limit")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser numérico", nil)
			return
		}
		offset, err := intQueryParam(r, "offset")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "offset deve ser numérico", nil)
			return
		}

		summaries, err := reporter.ListAudits(r.Context(), identity, limit, offset)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"data":   summaries,
			"limit":  limit,
			"offset": offset,
		})
	})
}

func GetAudit(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityOrReject(w, r)
		if !ok {
			return
		}

		auditID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		record, err := reporter.GetAudit(r.Context(), identity, auditID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, record)
	})
}

func GetQuota(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityOrReject(w, r)
		if !ok {
			return
		}

		status, err := reporter.GetQuota(r.Context(), identity)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, status)
	})
}

// GetSharedReport é público: responde só o resumo da auditoria
func GetSharedReport(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := httprouter.ParamsFromContext(r.Context()).ByName("code")

		summary, err := reporter.GetSharedSummary(r.Context(), code)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func intQueryParam(r *http.Request, name string) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
