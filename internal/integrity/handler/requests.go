package handler

import (
	"net/http"
	"strings"

	"worktime/internal/integrity/models"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
)

// GenerateRequest is the body of POST /integrity/daily-roots. Both fields
// are optional: the date defaults to yesterday and the company to all.
type GenerateRequest struct {
	Date      string `json:"date,omitempty"`
	CompanyID string `json:"company_id,omitempty"`

	parsed models.GenerateRequest
}

func (r *GenerateRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.CompanyID = strings.TrimSpace(r.CompanyID)
}

func (r *GenerateRequest) Validate() error {
	r.parsed = models.GenerateRequest{}
	if r.Date != "" {
		date, err := id.ParseDate(r.Date)
		if err != nil {
			return err
		}
		r.parsed.Date = &date
	}
	if r.CompanyID != "" {
		companyID, err := id.ParseCompanyID(r.CompanyID)
		if err != nil {
			return err
		}
		r.parsed.CompanyID = &companyID
	}
	return nil
}

func (r *GenerateRequest) Parsed() models.GenerateRequest {
	return r.parsed
}

// ReconcileRequest is the body of POST /integrity/reconcile.
type ReconcileRequest struct {
	Force bool `json:"force,omitempty"`
}

func (r *ReconcileRequest) Normalize() {}

func (r *ReconcileRequest) Validate() error { return nil }

// ManifestQuery holds the parsed query of GET /integrity/manifest.
type ManifestQuery struct {
	CompanyID id.CompanyID
	Start     id.Date
	End       id.Date
}

func ParseManifestQuery(r *http.Request) (*ManifestQuery, error) {
	values := r.URL.Query()
	rawCompany := strings.TrimSpace(values.Get("company_id"))
	rawStart := strings.TrimSpace(values.Get("start_date"))
	rawEnd := strings.TrimSpace(values.Get("end_date"))
	if rawCompany == "" || rawStart == "" || rawEnd == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "company_id, start_date and end_date are required")
	}

	companyID, err := id.ParseCompanyID(rawCompany)
	if err != nil {
		return nil, err
	}
	start, err := id.ParseDate(rawStart)
	if err != nil {
		return nil, err
	}
	end, err := id.ParseDate(rawEnd)
	if err != nil {
		return nil, err
	}
	return &ManifestQuery{CompanyID: companyID, Start: start, End: end}, nil
}
