package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"github.com/secmon-lab/riskboard/pkg/utils/errutil"
)

const maxRequestBodySize = 1 << 20

// Client-facing error messages
const (
	MsgInvalidRequestBody = "Invalid request body"
	MsgFetchRisksFailed   = "Failed to fetch risks"
	MsgCreateRiskFailed   = "Failed to save risk"
	MsgAssessFailed       = "Failed to assess risk"
)

// createRiskRequest uses pointers so absent fields can be told apart from decoding errors.
// Absent fields fail the matching validation rule.
type createRiskRequest struct {
	Hazard     *string `json:"hazard"`
	Likelihood *int    `json:"likelihood"`
	Impact     *int    `json:"impact"`
}

type assessRequest struct {
	Likelihood *int `json:"likelihood"`
	Impact     *int `json:"impact"`
}

type riskResponse struct {
	ID             string    `json:"id"`
	Hazard         string    `json:"hazard"`
	Likelihood     int       `json:"likelihood"`
	Impact         int       `json:"impact"`
	Score          int       `json:"score"`
	Classification string    `json:"classification"`
	CreatedAt      time.Time `json:"createdAt"`
}

type listRisksResponse struct {
	Risks []riskResponse `json:"risks"`
}

type assessResponse struct {
	Likelihood     int    `json:"likelihood"`
	Impact         int    `json:"impact"`
	Score          int    `json:"score"`
	Classification string `json:"classification"`
	Guidance       string `json:"guidance"`
}

func toRiskResponse(risk *model.Risk) riskResponse {
	return riskResponse{
		ID:             risk.ID.String(),
		Hazard:         risk.Hazard,
		Likelihood:     risk.Likelihood.Int(),
		Impact:         risk.Impact.Int(),
		Score:          risk.Score,
		Classification: risk.Classification.String(),
		CreatedAt:      risk.CreatedAt,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// decodeJSONBody decodes exactly one JSON object with no unknown fields
func decodeJSONBody(r *http.Request, w http.ResponseWriter, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return goerr.Wrap(err, "failed to decode request body")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return goerr.New("request body must contain a single JSON object")
	}
	return nil
}

// writeUseCaseError maps validation errors to 400 and everything else to 500
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	if msg, ok := model.ValidationMessage(err); ok {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest, msg)
		return
	}
	errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError, internalMsg)
}

func createRiskHandler(uc RiskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRiskRequest
		if err := decodeJSONBody(r, w, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest, MsgInvalidRequestBody)
			return
		}

		risk, err := uc.CreateRisk(r.Context(),
			derefString(req.Hazard),
			types.Likelihood(derefInt(req.Likelihood)),
			types.Impact(derefInt(req.Impact)),
		)
		if err != nil {
			writeUseCaseError(w, r, err, MsgCreateRiskFailed)
			return
		}

		errutil.WriteJSON(r.Context(), w, http.StatusOK, toRiskResponse(risk))
	}
}

func listRisksHandler(uc RiskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		risks, err := uc.ListRisks(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError, MsgFetchRisksFailed)
			return
		}

		resp := listRisksResponse{
			Risks: make([]riskResponse, len(risks)),
		}
		for i, risk := range risks {
			resp.Risks[i] = toRiskResponse(risk)
		}

		errutil.WriteJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func assessHandler(uc RiskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assessRequest
		if err := decodeJSONBody(r, w, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest, MsgInvalidRequestBody)
			return
		}

		a, err := uc.Assess(types.Likelihood(derefInt(req.Likelihood)), types.Impact(derefInt(req.Impact)))
		if err != nil {
			writeUseCaseError(w, r, err, MsgAssessFailed)
			return
		}

		errutil.WriteJSON(r.Context(), w, http.StatusOK, assessResponse{
			Likelihood:     a.Likelihood.Int(),
			Impact:         a.Impact.Int(),
			Score:          a.Score,
			Classification: a.Classification.String(),
			Guidance:       a.Guidance,
		})
	}
}
