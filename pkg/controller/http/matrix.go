package http

import (
	"net/http"

	"github.com/secmon-lab/riskboard/pkg/utils/errutil"
)

type matrixCellResponse struct {
	Likelihood     int    `json:"likelihood"`
	Impact         int    `json:"impact"`
	Score          int    `json:"score"`
	Classification string `json:"classification"`
	Initial        string `json:"initial"`
}

type levelResponse struct {
	Score       int    `json:"score"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type legendResponse struct {
	Classification string `json:"classification"`
	Initial        string `json:"initial"`
	MinScore       int    `json:"minScore"`
	MaxScore       int    `json:"maxScore"`
	Guidance       string `json:"guidance"`
}

type matrixResponse struct {
	Cells      []matrixCellResponse `json:"cells"`
	Likelihood []levelResponse      `json:"likelihood"`
	Impact     []levelResponse      `json:"impact"`
	Legend     []legendResponse     `json:"legend"`
}

func matrixHandler(uc RiskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m := uc.Matrix()

		resp := matrixResponse{
			Cells:      make([]matrixCellResponse, len(m.Cells)),
			Likelihood: make([]levelResponse, len(m.Likelihood)),
			Impact:     make([]levelResponse, len(m.Impact)),
			Legend:     make([]legendResponse, len(m.Legend)),
		}
		for i, c := range m.Cells {
			resp.Cells[i] = matrixCellResponse{
				Likelihood:     c.Likelihood.Int(),
				Impact:         c.Impact.Int(),
				Score:          c.Score,
				Classification: c.Classification.String(),
				Initial:        c.Classification.Initial(),
			}
		}
		for i, l := range m.Likelihood {
			resp.Likelihood[i] = levelResponse{Score: l.Score, Name: l.Name, Description: l.Description}
		}
		for i, l := range m.Impact {
			resp.Impact[i] = levelResponse{Score: l.Score, Name: l.Name, Description: l.Description}
		}
		for i, e := range m.Legend {
			resp.Legend[i] = legendResponse{
				Classification: e.Classification.String(),
				Initial:        e.Classification.Initial(),
				MinScore:       e.MinScore,
				MaxScore:       e.MaxScore,
				Guidance:       e.Guidance,
			}
		}

		errutil.WriteJSON(r.Context(), w, http.StatusOK, resp)
	}
}
