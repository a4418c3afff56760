package calculator

import (
	"encoding/json"

	"cutdata/internal/cutting"
	"cutdata/internal/process"
	"cutdata/internal/report"
)

// MsgFillInFields is the error message of every rejected calculation.
const MsgFillInFields = "fill in required fields"

// SheetRequest is the JSON body for POST /cutting-data/sheet. Input holds
// the same object the process endpoint accepts.
type SheetRequest struct {
	Process string          `json:"process"`
	Input   json.RawMessage `json:"input"`
}

// BatchResponse is the JSON response for POST /cutting-data/batch.
type BatchResponse struct {
	Rows      int             `json:"rows"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Results   []report.Result `json:"results"`
}

// MaterialsResponse is the JSON response for GET /cutting-data/materials.
type MaterialsResponse struct {
	Groups []process.MaterialGroup `json:"groups"`
}

// TableResponse is the JSON response for the feed table endpoint.
type TableResponse struct {
	Process  process.Kind  `json:"process"`
	Material string        `json:"material"`
	Policy   string        `json:"policy"`
	Rows     []cutting.Row `json:"rows"`
}
