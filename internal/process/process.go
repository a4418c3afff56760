// Package process binds the machining calculators to the cutting engine:
// it resolves catalog defaults for fields the caller left unset, picks the
// correction chain for the process and adds process-specific outputs.
package process

import (
	"fmt"
	"math"
	"strings"

	"cutdata/internal/cutting"
	"cutdata/internal/tooldata"
)

// Kind names a calculator.
type Kind string

const (
	Milling     Kind = "milling"
	Chamfer     Kind = "chamfer"
	FaceMilling Kind = "face-milling"
	TSlot       Kind = "tslot"
	Drilling    Kind = "drilling"
)

var kindTitles = map[Kind]string{
	Milling:     "Milling",
	Chamfer:     "Chamfer milling",
	FaceMilling: "Face milling",
	TSlot:       "T-slot milling",
	Drilling:    "Drilling",
}

// Title is the display name of k.
func (k Kind) Title() string {
	if t, ok := kindTitles[k]; ok {
		return t
	}
	return string(k)
}

// Kinds lists every calculator in display order.
var Kinds = []Kind{Milling, Chamfer, FaceMilling, TSlot, Drilling}

// ParseKind accepts the kind names and a few spellings used in spreadsheets.
func ParseKind(s string) (Kind, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.NewReplacer("_", "-", " ", "-").Replace(k)
	switch k {
	case "t-slot":
		k = string(TSlot)
	case "facemilling", "face":
		k = string(FaceMilling)
	}
	for _, known := range Kinds {
		if Kind(k) == known {
			return known, nil
		}
	}
	return "", &cutting.InputError{Field: "process", Reason: fmt.Sprintf("unknown process %q", s)}
}

// Settings carries service-wide knobs.
type Settings struct {
	// ProductionFactor scales the corrected chamfer feed to the production
	// feed. It is an opaque business constant.
	ProductionFactor float64
	// DefaultMaxRPM applies when a request has no max_rpm. 0 means no limit.
	DefaultMaxRPM float64
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{ProductionFactor: tooldata.DefaultProductionFactor}
}

// Calculator runs calculations with fixed settings. It holds no mutable
// state and is safe for concurrent use.
type Calculator struct {
	settings Settings
}

// New returns a Calculator using s.
func New(s Settings) *Calculator {
	return &Calculator{settings: s}
}

// Settings returns the calculator settings.
func (c *Calculator) Settings() Settings {
	return c.settings
}

// Input is implemented by the per-process input types.
type Input interface {
	Kind() Kind
}

// NewInput returns a pointer to the zero input for k, ready for decoding.
func NewInput(k Kind) (Input, error) {
	switch k {
	case Milling:
		return &MillingInput{}, nil
	case Chamfer:
		return &ChamferInput{}, nil
	case FaceMilling:
		return &FaceMillingInput{}, nil
	case TSlot:
		return &TSlotInput{}, nil
	case Drilling:
		return &DrillingInput{}, nil
	default:
		return nil, &cutting.InputError{Field: "process", Reason: fmt.Sprintf("unknown process %q", k)}
	}
}

// Calculate dispatches in to the matching calculator.
func (c *Calculator) Calculate(in Input) (Output, error) {
	switch v := in.(type) {
	case MillingInput:
		return c.Milling(v)
	case *MillingInput:
		return c.Milling(*v)
	case ChamferInput:
		return c.Chamfer(v)
	case *ChamferInput:
		return c.Chamfer(*v)
	case FaceMillingInput:
		return c.FaceMilling(v)
	case *FaceMillingInput:
		return c.FaceMilling(*v)
	case TSlotInput:
		return c.TSlot(v)
	case *TSlotInput:
		return c.TSlot(*v)
	case DrillingInput:
		return c.Drilling(v)
	case *DrillingInput:
		return c.Drilling(*v)
	default:
		return Output{}, fmt.Errorf("%w: unsupported input %T", cutting.ErrInvalidInput, in)
	}
}

// Output is a calculation result tagged with the process and material, plus
// the extra outputs of the process that produced it.
type Output struct {
	Process      Kind   `json:"process"`
	Material     string `json:"material"`
	MaterialName string `json:"material_name"`

	cutting.Result

	Milling  *MillingDetails  `json:"milling,omitempty"`
	TSlot    *TSlotDetails    `json:"tslot,omitempty"`
	Drilling *DrillingDetails `json:"drilling,omitempty"`
}

func (c *Calculator) maxRPM(override *float64) (float64, error) {
	if override == nil {
		return c.settings.DefaultMaxRPM, nil
	}
	v := *override
	if math.IsNaN(v) || v < 0 {
		return 0, &cutting.InputError{Field: "max_rpm", Reason: "must not be negative"}
	}
	return v, nil
}

// positive returns def when override is nil, otherwise *override if it is
// greater than zero.
func positive(field string, override *float64, def float64) (float64, error) {
	if override == nil {
		return def, nil
	}
	if !(*override > 0) {
		return 0, &cutting.InputError{Field: field, Reason: "must be greater than zero"}
	}
	return *override, nil
}

// nonNegative is like positive but accepts zero.
func nonNegative(field string, override *float64, def float64) (float64, error) {
	if override == nil {
		return def, nil
	}
	if math.IsNaN(*override) || *override < 0 {
		return 0, &cutting.InputError{Field: field, Reason: "must not be negative"}
	}
	return *override, nil
}

func teeth(override *int, def int) (int, error) {
	if override == nil {
		return def, nil
	}
	if *override <= 0 {
		return 0, &cutting.InputError{Field: "z", Reason: "must be greater than zero"}
	}
	return *override, nil
}

func requireDiameter(d float64) error {
	return cutting.RequirePositive(cutting.Field{Name: "diameter", Value: d})
}
