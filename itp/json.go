package itp

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// jsonFloat is a float64 that survives JSON when non-finite: ±Inf and NaN
// are written as the strings "+Inf", "-Inf" and "NaN". Solve allows an
// infinite f at trial points, so Residual may legitimately be ±Inf.
type jsonFloat float64

// MarshalJSON implements json.Marshaler.
func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}

	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler. It accepts numbers and the
// three strings written by MarshalJSON.
func (f *jsonFloat) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = jsonFloat(v)

		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = jsonFloat(v)

	return nil
}

// solutionJSON is the wire form of Solution.
type solutionJSON struct {
	X        jsonFloat `json:"x"`
	Residual jsonFloat `json:"residual"`
	Left     jsonFloat `json:"left"`
	Right    jsonFloat `json:"right"`
	Status   Status    `json:"status"`
	Iters    int       `json:"iters"`
}

// MarshalJSON implements json.Marshaler. Non-finite floats are encoded
// as strings; everything else is a plain JSON number.
func (s Solution) MarshalJSON() ([]byte, error) {
	return json.Marshal(solutionJSON{
		X:        jsonFloat(s.X),
		Residual: jsonFloat(s.Residual),
		Left:     jsonFloat(s.Left),
		Right:    jsonFloat(s.Right),
		Status:   s.Status,
		Iters:    s.Iters,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Solution) UnmarshalJSON(b []byte) error {
	var w solutionJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*s = Solution{
		X:        float64(w.X),
		Residual: float64(w.Residual),
		Left:     float64(w.Left),
		Right:    float64(w.Right),
		Status:   w.Status,
		Iters:    w.Iters,
	}

	return nil
}
