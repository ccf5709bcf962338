package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SequenceModel is a single-layer LSTM with a scalar dense head. The
// exported gate kernels are (units x inputDim), the recurrent kernels
// (units x units). Inference runs the cell over a window of scaled feature
// vectors starting from zero hidden and cell state; the serving path feeds a
// single-timestep window.
type SequenceModel struct {
	Units    int         `json:"units"`
	InputDim int         `json:"input_dim"`
	Wi       [][]float64 `json:"w_i"`
	Wf       [][]float64 `json:"w_f"`
	Wc       [][]float64 `json:"w_c"`
	Wo       [][]float64 `json:"w_o"`
	Ui       [][]float64 `json:"u_i"`
	Uf       [][]float64 `json:"u_f"`
	Uc       [][]float64 `json:"u_c"`
	Uo       [][]float64 `json:"u_o"`
	Bi       []float64   `json:"b_i"`
	Bf       []float64   `json:"b_f"`
	Bc       []float64   `json:"b_c"`
	Bo       []float64   `json:"b_o"`
	DenseW   []float64   `json:"dense_w"`
	DenseB   float64     `json:"dense_b"`

	wi, wf, wc, wo *mat.Dense
	ui, uf, uc, uo *mat.Dense
}

// Predict consumes the scaled feature vector reshaped to a one-timestep
// window, mirroring how the model was trained.
func (m *SequenceModel) Predict(x []float64) float64 {
	return m.PredictWindow([][]float64{x})
}

// PredictWindow runs the cell over each timestep in order and reads the
// scalar estimate off the dense head.
func (m *SequenceModel) PredictWindow(window [][]float64) float64 {
	h := mat.NewVecDense(m.Units, nil)
	c := mat.NewVecDense(m.Units, nil)
	for _, step := range window {
		h, c = m.step(step, h, c)
	}
	y := m.DenseB
	for u := 0; u < m.Units; u++ {
		y += m.DenseW[u] * h.AtVec(u)
	}
	return y
}

func (m *SequenceModel) step(x []float64, h, c *mat.VecDense) (*mat.VecDense, *mat.VecDense) {
	input := mat.NewVecDense(m.InputDim, x)

	i := m.gate(m.wi, m.ui, m.Bi, input, h, sigmoid)
	f := m.gate(m.wf, m.uf, m.Bf, input, h, sigmoid)
	g := m.gate(m.wc, m.uc, m.Bc, input, h, math.Tanh)
	o := m.gate(m.wo, m.uo, m.Bo, input, h, sigmoid)

	cNext := mat.NewVecDense(m.Units, nil)
	hNext := mat.NewVecDense(m.Units, nil)
	for u := 0; u < m.Units; u++ {
		cu := f.AtVec(u)*c.AtVec(u) + i.AtVec(u)*g.AtVec(u)
		cNext.SetVec(u, cu)
		hNext.SetVec(u, o.AtVec(u)*math.Tanh(cu))
	}
	return hNext, cNext
}

func (m *SequenceModel) gate(w, u *mat.Dense, b []float64, x, h *mat.VecDense, activate func(float64) float64) *mat.VecDense {
	pre := mat.NewVecDense(m.Units, nil)
	pre.MulVec(w, x)
	rec := mat.NewVecDense(m.Units, nil)
	rec.MulVec(u, h)
	out := mat.NewVecDense(m.Units, nil)
	for i := 0; i < m.Units; i++ {
		out.SetVec(i, activate(pre.AtVec(i)+rec.AtVec(i)+b[i]))
	}
	return out
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// compile builds the gonum matrices from the exported kernels and checks
// every dimension against Units and InputDim.
func (m *SequenceModel) compile() error {
	if m.Units <= 0 || m.InputDim <= 0 {
		return fmt.Errorf("sequence model declares units=%d input_dim=%d", m.Units, m.InputDim)
	}
	var err error
	build := func(rows [][]float64, cols int) *mat.Dense {
		if err != nil {
			return nil
		}
		if len(rows) != m.Units {
			err = fmt.Errorf("kernel has %d rows, want %d", len(rows), m.Units)
			return nil
		}
		flat := make([]float64, 0, m.Units*cols)
		for _, row := range rows {
			if len(row) != cols {
				err = fmt.Errorf("kernel row has %d columns, want %d", len(row), cols)
				return nil
			}
			flat = append(flat, row...)
		}
		return mat.NewDense(m.Units, cols, flat)
	}

	m.wi = build(m.Wi, m.InputDim)
	m.wf = build(m.Wf, m.InputDim)
	m.wc = build(m.Wc, m.InputDim)
	m.wo = build(m.Wo, m.InputDim)
	m.ui = build(m.Ui, m.Units)
	m.uf = build(m.Uf, m.Units)
	m.uc = build(m.Uc, m.Units)
	m.uo = build(m.Uo, m.Units)
	if err != nil {
		return err
	}

	for _, b := range [][]float64{m.Bi, m.Bf, m.Bc, m.Bo} {
		if len(b) != m.Units {
			return fmt.Errorf("gate bias has %d entries, want %d", len(b), m.Units)
		}
	}
	if len(m.DenseW) != m.Units {
		return fmt.Errorf("dense head has %d weights, want %d", len(m.DenseW), m.Units)
	}
	return nil
}
