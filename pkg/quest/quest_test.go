//go:build cgo && !windows

package quest_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/hsiuhsiu/quest-go/pkg/quest"
	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
	"github.com/hsiuhsiu/quest-go/pkg/quest/logging"
)

const tol = 1e-10

func newEnv(t *testing.T, cfg quest.Config) *quest.Env {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	env, err := quest.NewEnv(cfg)
	if err != nil {
		t.Fatalf("NewEnv: %v", err)
	}
	t.Cleanup(func() {
		if err := env.Close(); err != nil {
			t.Errorf("Env.Close: %v", err)
		}
	})
	return env
}

func newQureg(t *testing.T, env *quest.Env, n int) *quest.Qureg {
	t.Helper()
	q, err := quest.NewQureg(env, n)
	if err != nil {
		t.Fatalf("NewQureg(%d): %v", n, err)
	}
	t.Cleanup(q.Close)
	return q
}

func newDensityQureg(t *testing.T, env *quest.Env, n int) *quest.Qureg {
	t.Helper()
	q, err := quest.NewDensityQureg(env, n)
	if err != nil {
		t.Fatalf("NewDensityQureg(%d): %v", n, err)
	}
	t.Cleanup(q.Close)
	return q
}

func near(a, b float64) bool { return math.Abs(a-b) < tol }

func mustProb(t *testing.T, q *quest.Qureg, qubit, outcome int) float64 {
	t.Helper()
	p, err := q.CalcProbOfOutcome(qubit, outcome)
	if err != nil {
		t.Fatalf("CalcProbOfOutcome(%d, %d): %v", qubit, outcome, err)
	}
	return p
}

func requireNative(t *testing.T, err error) *quest.NativeError {
	t.Helper()
	var ne *quest.NativeError
	if !errors.As(err, &ne) {
		t.Fatalf("got %v (%T), want *NativeError", err, err)
	}
	if ne.Message == "" || ne.Function == "" {
		t.Fatalf("NativeError missing report: %+v", ne)
	}
	if backend.Pending() {
		t.Fatal("capture slot still armed after the call returned")
	}
	return ne
}

func TestZeroAndPlusStateProbabilities(t *testing.T) {
	env := newEnv(t, quest.Config{})
	q := newQureg(t, env, 3)

	if q.NumQubits() != 3 || q.IsDensityMatrix() {
		t.Fatalf("unexpected register shape: qubits=%d density=%v", q.NumQubits(), q.IsDensityMatrix())
	}
	if n, err := q.NumAmps(); err != nil || n != 8 {
		t.Fatalf("NumAmps = %d, %v", n, err)
	}
	if p := mustProb(t, q, 0, 1); !near(p, 0) {
		t.Fatalf("zero state: P(q0=1) = %v", p)
	}

	if err := q.InitPlusState(); err != nil {
		t.Fatalf("InitPlusState: %v", err)
	}
	for qubit := 0; qubit < 3; qubit++ {
		if p := mustProb(t, q, qubit, 0); !near(p, 0.5) {
			t.Fatalf("plus state: P(q%d=0) = %v", qubit, p)
		}
	}
	total, err := q.TotalProb()
	if err != nil || !near(total, 1) {
		t.Fatalf("TotalProb = %v, %v", total, err)
	}
}

func TestCollapseOntoImpossibleOutcome(t *testing.T) {
	env := newEnv(t, quest.Config{})
	q := newQureg(t, env, 3)

	_, err := q.CollapseToOutcome(0, 1)
	if !errors.Is(err, quest.ErrNativeInvalidInput) {
		t.Fatalf("CollapseToOutcome: got %v, want ErrNativeInvalidInput", err)
	}
	ne := requireNative(t, err)
	if ne.Function != "collapseToOutcome" {
		t.Fatalf("Function = %q", ne.Function)
	}
	if ne.Op != "Qureg.CollapseToOutcome" {
		t.Fatalf("Op = %q", ne.Op)
	}
	if q.Poisoned() {
		t.Fatal("register poisoned without PoisonOnNativeError")
	}

	// The failure is not carried into the next call.
	if err := q.Hadamard(0); err != nil {
		t.Fatalf("Hadamard after failure: %v", err)
	}
	if p := mustProb(t, q, 0, 1); !near(p, 0.5) {
		t.Fatalf("P(q0=1) = %v after Hadamard", p)
	}
}

func TestNativeRejectionLeavesStateUntouched(t *testing.T) {
	env := newEnv(t, quest.Config{})
	q := newQureg(t, env, 2)
	if err := q.InitDebugState(); err != nil {
		t.Fatalf("InitDebugState: %v", err)
	}
	before := amps(t, q)

	// |alpha|^2 + |beta|^2 != 1
	err := q.CompactUnitary(0, 1, 1)
	requireNative(t, err)

	if after := amps(t, q); !slices.Equal(before, after) {
		t.Fatalf("state changed by rejected call:\nbefore %v\nafter  %v", before, after)
	}
}

func amps(t *testing.T, q *quest.Qureg) []complex128 {
	t.Helper()
	n, err := q.NumAmps()
	if err != nil {
		t.Fatalf("NumAmps: %v", err)
	}
	out := make([]complex128, n)
	for i := range out {
		if out[i], err = q.Amp(int64(i)); err != nil {
			t.Fatalf("Amp(%d): %v", i, err)
		}
	}
	return out
}

func TestSetAmpsRoundTrip(t *testing.T) {
	env := newEnv(t, quest.Config{})
	q := newQureg(t, env, 2)

	reals := []float64{0.5, 0.5, 0.5, 0}
	imags := []float64{0, 0, 0, 0.5}
	if err := q.InitStateFromAmps(reals, imags); err != nil {
		t.Fatalf("InitStateFromAmps: %v", err)
	}
	if err := q.SetAmps(1, []float64{0.1, 0.2}, []float64{-0.1, -0.2}); err != nil {
		t.Fatalf("SetAmps: %v", err)
	}

	want := []complex128{0.5, complex(0.1, -0.1), complex(0.2, -0.2), 0.5i}
	for i, w := range want {
		got, err := q.Amp(int64(i))
		if err != nil {
			t.Fatalf("Amp(%d): %v", i, err)
		}
		if got != w {
			t.Fatalf("Amp(%d) = %v, want %v", i, got, w)
		}
	}

	if _, err := q.Amp(4); err == nil {
		t.Fatal("Amp past the end: want error")
	} else {
		requireNative(t, err)
	}
}

func TestEnvCloseWhileInUse(t *testing.T) {
	env, err := quest.NewEnv(quest.Config{Logger: logging.Discard()})
	if err != nil {
		t.Fatalf("NewEnv: %v", err)
	}
	q, err := quest.NewQureg(env, 1)
	if err != nil {
		t.Fatalf("NewQureg: %v", err)
	}
	d, err := quest.NewDiagonalOp(env, 1)
	if err != nil {
		t.Fatalf("NewDiagonalOp: %v", err)
	}

	if err := env.Close(); !errors.Is(err, quest.ErrEnvInUse) {
		t.Fatalf("Close with open register: got %v", err)
	}
	q.Close()
	q.Close()
	if err := env.Close(); !errors.Is(err, quest.ErrEnvInUse) {
		t.Fatalf("Close with open operator: got %v", err)
	}
	d.Close()
	if err := env.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := env.Close(); !errors.Is(err, quest.ErrEnvClosed) {
		t.Fatalf("second Close: got %v", err)
	}
	if err := q.PauliX(0); !errors.Is(err, quest.ErrClosed) {
		t.Fatalf("PauliX after Close: got %v", err)
	}
	if _, err := quest.NewQureg(env, 1); !errors.Is(err, quest.ErrClosed) {
		t.Fatalf("NewQureg on closed env: got %v", err)
	}
}

func TestPoisonOnNativeError(t *testing.T) {
	env := newEnv(t, quest.Config{PoisonOnNativeError: true})
	q := newQureg(t, env, 1)

	if _, err := q.CollapseToOutcome(0, 1); err == nil {
		t.Fatal("want native error")
	}
	if !q.Poisoned() {
		t.Fatal("register not poisoned")
	}
	if err := q.Hadamard(0); !errors.Is(err, quest.ErrPoisoned) {
		t.Fatalf("Hadamard on poisoned register: got %v", err)
	}
	if _, err := q.Clone(); !errors.Is(err, quest.ErrPoisoned) {
		t.Fatalf("Clone of poisoned register: got %v", err)
	}
}

func TestSetWeightedQuregPoisonsEveryRegister(t *testing.T) {
	env := newEnv(t, quest.Config{PoisonOnNativeError: true})
	q1 := newQureg(t, env, 1)
	q2 := newQureg(t, env, 2)
	out := newQureg(t, env, 2)

	err := quest.SetWeightedQureg(1, q1, 1, q2, 0, out)
	requireNative(t, err)
	for name, q := range map[string]*quest.Qureg{"q1": q1, "q2": q2, "out": out} {
		if !q.Poisoned() {
			t.Errorf("%s not poisoned", name)
		}
	}
}

func TestSeededMeasurementsRepeat(t *testing.T) {
	seeds := []uint64{7, 11, 13}
	env := newEnv(t, quest.Config{Seeds: seeds})

	got, err := env.Seeds()
	if err != nil {
		t.Fatalf("Seeds: %v", err)
	}
	if !slices.Equal(got, seeds) {
		t.Fatalf("Seeds() = %v, want %v", got, seeds)
	}

	run := func() []int {
		if err := env.Seed(seeds); err != nil {
			t.Fatalf("Seed: %v", err)
		}
		q := newQureg(t, env, 6)
		if err := q.InitPlusState(); err != nil {
			t.Fatalf("InitPlusState: %v", err)
		}
		out := make([]int, q.NumQubits())
		for i := range out {
			outcome, prob, err := q.MeasureWithStats(i)
			if err != nil {
				t.Fatalf("MeasureWithStats(%d): %v", i, err)
			}
			if !near(prob, 0.5) {
				t.Fatalf("MeasureWithStats(%d) prob = %v", i, prob)
			}
			out[i] = outcome
		}
		return out
	}
	first, second := run(), run()
	if !slices.Equal(first, second) {
		t.Fatalf("same seeds gave %v then %v", first, second)
	}
}

func TestRecordedQASM(t *testing.T) {
	env := newEnv(t, quest.Config{})
	q := newQureg(t, env, 2)

	if err := q.StartRecordingQASM(); err != nil {
		t.Fatalf("StartRecordingQASM: %v", err)
	}
	if err := q.Hadamard(0); err != nil {
		t.Fatalf("Hadamard: %v", err)
	}
	if err := q.ControlledNot(0, 1); err != nil {
		t.Fatalf("ControlledNot: %v", err)
	}
	if err := q.StopRecordingQASM(); err != nil {
		t.Fatalf("StopRecordingQASM: %v", err)
	}

	text, err := q.RecordedQASM()
	if err != nil {
		t.Fatalf("RecordedQASM: %v", err)
	}
	if !strings.Contains(text, "OPENQASM 2.0") || !strings.Contains(text, "h q[0];") {
		t.Fatalf("unexpected QASM:\n%s", text)
	}

	path := filepath.Join(t.TempDir(), "circuit.qasm")
	if err := q.WriteRecordedQASMToFile(path); err != nil {
		t.Fatalf("WriteRecordedQASMToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read qasm file: %v", err)
	}
	if string(data) != text {
		t.Fatalf("file contents differ from RecordedQASM:\n%s", data)
	}

	if err := q.ClearRecordedQASM(); err != nil {
		t.Fatalf("ClearRecordedQASM: %v", err)
	}
	if text, _ := q.RecordedQASM(); strings.Contains(text, "h q[0];") {
		t.Fatalf("log not cleared:\n%s", text)
	}
}

func TestPauliHamilFromFile(t *testing.T) {
	env := newEnv(t, quest.Config{})
	path := filepath.Join(t.TempDir(), "hamil.txt")
	if err := os.WriteFile(path, []byte("0.5 3 0\n-0.25 0 3\n"), 0o600); err != nil {
		t.Fatalf("write hamiltonian: %v", err)
	}

	h, err := quest.NewPauliHamilFromFile(path)
	if err != nil {
		t.Fatalf("NewPauliHamilFromFile: %v", err)
	}
	defer h.Close()
	if h.NumQubits() != 2 || h.NumSumTerms() != 2 {
		t.Fatalf("shape = %d qubits, %d terms", h.NumQubits(), h.NumSumTerms())
	}

	q := newQureg(t, env, 2)
	ws := newQureg(t, env, 2)
	if err := q.PauliX(1); err != nil {
		t.Fatalf("PauliX: %v", err)
	}
	// q1=1, q0=0: 0.5*<Z0> - 0.25*<Z1> = 0.5 + 0.25
	got, err := q.CalcExpecPauliHamil(h, ws)
	if err != nil {
		t.Fatalf("CalcExpecPauliHamil: %v", err)
	}
	if !near(got, 0.75) {
		t.Fatalf("expectation = %v, want 0.75", got)
	}

	d, err := quest.NewDiagonalOpFromPauliHamilFile(env, path)
	if err != nil {
		t.Fatalf("NewDiagonalOpFromPauliHamilFile: %v", err)
	}
	defer d.Close()
	c, err := q.CalcExpecDiagonalOp(d)
	if err != nil {
		t.Fatalf("CalcExpecDiagonalOp: %v", err)
	}
	if !near(real(c), 0.75) || !near(imag(c), 0) {
		t.Fatalf("diagonal expectation = %v, want 0.75", c)
	}
}

func TestPauliHamilMissingFile(t *testing.T) {
	_, err := quest.NewPauliHamilFromFile(filepath.Join(t.TempDir(), "absent.txt"))
	requireNative(t, err)
}

func TestPauliHamilInit(t *testing.T) {
	env := newEnv(t, quest.Config{})
	h, err := quest.NewPauliHamil(2, 1)
	if err != nil {
		t.Fatalf("NewPauliHamil: %v", err)
	}
	defer h.Close()
	if err := h.Init([]float64{2}, []quest.PauliOp{quest.PauliX, quest.PauliX}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	in := newQureg(t, env, 2)
	out := newQureg(t, env, 2)
	if err := quest.ApplyPauliHamil(in, h, out); err != nil {
		t.Fatalf("ApplyPauliHamil: %v", err)
	}
	// 2 * XX |00> = 2 |11>
	a, err := out.Amp(3)
	if err != nil || a != 2 {
		t.Fatalf("Amp(3) = %v, %v", a, err)
	}

	if _, err := quest.NewPauliHamil(0, 1); err == nil {
		t.Fatal("NewPauliHamil(0, 1): want error")
	} else {
		requireNative(t, err)
	}
}

func TestDiagonalOp(t *testing.T) {
	env := newEnv(t, quest.Config{})
	d, err := quest.NewDiagonalOp(env, 2)
	if err != nil {
		t.Fatalf("NewDiagonalOp: %v", err)
	}
	defer d.Close()
	if err := d.Init([]float64{1, 2, 3, 4}, make([]float64, 4)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := d.SetElems(3, []float64{0}, []float64{5}); err != nil {
		t.Fatalf("SetElems: %v", err)
	}

	q := newQureg(t, env, 2)
	if err := q.InitClassicalState(2); err != nil {
		t.Fatalf("InitClassicalState: %v", err)
	}
	c, err := q.CalcExpecDiagonalOp(d)
	if err != nil || c != 3 {
		t.Fatalf("CalcExpecDiagonalOp = %v, %v", c, err)
	}

	if err := q.InitClassicalState(3); err != nil {
		t.Fatalf("InitClassicalState: %v", err)
	}
	if err := q.ApplyDiagonalOp(d); err != nil {
		t.Fatalf("ApplyDiagonalOp: %v", err)
	}
	if a, _ := q.Amp(3); a != 5i {
		t.Fatalf("Amp(3) = %v, want 5i", a)
	}
}

func TestComplexMatrixN(t *testing.T) {
	env := newEnv(t, quest.Config{})
	m, err := quest.NewComplexMatrixN(2)
	if err != nil {
		t.Fatalf("NewComplexMatrixN: %v", err)
	}
	defer m.Close()

	// X on the low qubit, in the (t0, t1) basis.
	re := [][]float64{{0, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 0, 1}, {0, 0, 1, 0}}
	im := [][]float64{make([]float64, 4), make([]float64, 4), make([]float64, 4), make([]float64, 4)}
	if err := m.Init(re, im); err != nil {
		t.Fatalf("Init: %v", err)
	}

	q := newQureg(t, env, 3)
	if err := q.MultiQubitUnitary([]int{2, 0}, m); err != nil {
		t.Fatalf("MultiQubitUnitary: %v", err)
	}
	if p := mustProb(t, q, 2, 1); !near(p, 1) {
		t.Fatalf("P(q2=1) = %v", p)
	}

	// Same target twice is rejected natively.
	requireNative(t, q.MultiQubitUnitary([]int{1, 1}, m))
}

func TestDensityMatrixChannels(t *testing.T) {
	env := newEnv(t, quest.Config{})
	rho := newDensityQureg(t, env, 1)
	if err := rho.InitPlusState(); err != nil {
		t.Fatalf("InitPlusState: %v", err)
	}
	if err := rho.MixDephasing(0, 0.5); err != nil {
		t.Fatalf("MixDephasing: %v", err)
	}
	purity, err := rho.CalcPurity()
	if err != nil || !near(purity, 0.5) {
		t.Fatalf("purity = %v, %v", purity, err)
	}

	requireNative(t, rho.MixDephasing(0, 0.75))

	psi := newQureg(t, env, 1)
	requireNative(t, psi.MixDephasing(0, 0.1))

	damp := quest.NewComplexMatrix2([2][2]complex128{{1, 0}, {0, 0}})
	requireNative(t, rho.MixKrausMap(0, []quest.ComplexMatrix2{damp}))
	if err := rho.MixNonTPKrausMap(0, []quest.ComplexMatrix2{damp}); err != nil {
		t.Fatalf("MixNonTPKrausMap: %v", err)
	}
}

func TestCalcProbOfAllOutcomes(t *testing.T) {
	env := newEnv(t, quest.Config{})
	q := newQureg(t, env, 3)
	if err := q.PauliX(2); err != nil {
		t.Fatalf("PauliX: %v", err)
	}
	if err := q.Hadamard(0); err != nil {
		t.Fatalf("Hadamard: %v", err)
	}
	probs, err := q.CalcProbOfAllOutcomes([]int{0, 2})
	if err != nil {
		t.Fatalf("CalcProbOfAllOutcomes: %v", err)
	}
	want := []float64{0, 0, 0.5, 0.5}
	for i := range want {
		if !near(probs[i], want[i]) {
			t.Fatalf("probs = %v, want %v", probs, want)
		}
	}
}

func TestPhaseFunctions(t *testing.T) {
	env := newEnv(t, quest.Config{})
	q := newQureg(t, env, 2)
	if err := q.InitPlusState(); err != nil {
		t.Fatalf("InitPlusState: %v", err)
	}

	// f(x) = pi * x; x=1 picks up -1, the rest are unchanged or pick up +1.
	err := q.ApplyPhaseFunc([]int{0, 1}, quest.Unsigned, []float64{math.Pi}, []float64{1},
		&quest.PhaseOverrides{Indices: []int64{2}, Phases: []float64{0}})
	if err != nil {
		t.Fatalf("ApplyPhaseFunc: %v", err)
	}
	a, _ := q.Amp(1)
	if !near(real(a), -0.5) {
		t.Fatalf("Amp(1) = %v, want -0.5", a)
	}
	a, _ = q.Amp(2)
	if !near(real(a), 0.5) {
		t.Fatalf("Amp(2) = %v, want 0.5 (overridden)", a)
	}

	// ScaledNorm takes one parameter.
	err = q.ApplyParamNamedPhaseFunc([]int{0, 1}, []int{2}, quest.Unsigned, quest.ScaledNorm, nil, nil)
	requireNative(t, err)
}

func TestEnvironmentString(t *testing.T) {
	env := newEnv(t, quest.Config{})
	s, err := env.EnvironmentString()
	if err != nil {
		t.Fatalf("EnvironmentString: %v", err)
	}
	if !strings.Contains(s, "CUDA=") {
		t.Fatalf("EnvironmentString = %q", s)
	}
	if env.NumRanks() < 1 || env.Rank() < 0 {
		t.Fatalf("rank %d of %d", env.Rank(), env.NumRanks())
	}
}

func TestConcurrentRegisters(t *testing.T) {
	env := newEnv(t, quest.Config{})
	const workers = 8

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			q, err := quest.NewQureg(env, 4)
			if err != nil {
				return err
			}
			defer q.Close()
			for i := 0; i < 50; i++ {
				if err := q.Hadamard(i % 4); err != nil {
					return err
				}
				// Every worker also triggers a native rejection; its report
				// must come back to this goroutine and nowhere else.
				if _, err := q.CollapseToOutcome(0, 1); err != nil {
					var ne *quest.NativeError
					if !errors.As(err, &ne) {
						return err
					}
				}
				if err := q.InitZeroState(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("worker: %v", err)
	}
	if backend.Pending() {
		t.Fatal("capture slot left armed")
	}
}
