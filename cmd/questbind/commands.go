package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/hsiuhsiu/quest-go/pkg/quest"
	"github.com/hsiuhsiu/quest-go/pkg/quest/logging"
)

var (
	label   = color.New(color.FgCyan).SprintFunc()
	success = color.New(color.FgGreen, color.Bold).SprintFunc()
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print wrapper and QuEST versions",
		Action: func(c *cli.Context) error {
			w := c.App.Writer
			fmt.Fprintf(w, "%s %s\n", label("questbind:"), quest.WrapperVersion())
			fmt.Fprintf(w, "%s %s (%s)\n", label("quest:"), quest.UpstreamVersion(), quest.UpstreamDir)
			fmt.Fprintf(w, "%s %v\n", label("native:"), quest.Built())
			return nil
		},
	}
}

func (a *app) envCommand() *cli.Command {
	return &cli.Command{
		Name:  "env",
		Usage: "create an environment and describe it",
		Action: func(c *cli.Context) error {
			env, err := a.env()
			if err != nil {
				return err
			}
			defer env.Close()

			desc, err := env.EnvironmentString()
			if err != nil {
				return err
			}
			seeds, err := env.Seeds()
			if err != nil {
				return err
			}
			w := c.App.Writer
			fmt.Fprintf(w, "%s %s\n", label("environment:"), desc)
			fmt.Fprintf(w, "%s %d of %d\n", label("rank:"), env.Rank(), env.NumRanks())
			fmt.Fprintf(w, "%s %v\n", label("seeds:"), seeds)
			return nil
		},
	}
}

func (a *app) groverCommand() *cli.Command {
	return &cli.Command{
		Name:  "grover",
		Usage: "search for a marked basis state with Grover's algorithm",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "qubits", Value: 10, Usage: "register size"},
			&cli.Int64Flag{Name: "target", Value: -1, Usage: "marked element (random when negative)"},
		},
		Action: func(c *cli.Context) error {
			n := c.Int("qubits")
			if n < 1 || n > 30 {
				return fmt.Errorf("qubits %d: want 1 to 30", n)
			}
			elems := int64(1) << n
			target := c.Int64("target")
			if target < 0 {
				target = rand.Int64N(elems)
			}
			if target >= elems {
				return fmt.Errorf("target %d: want below %d", target, elems)
			}

			env, err := a.env()
			if err != nil {
				return err
			}
			defer env.Close()
			q, err := quest.NewQureg(env, n)
			if err != nil {
				return err
			}
			defer q.Close()

			reps := groverReps(n)
			a.log.Debug("grover search", "target", target, "reps", reps,
				logging.Qubits("oracle_flips", zeroBits(allQubits(n), target)))
			w := c.App.Writer
			fmt.Fprintf(w, "num_qubits: %d, num_elems: %d, num_reps: %d\n", n, elems, reps)

			prob, err := grover(q, target, reps, func(rep int, p float64) {
				a.log.Debug("grover iteration", "rep", rep, "prob", p)
				fmt.Fprintf(w, "prob of solution |%d> = %.6f\n", target, p)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s |%d> with probability %s\n", label("found"), target, success(fmt.Sprintf("%.6f", prob)))
			return nil
		},
	}
}

// groverReps is the optimal iteration count ceil(pi/4 * sqrt(2^n)).
func groverReps(n int) int {
	return int(math.Ceil(math.Pi / 4 * math.Sqrt(float64(int64(1)<<n))))
}

// grover runs reps Grover iterations over the whole of q, starting from the
// plus state, and returns the final probability of target. report is called
// before each iteration with the current probability.
func grover(q *quest.Qureg, target int64, reps int, report func(rep int, prob float64)) (float64, error) {
	qubits := allQubits(q.NumQubits())
	if err := q.InitPlusState(); err != nil {
		return 0, err
	}
	for rep := 0; rep < reps; rep++ {
		p, err := q.ProbAmp(target)
		if err != nil {
			return 0, err
		}
		if report != nil {
			report(rep, p)
		}
		if err := groverOracle(q, qubits, target); err != nil {
			return 0, err
		}
		if err := groverDiffuser(q, qubits); err != nil {
			return 0, err
		}
	}
	return q.ProbAmp(target)
}

func allQubits(n int) []int {
	qubits := make([]int, n)
	for i := range qubits {
		qubits[i] = i
	}
	return qubits
}

func eachQubit(qubits []int, gate func(int) error) error {
	for _, t := range qubits {
		if err := gate(t); err != nil {
			return err
		}
	}
	return nil
}

// groverOracle flips the sign of |target>.
func groverOracle(q *quest.Qureg, qubits []int, target int64) error {
	zeros := zeroBits(qubits, target)
	if err := eachQubit(zeros, q.PauliX); err != nil {
		return err
	}
	if err := q.MultiControlledPhaseFlip(qubits); err != nil {
		return err
	}
	return eachQubit(zeros, q.PauliX)
}

// zeroBits lists the qubits that are 0 in target.
func zeroBits(qubits []int, target int64) []int {
	var zeros []int
	for _, t := range qubits {
		if (target>>t)&1 == 0 {
			zeros = append(zeros, t)
		}
	}
	return zeros
}

// groverDiffuser reflects about the plus state.
func groverDiffuser(q *quest.Qureg, qubits []int) error {
	for _, gate := range []func(int) error{q.Hadamard, q.PauliX} {
		if err := eachQubit(qubits, gate); err != nil {
			return err
		}
	}
	if err := q.MultiControlledPhaseFlip(qubits); err != nil {
		return err
	}
	for _, gate := range []func(int) error{q.PauliX, q.Hadamard} {
		if err := eachQubit(qubits, gate); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) hamilCommand() *cli.Command {
	return &cli.Command{
		Name:  "hamil",
		Usage: "load a Pauli Hamiltonian file and evaluate it in the plus state",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Required: true, Usage: "Hamiltonian file, one term per line"},
			&cli.BoolFlag{Name: "report", Usage: "print every term as loaded by QuEST"},
		},
		Action: func(c *cli.Context) error {
			h, err := quest.NewPauliHamilFromFile(c.String("file"))
			if err != nil {
				var ne *quest.NativeError
				if errors.As(err, &ne) {
					return fmt.Errorf("load %s: %s", c.String("file"), strings.TrimSpace(ne.Message))
				}
				return err
			}
			defer h.Close()

			if c.Bool("report") {
				if err := h.Report(); err != nil {
					return err
				}
			}

			env, err := a.env()
			if err != nil {
				return err
			}
			defer env.Close()

			expec, err := plusStateExpectation(env, h)
			if err != nil {
				return err
			}
			a.log.Info("hamiltonian evaluated", "qubits", h.NumQubits(), "terms", h.NumSumTerms())
			fmt.Fprintf(c.App.Writer, "%s %d qubits, %d terms\n", label("hamiltonian:"), h.NumQubits(), h.NumSumTerms())
			fmt.Fprintf(c.App.Writer, "%s %s\n", label("<+|H|+> ="), success(fmt.Sprintf("%.10g", expec)))
			return nil
		},
	}
}

func plusStateExpectation(env *quest.Env, h *quest.PauliHamil) (float64, error) {
	q, err := quest.NewQureg(env, h.NumQubits())
	if err != nil {
		return 0, err
	}
	defer q.Close()
	ws, err := quest.NewQureg(env, h.NumQubits())
	if err != nil {
		return 0, err
	}
	defer ws.Close()

	if err := q.InitPlusState(); err != nil {
		return 0, err
	}
	return q.CalcExpecPauliHamil(h, ws)
}
