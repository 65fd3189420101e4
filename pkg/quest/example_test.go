//go:build cgo && !windows

package quest_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hsiuhsiu/quest-go/pkg/quest"
)

// Example prepares a Bell pair and shows a native rejection coming back as
// an error.
func Example() {
	if err := runExample(); err != nil {
		log.Fatalf("example failed: %v", err)
	}
	// Output:
	// P(q1=1) = 0.50
	// P(q0=1 and q1=1) = 0.50
	// rejected by collapseToOutcome
	// P(q0=1) = 1.00
}

func runExample() error {
	env, err := quest.NewEnv(quest.Config{})
	if err != nil {
		return fmt.Errorf("create env: %w", err)
	}
	defer env.Close()

	q, err := quest.NewQureg(env, 2)
	if err != nil {
		return fmt.Errorf("create register: %w", err)
	}
	defer q.Close()

	if err := q.Hadamard(0); err != nil {
		return err
	}
	if err := q.ControlledNot(0, 1); err != nil {
		return err
	}

	p, err := q.CalcProbOfOutcome(1, 1)
	if err != nil {
		return err
	}
	fmt.Printf("P(q1=1) = %.2f\n", p)

	probs, err := q.CalcProbOfAllOutcomes([]int{0, 1})
	if err != nil {
		return err
	}
	fmt.Printf("P(q0=1 and q1=1) = %.2f\n", probs[3])

	// Force q0 to 1, then ask for the now impossible q1=0.
	if _, err := q.CollapseToOutcome(0, 1); err != nil {
		return err
	}
	_, err = q.CollapseToOutcome(1, 0)
	var ne *quest.NativeError
	if !errors.As(err, &ne) {
		return fmt.Errorf("expected a native error, got %v", err)
	}
	fmt.Println("rejected by", ne.Function)

	// The register is still usable.
	p, err = q.CalcProbOfOutcome(0, 1)
	if err != nil {
		return err
	}
	fmt.Printf("P(q0=1) = %.2f\n", p)
	return nil
}
