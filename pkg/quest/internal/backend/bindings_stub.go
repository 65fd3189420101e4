//go:build !cgo || windows

package backend

import "github.com/hsiuhsiu/quest-go/internal/bridge"

// Stub implementations for non-cgo builds or Windows. They let the module
// compile and report ErrNotBuilt when called.

type (
	Env        struct{}
	Qureg      struct{}
	DiagonalOp struct{}
	PauliHamil struct{}
	MatrixN    struct{}
)

func Version() string { return "" }

func Built() bool { return false }

type emptySlot struct{}

func (emptySlot) Take() (bridge.Record, bool) { return bridge.Record{}, false }

func Slot() bridge.Slot { return emptySlot{} }

func Pending() bool { return false }

func CreateEnv() (Env, error) {
	return Env{}, ErrNotBuilt
}

func DestroyEnv(Env) error {
	return ErrNotBuilt
}

func SyncEnv(Env) error {
	return ErrNotBuilt
}

func SyncSuccess(int) (int, error) {
	return 0, ErrNotBuilt
}

func ReportEnv(Env) error {
	return ErrNotBuilt
}

func EnvironmentString(Env) ([]byte, error) {
	return nil, ErrNotBuilt
}

func EnvRank(Env) int {
	return 0
}

func EnvNumRanks(Env) int {
	return 0
}

func SeedDefault(*Env) error {
	return ErrNotBuilt
}

func Seed(*Env, []uint64) error {
	return ErrNotBuilt
}

func Seeds(Env) ([]uint64, error) {
	return nil, ErrNotBuilt
}

func CreateQureg(int, Env) (Qureg, error) {
	return Qureg{}, ErrNotBuilt
}

func CreateDensityQureg(int, Env) (Qureg, error) {
	return Qureg{}, ErrNotBuilt
}

func CreateCloneQureg(Qureg, Env) (Qureg, error) {
	return Qureg{}, ErrNotBuilt
}

func DestroyQureg(Qureg, Env) error {
	return ErrNotBuilt
}

func NumQubits(Qureg) (int, error) {
	return 0, ErrNotBuilt
}

func NumAmps(Qureg) (int64, error) {
	return 0, ErrNotBuilt
}

func IsDensity(Qureg) bool {
	return false
}

func QubitsRepresented(Qureg) int {
	return 0
}

func InitBlankState(Qureg) error {
	return ErrNotBuilt
}

func InitZeroState(Qureg) error {
	return ErrNotBuilt
}

func InitPlusState(Qureg) error {
	return ErrNotBuilt
}

func InitDebugState(Qureg) error {
	return ErrNotBuilt
}

func InitClassicalState(Qureg, int64) error {
	return ErrNotBuilt
}

func InitPureState(Qureg, Qureg) error {
	return ErrNotBuilt
}

func InitStateFromAmps(Qureg, []float64, []float64) error {
	return ErrNotBuilt
}

func SetAmps(Qureg, int64, []float64, []float64) error {
	return ErrNotBuilt
}

func SetDensityAmps(Qureg, int64, int64, []float64, []float64) error {
	return ErrNotBuilt
}

func CloneQureg(Qureg, Qureg) error {
	return ErrNotBuilt
}

func SetWeightedQureg(complex128, Qureg, complex128, Qureg, complex128, Qureg) error {
	return ErrNotBuilt
}

func Amp(Qureg, int64) (complex128, error) {
	return 0, ErrNotBuilt
}

func RealAmp(Qureg, int64) (float64, error) {
	return 0, ErrNotBuilt
}

func ImagAmp(Qureg, int64) (float64, error) {
	return 0, ErrNotBuilt
}

func ProbAmp(Qureg, int64) (float64, error) {
	return 0, ErrNotBuilt
}

func DensityAmp(Qureg, int64, int64) (complex128, error) {
	return 0, ErrNotBuilt
}

func TotalProb(Qureg) (float64, error) {
	return 0, ErrNotBuilt
}

func CopyStateToGPU(Qureg) error {
	return ErrNotBuilt
}

func CopyStateFromGPU(Qureg) error {
	return ErrNotBuilt
}

func CopySubstateToGPU(Qureg, int64, int64) error {
	return ErrNotBuilt
}

func CopySubstateFromGPU(Qureg, int64, int64) error {
	return ErrNotBuilt
}

func ReportState(Qureg) error {
	return ErrNotBuilt
}

func ReportQuregParams(Qureg) error {
	return ErrNotBuilt
}

func ReportStateToScreen(Qureg, Env, int) error {
	return ErrNotBuilt
}

func StartRecordingQASM(Qureg) error {
	return ErrNotBuilt
}

func StopRecordingQASM(Qureg) error {
	return ErrNotBuilt
}

func ClearRecordedQASM(Qureg) error {
	return ErrNotBuilt
}

func PrintRecordedQASM(Qureg) error {
	return ErrNotBuilt
}

func WriteRecordedQASMToFile(Qureg, string) error {
	return ErrNotBuilt
}

func RecordedQASM(Qureg) []byte {
	return nil
}

func CreateMatrixN(int) (MatrixN, error) {
	return MatrixN{}, ErrNotBuilt
}

func DestroyMatrixN(MatrixN) error {
	return ErrNotBuilt
}

func MatrixNQubits(MatrixN) int {
	return 0
}

func InitMatrixN(MatrixN, []float64, []float64) error {
	return ErrNotBuilt
}

func CreatePauliHamil(int, int) (PauliHamil, error) {
	return PauliHamil{}, ErrNotBuilt
}

func CreatePauliHamilFromFile(string) (PauliHamil, error) {
	return PauliHamil{}, ErrNotBuilt
}

func DestroyPauliHamil(PauliHamil) error {
	return ErrNotBuilt
}

func PauliHamilShape(PauliHamil) (int, int) {
	return 0, 0
}

func InitPauliHamil(PauliHamil, []float64, []int32) error {
	return ErrNotBuilt
}

func ReportPauliHamil(PauliHamil) error {
	return ErrNotBuilt
}

func CreateDiagonalOp(int, Env) (DiagonalOp, error) {
	return DiagonalOp{}, ErrNotBuilt
}

func CreateDiagonalOpFromPauliHamilFile(string, Env) (DiagonalOp, error) {
	return DiagonalOp{}, ErrNotBuilt
}

func DestroyDiagonalOp(DiagonalOp, Env) error {
	return ErrNotBuilt
}

func DiagonalOpQubits(DiagonalOp) int {
	return 0
}

func SyncDiagonalOp(DiagonalOp) error {
	return ErrNotBuilt
}

func InitDiagonalOp(DiagonalOp, []float64, []float64) error {
	return ErrNotBuilt
}

func InitDiagonalOpFromPauliHamil(DiagonalOp, PauliHamil) error {
	return ErrNotBuilt
}

func SetDiagonalOpElems(DiagonalOp, int64, []float64, []float64) error {
	return ErrNotBuilt
}

func PhaseShift(Qureg, int, float64) error {
	return ErrNotBuilt
}

func ControlledPhaseShift(Qureg, int, int, float64) error {
	return ErrNotBuilt
}

func MultiControlledPhaseShift(Qureg, []int, float64) error {
	return ErrNotBuilt
}

func ControlledPhaseFlip(Qureg, int, int) error {
	return ErrNotBuilt
}

func MultiControlledPhaseFlip(Qureg, []int) error {
	return ErrNotBuilt
}

func SGate(Qureg, int) error {
	return ErrNotBuilt
}

func TGate(Qureg, int) error {
	return ErrNotBuilt
}

func PauliX(Qureg, int) error {
	return ErrNotBuilt
}

func PauliY(Qureg, int) error {
	return ErrNotBuilt
}

func PauliZ(Qureg, int) error {
	return ErrNotBuilt
}

func Hadamard(Qureg, int) error {
	return ErrNotBuilt
}

func ControlledNot(Qureg, int, int) error {
	return ErrNotBuilt
}

func ControlledPauliY(Qureg, int, int) error {
	return ErrNotBuilt
}

func MultiQubitNot(Qureg, []int) error {
	return ErrNotBuilt
}

func MultiControlledMultiQubitNot(Qureg, []int, []int) error {
	return ErrNotBuilt
}

func SwapGate(Qureg, int, int) error {
	return ErrNotBuilt
}

func SqrtSwapGate(Qureg, int, int) error {
	return ErrNotBuilt
}

func RotateX(Qureg, int, float64) error {
	return ErrNotBuilt
}

func RotateY(Qureg, int, float64) error {
	return ErrNotBuilt
}

func RotateZ(Qureg, int, float64) error {
	return ErrNotBuilt
}

func RotateAroundAxis(Qureg, int, float64, Vector) error {
	return ErrNotBuilt
}

func ControlledRotateX(Qureg, int, int, float64) error {
	return ErrNotBuilt
}

func ControlledRotateY(Qureg, int, int, float64) error {
	return ErrNotBuilt
}

func ControlledRotateZ(Qureg, int, int, float64) error {
	return ErrNotBuilt
}

func ControlledRotateAroundAxis(Qureg, int, int, float64, Vector) error {
	return ErrNotBuilt
}

func MultiRotateZ(Qureg, []int, float64) error {
	return ErrNotBuilt
}

func MultiRotatePauli(Qureg, []int, []int32, float64) error {
	return ErrNotBuilt
}

func MultiControlledMultiRotateZ(Qureg, []int, []int, float64) error {
	return ErrNotBuilt
}

func MultiControlledMultiRotatePauli(Qureg, []int, []int, []int32, float64) error {
	return ErrNotBuilt
}

func CompactUnitary(Qureg, int, complex128, complex128) error {
	return ErrNotBuilt
}

func Unitary(Qureg, int, Matrix2) error {
	return ErrNotBuilt
}

func ControlledCompactUnitary(Qureg, int, int, complex128, complex128) error {
	return ErrNotBuilt
}

func ControlledUnitary(Qureg, int, int, Matrix2) error {
	return ErrNotBuilt
}

func MultiControlledUnitary(Qureg, []int, int, Matrix2) error {
	return ErrNotBuilt
}

func MultiStateControlledUnitary(Qureg, []int, []int, int, Matrix2) error {
	return ErrNotBuilt
}

func TwoQubitUnitary(Qureg, int, int, Matrix4) error {
	return ErrNotBuilt
}

func ControlledTwoQubitUnitary(Qureg, int, int, int, Matrix4) error {
	return ErrNotBuilt
}

func MultiControlledTwoQubitUnitary(Qureg, []int, int, int, Matrix4) error {
	return ErrNotBuilt
}

func MultiQubitUnitary(Qureg, []int, MatrixN) error {
	return ErrNotBuilt
}

func ControlledMultiQubitUnitary(Qureg, int, []int, MatrixN) error {
	return ErrNotBuilt
}

func MultiControlledMultiQubitUnitary(Qureg, []int, []int, MatrixN) error {
	return ErrNotBuilt
}

func ApplyMatrix2(Qureg, int, Matrix2) error {
	return ErrNotBuilt
}

func ApplyMatrix4(Qureg, int, int, Matrix4) error {
	return ErrNotBuilt
}

func ApplyMatrixN(Qureg, []int, MatrixN) error {
	return ErrNotBuilt
}

func ApplyMultiControlledMatrixN(Qureg, []int, []int, MatrixN) error {
	return ErrNotBuilt
}

func CalcProbOfOutcome(Qureg, int, int) (float64, error) {
	return 0, ErrNotBuilt
}

func CalcProbOfAllOutcomes(Qureg, []int) ([]float64, error) {
	return nil, ErrNotBuilt
}

func CollapseToOutcome(Qureg, int, int) (float64, error) {
	return 0, ErrNotBuilt
}

func Measure(Qureg, int) (int, error) {
	return 0, ErrNotBuilt
}

func MeasureWithStats(Qureg, int) (int, float64, error) {
	return 0, 0, ErrNotBuilt
}

func ApplyProjector(Qureg, int, int) error {
	return ErrNotBuilt
}

func CalcInnerProduct(Qureg, Qureg) (complex128, error) {
	return 0, ErrNotBuilt
}

func CalcDensityInnerProduct(Qureg, Qureg) (float64, error) {
	return 0, ErrNotBuilt
}

func CalcPurity(Qureg) (float64, error) {
	return 0, ErrNotBuilt
}

func CalcFidelity(Qureg, Qureg) (float64, error) {
	return 0, ErrNotBuilt
}

func CalcHilbertSchmidtDistance(Qureg, Qureg) (float64, error) {
	return 0, ErrNotBuilt
}

func CalcExpecPauliProd(Qureg, []int, []int32, Qureg) (float64, error) {
	return 0, ErrNotBuilt
}

func CalcExpecPauliSum(Qureg, []int32, []float64, Qureg) (float64, error) {
	return 0, ErrNotBuilt
}

func CalcExpecPauliHamil(Qureg, PauliHamil, Qureg) (float64, error) {
	return 0, ErrNotBuilt
}

func CalcExpecDiagonalOp(Qureg, DiagonalOp) (complex128, error) {
	return 0, ErrNotBuilt
}

func MixDephasing(Qureg, int, float64) error {
	return ErrNotBuilt
}

func MixTwoQubitDephasing(Qureg, int, int, float64) error {
	return ErrNotBuilt
}

func MixDepolarising(Qureg, int, float64) error {
	return ErrNotBuilt
}

func MixDamping(Qureg, int, float64) error {
	return ErrNotBuilt
}

func MixTwoQubitDepolarising(Qureg, int, int, float64) error {
	return ErrNotBuilt
}

func MixPauli(Qureg, int, float64, float64, float64) error {
	return ErrNotBuilt
}

func MixDensityMatrix(Qureg, float64, Qureg) error {
	return ErrNotBuilt
}

func MixKrausMap(Qureg, int, []Matrix2, bool) error {
	return ErrNotBuilt
}

func MixTwoQubitKrausMap(Qureg, int, int, []Matrix4, bool) error {
	return ErrNotBuilt
}

func MixMultiQubitKrausMap(Qureg, []int, []MatrixN, bool) error {
	return ErrNotBuilt
}

func ApplyPauliSum(Qureg, []int32, []float64, Qureg) error {
	return ErrNotBuilt
}

func ApplyPauliHamil(Qureg, PauliHamil, Qureg) error {
	return ErrNotBuilt
}

func ApplyTrotterCircuit(Qureg, PauliHamil, float64, int, int) error {
	return ErrNotBuilt
}

func ApplyDiagonalOp(Qureg, DiagonalOp) error {
	return ErrNotBuilt
}

func ApplyFullQFT(Qureg) error {
	return ErrNotBuilt
}

func ApplyQFT(Qureg, []int) error {
	return ErrNotBuilt
}

func ApplyPhaseFunc(Qureg, []int, int, []float64, []float64, []int64, []float64) error {
	return ErrNotBuilt
}

func ApplyMultiVarPhaseFunc(Qureg, []int, []int, int, []float64, []float64, []int, []int64, []float64) error {
	return ErrNotBuilt
}

func ApplyNamedPhaseFunc(Qureg, []int, []int, int, int, []int64, []float64) error {
	return ErrNotBuilt
}

func ApplyParamNamedPhaseFunc(Qureg, []int, []int, int, int, []float64, []int64, []float64) error {
	return ErrNotBuilt
}
