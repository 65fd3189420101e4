//go:build cgo && !windows

package backend

/*
#include <string.h>
#include "shim.h"
*/
import "C"

import "unsafe"

func CreateEnv() (Env, error) {
	var env C.QuESTEnv
	err := status(C.qg_createQuESTEnv(&env))
	return env, err
}

func DestroyEnv(env Env) error {
	return status(C.qg_destroyQuESTEnv(env))
}

func SyncEnv(env Env) error {
	return status(C.qg_syncQuESTEnv(env))
}

func SyncSuccess(code int) (int, error) {
	var out C.int
	err := status(C.qg_syncQuESTSuccess(C.int(code), &out))
	return int(out), err
}

func ReportEnv(env Env) error {
	return status(C.qg_reportQuESTEnv(env))
}

// EnvironmentString returns the raw bytes written by getEnvironmentString.
func EnvironmentString(env Env) ([]byte, error) {
	var buf [EnvironmentStringCap]C.char
	if err := status(C.qg_getEnvironmentString(env, &buf[0])); err != nil {
		return nil, err
	}
	return C.GoBytes(unsafe.Pointer(&buf[0]), C.int(C.strnlen(&buf[0], EnvironmentStringCap))), nil
}

func EnvRank(env Env) int     { return int(env.rank) }
func EnvNumRanks(env Env) int { return int(env.numRanks) }

// SeedDefault reseeds env in place.
func SeedDefault(env *Env) error {
	return status(C.qg_seedQuESTDefault(env))
}

// Seed reseeds env in place with the given seeds.
func Seed(env *Env, seeds []uint64) error {
	cs := make([]C.ulong, len(seeds))
	for i, s := range seeds {
		cs[i] = C.ulong(s)
	}
	var p *C.ulong
	if len(cs) > 0 {
		p = &cs[0]
	}
	return status(C.qg_seedQuEST(env, p, C.int(len(cs))))
}

// Seeds copies the seeds currently stored in env.
func Seeds(env Env) ([]uint64, error) {
	var p *C.ulong
	var n C.int
	if err := status(C.qg_getQuESTSeeds(env, &p, &n)); err != nil {
		return nil, err
	}
	if p == nil || n <= 0 {
		return nil, nil
	}
	out := make([]uint64, int(n))
	for i, s := range unsafe.Slice(p, int(n)) {
		out[i] = uint64(s)
	}
	return out, nil
}
