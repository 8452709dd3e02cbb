// vecdist computes Euclidean distances between JSON-lines vectors and
// generates random test data.
//
// Usage:
//
//	vecdist info
//	vecdist generate --dim 1024 --rows 20000 --out vecs.jsonl.zst
//	vecdist distance vecs.jsonl.zst --workers 8
//
// Environment:
//
//	VECDIST_SIMD        force a kernel (generic, portable, avx)
//	VECDIST_LOG_LEVEL   debug, info, warn, error (default info)
//	VECDIST_LOG_FORMAT  text or json (default text)
package main

import (
	"fmt"
	"os"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vecdist:", err)
		os.Exit(2)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
