// Package testutil provides testing utilities for slotarena.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe RNG and generators for churn
// workloads that mix inserts, removals and lookups.
//
// # Churn Scripts
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.ChurnScript(10_000, 0.3, 0.2) // 30% removes, 20% gets, 50% inserts
//	for _, op := range ops {
//	    switch op.Kind {
//	    case testutil.OpInsert:
//	        live = append(live, a.Insert(op.Value))
//	    case testutil.OpRemove:
//	        // remove live[op.Pick%len(live)]
//	    }
//	}
package testutil
