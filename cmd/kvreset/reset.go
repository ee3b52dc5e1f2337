package main

import (
	"fmt"

	"nvmekv/internal/qpair"
	"nvmekv/kv"
	"nvmekv/pkg/kvtypes"
)

// reservedTestKeys are the four keys the end-to-end scenarios in spec §8
// populate; reset clears them so a fixture run starts from an empty slate.
var reservedTestKeys = []string{
	"~TEST_01",
	"~TEST_02XX",
	"~TEST_03YYYYY",
	"~TEST_04",
}

func runReset() error {
	ns, qp := newFixtureNamespace()
	return resetNamespace(ns, qp)
}

// resetNamespace deletes every reserved test key on ns, ignoring
// KEY_DOES_NOT_EXIST so the operation is idempotent across repeated runs.
func resetNamespace(ns *kv.Namespace, qp *qpair.QueuePair) error {
	for _, key := range reservedTestKeys {
		var comp kvtypes.Completion
		var submitErr error
		if submitErr = ns.Delete([]byte(key), func(c kvtypes.Completion) { comp = c }); submitErr != nil {
			return fmt.Errorf("delete %s: %w", key, submitErr)
		}
		qp.DrainCompletions()

		switch {
		case comp.Status.Ok():
			printVerbose("deleted %s\n", key)
		case comp.Status == kvtypes.StatusKeyDoesNotExist:
			printVerbose("%s already absent\n", key)
		default:
			return fmt.Errorf("delete %s: device status sc=%#x sct=%#x", key, comp.Status.SC, comp.Status.SCT)
		}
	}
	return nil
}
