// Package batch orchestrates one retrieval run over a job's path groups.
//
// Execution is strictly sequential: groups in declaration order, indices
// ascending, one fetch completing (or failing) before the next begins.
// Filenames depend on the zero-padded index, so ordering is part of the
// output contract.
//
// Per-item failures never abort the batch. A remote archive may simply be
// missing an index, so a failed fetch or store is logged at error severity
// and the runner moves to the next index. Only two conditions end a run
// early: a cancelled context (graceful stop after the current item) and a
// failing run log sink, since a run that cannot be recorded must not keep
// going. The end marker is written on every path out.
package batch
