// Package services contains the domain services of the pipeline.
//
// # DistributionCenter
//
// The role-dependent throughput profile used by the package distribution
// engine. Sales managers get the distributive center (batches of 3, 0.5 s per
// package); everyone else gets the warehouse center (one package at a time,
// 2.5 s each).
//
// # ProductionPlan
//
// The resource accounting of a processing batch: 50 ml of oil per plant,
// one perfume per bottle, replant candidates above the strength threshold.
package services
