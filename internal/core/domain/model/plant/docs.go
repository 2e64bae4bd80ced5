// Package plant contains the Plant aggregate: a unit of raw aromatic material
// moving through Planted, Harvested and Processed. Harvest runs and
// processing batches drive the transitions; strength adjustments follow the
// inc/scale model of kernel.Strength.
package plant
