// Package perfume contains the Perfume aggregate: one bottle of a produced
// scent, 150 to 250 ml, expiring 365 days after bottling.
package perfume
