// Package saleorder implements the SaleOrder aggregate of order fulfillment.
//
// An order is assembled in Created status, shipped once the distribution
// engine handed over every requested package, and only then persisted.
// Partial orders are never stored.
package saleorder
