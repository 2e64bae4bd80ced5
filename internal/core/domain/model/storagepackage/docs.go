// Package storagepackage contains the StoragePackage aggregate handled by the
// package distribution engine.
package storagepackage
