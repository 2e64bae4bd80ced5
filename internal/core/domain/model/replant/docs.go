// Package replant models the asynchronous replant queue fed by processing.
package replant
