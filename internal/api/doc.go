// Package api handles incoming HTTP requests, routing, and response
// formatting. It acts as an adapter between external clients and board
// generation, translating generated games into JSON and generation errors
// into HTTP status codes.
package api
