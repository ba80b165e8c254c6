// Package handlers implements the HTTP handlers of the PawMart dev server:
// the listings and orders API on Huma plus plain Echo health probes.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
