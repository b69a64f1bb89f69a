// Package api defines the request and response messages of the proofy.v1
// Connect services. Messages travel as JSON; field names are lowerCamelCase.
package api
