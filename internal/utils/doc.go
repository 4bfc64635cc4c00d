// Package utils provides general-purpose helpers shared by the transport
// layer, currently the resty-based HTTP client constructor.
package utils
