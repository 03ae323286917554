// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters. Gateway ports are implemented by outbound adapters (storage) and
// called by the application layer.
package ports
