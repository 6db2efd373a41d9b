// Package services implements the core orchestration logic: the
// ingestion pipeline, query routing, the retrieve-and-rerank merger and
// collection management. Services depend only on domain types and driven
// ports, and are exposed to the CLI through the driving ports.
package services
