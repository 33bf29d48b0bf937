package output

// SchemaVersion is stamped on every NDJSON object. Bump it when a field is
// renamed or removed.
const SchemaVersion = 1
